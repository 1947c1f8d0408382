package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ebitswipe.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
images = ["one.png", "https://example.com/two.jpg"]
background = "#202020"
interval = "5s"

[window]
width = 800
height = 600
title = "gallery"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one.png", "https://example.com/two.jpg"}, cfg.Images)
	assert.Equal(t, "#202020", cfg.Background)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, "gallery", cfg.Window.Title)

	d, err := cfg.SlideshowInterval()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, d)
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `images = ["a.png"]`))
	require.NoError(t, err)
	assert.Equal(t, DefaultBackground, cfg.Background)
	assert.Equal(t, DefaultWindowWidth, cfg.Window.Width)
	assert.Equal(t, DefaultWindowTitle, cfg.Window.Title)

	d, err := cfg.SlideshowInterval()
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadBadTOML(t *testing.T) {
	_, err := Load(writeConfig(t, `images = [`))
	require.Error(t, err)
}

func TestBackgroundColor(t *testing.T) {
	cfg := Default()
	clr, err := cfg.BackgroundColor()
	require.NoError(t, err)
	r, g, b, _ := clr.RGBA()
	assert.Equal(t, r, g)
	assert.Equal(t, g, b, "default background is neutral gray")

	cfg.Background = "not-a-color"
	_, err = cfg.BackgroundColor()
	require.Error(t, err)
}

func TestSlideshowIntervalErrors(t *testing.T) {
	cfg := Default()
	cfg.Interval = "soon"
	_, err := cfg.SlideshowInterval()
	require.Error(t, err)

	cfg.Interval = "-3s"
	_, err = cfg.SlideshowInterval()
	require.Error(t, err)
}
