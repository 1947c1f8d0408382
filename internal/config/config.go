// Package config holds the carousel's runtime configuration, loaded from an
// optional TOML file and overridable by command-line flags.
package config

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// Defaults applied when neither the config file nor the flags say otherwise.
const (
	DefaultBackground   = "#d4d4d4"
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720
	DefaultWindowTitle  = "ebitswipe"
)

// Config is the full runtime configuration.
type Config struct {
	// Images is the ordered list of slide sources: local paths or http(s)
	// URLs. Mutually additive with the -dir scan.
	Images []string `toml:"images"`

	// Background is the hex fill color behind letterboxed slides.
	Background string `toml:"background"`

	Window Window `toml:"window"`

	// Interval enables the slideshow when non-empty ("5s", "1m", ...).
	Interval string `toml:"interval"`
}

// Window configures the host window.
type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// Default returns a Config populated with the package defaults.
func Default() *Config {
	return &Config{
		Background: DefaultBackground,
		Window: Window{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  DefaultWindowTitle,
		},
	}
}

// Load reads a TOML config file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// BackgroundColor parses the configured background hex string.
func (c *Config) BackgroundColor() (color.Color, error) {
	clr, err := colorful.Hex(c.Background)
	if err != nil {
		return nil, fmt.Errorf("parsing background %q: %w", c.Background, err)
	}
	return clr, nil
}

// SlideshowInterval parses the interval string; zero means no slideshow.
func (c *Config) SlideshowInterval() (time.Duration, error) {
	if c.Interval == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Interval)
	if err != nil {
		return 0, fmt.Errorf("parsing interval %q: %w", c.Interval, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("interval %q is negative", c.Interval)
	}
	return d, nil
}
