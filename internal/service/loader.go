// Package service provides concurrent image preloading for the carousel.
package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// Asset is one successfully loaded image, still CPU-side. Conversion to a
// GPU image happens on the game thread.
type Asset struct {
	Source string
	Image  image.Image
	Width  int
	Height int
}

// Result is the outcome of one preload batch. Generation identifies the batch
// so the consumer can discard results of superseded requests.
type Result struct {
	Generation uint64
	Assets     []Asset
	Err        error
}

// FetchFunc opens a single source for reading. The default implementation
// handles local paths and http(s) URLs; tests inject their own.
type FetchFunc func(ctx context.Context, source string) (io.ReadCloser, error)

// Loader preloads batches of image sources. All sources of a batch are
// fetched and decoded concurrently; the batch succeeds only if every source
// does, and the assets come back in input order. Each call to Preload starts
// a new generation; the result of an older generation must not be applied
// (the consumer compares against Generation()).
type Loader struct {
	fetch   FetchFunc
	limiter *rate.Limiter

	generation uint64
	results    chan Result
}

// NewLoader creates a Loader using the default fetcher. Remote fetches are
// rate limited to stay polite toward a single host serving the whole deck.
func NewLoader() *Loader {
	client := &http.Client{Timeout: 30 * time.Second}
	return NewLoaderWith(func(ctx context.Context, source string) (io.ReadCloser, error) {
		if isRemote(source) {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
			if err != nil {
				return nil, err
			}
			resp, err := client.Do(req)
			if err != nil {
				return nil, err
			}
			if resp.StatusCode != http.StatusOK {
				resp.Body.Close()
				return nil, fmt.Errorf("unexpected status %s", resp.Status)
			}
			return resp.Body, nil
		}
		return os.Open(source)
	})
}

// NewLoaderWith creates a Loader with a custom fetch function.
func NewLoaderWith(fetch FetchFunc) *Loader {
	return &Loader{
		fetch:   fetch,
		limiter: rate.NewLimiter(rate.Every(50*time.Millisecond), 4),
		results: make(chan Result, 1),
	}
}

// Results delivers one Result per Preload call. The channel is buffered so a
// finished batch never blocks on a consumer that polls once per frame.
func (l *Loader) Results() <-chan Result {
	return l.results
}

// Generation returns the identifier of the most recently requested batch.
func (l *Loader) Generation() uint64 {
	return l.generation
}

// Preload starts loading the given sources in the background and returns the
// new batch's generation. An in-flight older batch is not cancelled, but its
// result will carry a stale generation and be dropped by the consumer.
// Preload must be called from a single goroutine (the game loop).
func (l *Loader) Preload(ctx context.Context, sources []string) uint64 {
	l.generation++
	gen := l.generation

	// Copy: the caller may mutate its slice while the batch is in flight.
	srcs := make([]string, len(sources))
	copy(srcs, sources)

	go func() {
		assets, err := l.load(ctx, srcs)
		select {
		case l.results <- Result{Generation: gen, Assets: assets, Err: err}:
		case <-ctx.Done():
		}
	}()
	return gen
}

// load fetches and decodes every source concurrently, preserving input order.
// The first failure cancels the remaining fetches and fails the whole batch.
func (l *Loader) load(ctx context.Context, sources []string) ([]Asset, error) {
	assets := make([]Asset, len(sources))
	eg, egCtx := errgroup.WithContext(ctx)

	for i, src := range sources {
		eg.Go(func() error {
			if isRemote(src) {
				if err := l.limiter.Wait(egCtx); err != nil {
					return err
				}
			}
			asset, err := l.loadOne(egCtx, src)
			if err != nil {
				return fmt.Errorf("loading %s: %w", src, err)
			}
			assets[i] = asset
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	slog.Debug("preload batch complete", "count", len(assets))
	return assets, nil
}

func (l *Loader) loadOne(ctx context.Context, source string) (Asset, error) {
	rc, err := l.fetch(ctx, source)
	if err != nil {
		return Asset{}, fmt.Errorf("fetching: %w", err)
	}
	defer rc.Close()

	// Buffer the whole file: decoding and EXIF orientation each need their
	// own pass over the data.
	data, err := io.ReadAll(rc)
	if err != nil {
		return Asset{}, fmt.Errorf("reading: %w", err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Asset{}, fmt.Errorf("decoding: %w", err)
	}
	if format == "jpeg" {
		img = applyOrientation(img, readOrientation(bytes.NewReader(data)))
	}

	bounds := img.Bounds()
	return Asset{
		Source: source,
		Image:  img,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
