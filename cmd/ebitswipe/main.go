// ebitswipe displays a drag-to-scroll image carousel: drag horizontally to
// slide between images, or use the arrow keys.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/nicky-ayoub/ebitswipe/internal/config"
	"github.com/nicky-ayoub/ebitswipe/internal/scan"
	"github.com/nicky-ayoub/ebitswipe/internal/service"
	"github.com/nicky-ayoub/ebitswipe/internal/ui"
)

// Game wires the carousel, the preloader and the slideshow timer into the
// Ebiten loop.
type Game struct {
	ctx      context.Context
	carousel *ui.Carousel
	loader   *service.Loader

	sources []string
	loading bool
	loadErr error

	// Logical viewport, recorded by Layout.
	logicalW, logicalH int
	scale              float64

	slideshowActive   bool
	slideshowInterval time.Duration
	slideshowTimer    *time.Timer

	debugOverlay bool
}

func (g *Game) Update() error {
	input := ui.PollInput(g.logicalW, g.logicalH, g.scale)

	if input.Quit {
		return ebiten.Termination
	}
	if input.ToggleFullscreen {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if input.ToggleSlideshow {
		g.toggleSlideshow()
	}

	if g.slideshowActive && g.slideshowTimer != nil {
		select {
		case <-g.slideshowTimer.C:
			g.carousel.Navigate(1)
			g.slideshowTimer.Reset(g.slideshowInterval)
		default:
			// Timer has not fired.
		}
	}

	// Apply finished preload batches. A result from a superseded batch is
	// dropped even if it loaded successfully.
	select {
	case result := <-g.loader.Results():
		if result.Generation != g.loader.Generation() {
			slog.Debug("dropping stale preload batch", "generation", result.Generation)
			break
		}
		g.loading = false
		if result.Err != nil {
			g.loadErr = result.Err
			slog.Error("preload failed", "err", result.Err)
			break
		}
		g.loadErr = nil
		g.carousel.ApplySlides(result.Assets)
		slog.Info("slides ready", "count", len(result.Assets))
	default:
		// No batch settled this frame.
	}

	if input.NextSlide || input.PrevSlide || input.Pointer.JustPressed {
		g.resetSlideshowTimer()
	}
	g.carousel.Update(input)

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.carousel.Draw(screen)

	switch {
	case g.carousel.Ready():
		// Slides cover the screen; nothing else to print.
	case len(g.sources) == 0:
		ebitenutil.DebugPrint(screen, "No images configured.")
	case g.loading:
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Loading %d images...", len(g.sources)))
	case g.loadErr != nil:
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Load failed: %v", g.loadErr))
	}

	if g.debugOverlay && g.carousel.Ready() {
		index, sub := g.carousel.Scroll().Position()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Slide: %d/%d\nSub-offset: %.1f\nOffset: %.1f",
			index+1,
			g.carousel.Scroll().SlideCount(),
			sub,
			g.carousel.Scroll().Offset()))
	}
}

// Layout makes the logical screen the window size scaled by the device pixel
// density, giving the carousel a full-resolution backing store on hidpi
// displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := ebiten.Monitor().DeviceScaleFactor()
	g.logicalW, g.logicalH, g.scale = outsideWidth, outsideHeight, s
	g.carousel.SetViewport(outsideWidth, outsideHeight, s)
	return int(float64(outsideWidth) * s), int(float64(outsideHeight) * s)
}

// resetSlideshowTimer restarts the countdown after manual navigation.
func (g *Game) resetSlideshowTimer() {
	if g.slideshowActive && g.slideshowTimer != nil {
		g.slideshowTimer.Reset(g.slideshowInterval)
	}
}

// toggleSlideshow turns the slideshow mode on or off.
func (g *Game) toggleSlideshow() {
	if g.slideshowInterval <= 0 {
		return
	}
	g.slideshowActive = !g.slideshowActive

	if g.slideshowActive {
		if g.slideshowTimer == nil {
			g.slideshowTimer = time.NewTimer(g.slideshowInterval)
		} else {
			g.slideshowTimer.Reset(g.slideshowInterval)
		}
	} else if g.slideshowTimer != nil {
		g.slideshowTimer.Stop()
	}
}

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file")
	dirPath := flag.String("dir", "", "Directory to scan for images; scanned paths are appended to the configured list")
	interval := flag.Duration("interval", 0, "Slideshow interval (e.g. '5s'); enables and starts the slideshow")
	background := flag.String("bg", "", "Background color behind letterboxed slides, e.g. '#202020'")
	debug := flag.Bool("debug", false, "Show the slide/offset overlay")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			slog.Error("loading config", "err", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *background != "" {
		cfg.Background = *background
	}
	if *interval > 0 {
		cfg.Interval = interval.String()
	}

	sources := append([]string(nil), cfg.Images...)
	if *dirPath != "" {
		scanned, err := scan.Dir(*dirPath)
		if err != nil {
			slog.Error("scanning directory", "dir", *dirPath, "err", err)
			os.Exit(1)
		}
		slog.Info("scanned directory", "dir", *dirPath, "found", len(scanned))
		sources = append(sources, scanned...)
	}
	// Positional arguments are extra sources, matching `ebitswipe img1 img2`.
	sources = append(sources, flag.Args()...)

	bg, err := cfg.BackgroundColor()
	if err != nil {
		slog.Error("invalid background", "err", err)
		os.Exit(1)
	}
	slideshowInterval, err := cfg.SlideshowInterval()
	if err != nil {
		slog.Error("invalid interval", "err", err)
		os.Exit(1)
	}

	game := &Game{
		ctx:               context.Background(),
		carousel:          ui.NewCarousel(bg),
		loader:            service.NewLoader(),
		sources:           sources,
		slideshowInterval: slideshowInterval,
		debugOverlay:      *debug,
	}
	if slideshowInterval > 0 {
		game.toggleSlideshow()
	}

	if len(sources) > 0 {
		game.loading = true
		game.loader.Preload(game.ctx, sources)
		slog.Info("preloading", "count", len(sources))
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		slog.Error("run", "err", err)
		os.Exit(1)
	}
}
