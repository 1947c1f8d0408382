package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nicky-ayoub/ebitswipe/internal/service"
)

// Slide is one loaded carousel entry, converted to a GPU-side image.
type Slide struct {
	Source string
	Image  *ebiten.Image
}

// Carousel is a drag-to-scroll horizontal image deck. It owns the scroll
// offset, the drag state machine and the position indicator, and renders into
// an offscreen target sized to the backing store (logical size x device scale
// factor). The offscreen is repainted only when the dirty flag is set, so any
// number of state changes within one tick cost a single repaint, and that
// repaint always reads the scroll state at fire time.
type Carousel struct {
	scroll    *ScrollState
	drag      DragController
	indicator *Indicator

	slides     []Slide
	background color.Color

	// Viewport state; backing store is logical size scaled by the device
	// pixel density.
	logicalW, logicalH int
	scale              float64
	offscreen          *ebiten.Image

	needsRedraw bool
}

// NewCarousel creates an empty carousel. background fills the parts of each
// slide rectangle the letterboxed image does not cover.
func NewCarousel(background color.Color) *Carousel {
	c := &Carousel{
		scroll:     NewScrollState(),
		background: background,
	}
	c.indicator = NewIndicator(c.scroll)
	return c
}

// Ready reports whether at least one slide is loaded.
func (c *Carousel) Ready() bool {
	return len(c.slides) > 0
}

// Scroll exposes the scroll state, mainly for the status overlay.
func (c *Carousel) Scroll() *ScrollState {
	return c.scroll
}

// ApplySlides installs a freshly preloaded batch, replacing any previous deck.
// Must be called from the game loop: converting decoded images to
// ebiten.Images belongs on the game thread. The scroll offset resets to the
// first slide, matching a fresh deck.
func (c *Carousel) ApplySlides(assets []service.Asset) {
	for _, old := range c.slides {
		old.Image.Deallocate()
	}
	c.slides = make([]Slide, 0, len(assets))
	for _, a := range assets {
		c.slides = append(c.slides, Slide{
			Source: a.Source,
			Image:  ebiten.NewImageFromImage(a.Image),
		})
	}
	c.scroll.Configure(len(c.slides), float64(c.logicalW))
	c.scroll.SetOffset(0)
	c.needsRedraw = true
}

// SetViewport updates the logical size and device scale factor. On any
// change the offscreen target is reallocated to logical x scale pixels, the
// slide width reconfigured (keeping the current offset, re-clamped), and a
// redraw forced.
func (c *Carousel) SetViewport(logicalW, logicalH int, scale float64) {
	if logicalW == c.logicalW && logicalH == c.logicalH && scale == c.scale {
		return
	}
	c.logicalW = logicalW
	c.logicalH = logicalH
	c.scale = scale

	if c.offscreen != nil {
		c.offscreen.Deallocate()
		c.offscreen = nil
	}
	pxW, pxH := int(float64(logicalW)*scale), int(float64(logicalH)*scale)
	if pxW > 0 && pxH > 0 {
		c.offscreen = ebiten.NewImage(pxW, pxH)
	}

	c.scroll.Configure(len(c.slides), float64(logicalW))
	c.needsRedraw = true
}

// Update consumes one frame of input: drag first, then keyboard navigation.
// The cursor shape tracks the drag state so the user can tell idle from
// grabbing.
func (c *Carousel) Update(in Input) {
	if !c.Ready() {
		return
	}

	if c.drag.Update(in.Pointer, c.scroll) {
		c.needsRedraw = true
	}
	if c.drag.Dragging() {
		ebiten.SetCursorShape(ebiten.CursorShapeMove)
	} else if in.Pointer.OverSurface {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}

	if in.NextSlide {
		c.Navigate(1)
	}
	if in.PrevSlide {
		c.Navigate(-1)
	}
}

// Navigate snaps the offset to the slide delta steps away, wrapping around
// the deck.
func (c *Carousel) Navigate(delta int) {
	n := len(c.slides)
	if n == 0 {
		return
	}
	c.scroll.SnapToSlide(WrapIndex(c.scroll.Index(), delta, n))
	c.needsRedraw = true
}

// Draw blits the offscreen target to the screen, repainting it first if any
// state changed since the last paint. With no slides loaded this is a no-op.
func (c *Carousel) Draw(screen *ebiten.Image) {
	if !c.Ready() || c.offscreen == nil {
		return
	}
	if c.needsRedraw {
		c.redraw()
		c.needsRedraw = false
	}
	screen.DrawImage(c.offscreen, nil)
}

// redraw paints the one or two visible slides into the offscreen target.
// Each slide rectangle is filled with the background color before its image
// is drawn letterboxed inside it, so no seam shows mid-drag.
func (c *Carousel) redraw() {
	c.offscreen.Clear()

	w, h := float64(c.logicalW), float64(c.logicalH)
	index, sub := c.scroll.Position()

	for _, p := range VisiblePlacements(index, sub, w, len(c.slides)) {
		c.drawSlide(c.slides[p.Slide], p.X, w, h)
	}
	c.indicator.Draw(c.offscreen, c.scale)
}

func (c *Carousel) drawSlide(slide Slide, slideX, w, h float64) {
	fillRect(c.offscreen, slideX*c.scale, 0, w*c.scale, h*c.scale, c.background)

	bounds := slide.Image.Bounds()
	imgW, imgH := float64(bounds.Dx()), float64(bounds.Dy())
	fx, fy, fw, fh := FitRect(imgW, imgH, w, h)

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	op.GeoM.Scale(fw/imgW, fh/imgH)
	op.GeoM.Translate(slideX+fx, fy)
	op.GeoM.Scale(c.scale, c.scale)
	c.offscreen.DrawImage(slide.Image, op)
}
