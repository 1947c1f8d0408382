package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	dotRadius  = 4.0
	dotSpacing = 18.0
	dotMarginY = 16.0
)

// Indicator renders a centered strip of dots along the bottom edge, one per
// slide, with the current slide's dot filled solid.
type Indicator struct {
	scroll *ScrollState

	dotColor    color.Color
	activeColor color.Color
}

// NewIndicator creates an indicator bound to the given scroll state.
func NewIndicator(scroll *ScrollState) *Indicator {
	return &Indicator{
		scroll:      scroll,
		dotColor:    color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x66},
		activeColor: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xe6},
	}
}

// Draw paints the dot strip onto dst. scale converts logical units to the
// backing store's pixels.
func (in *Indicator) Draw(dst *ebiten.Image, scale float64) {
	n := in.scroll.SlideCount()
	if n < 2 {
		return
	}
	current := in.scroll.Index()

	logicalW := in.scroll.SlideWidth()
	totalW := float64(n-1) * dotSpacing
	startX := (logicalW - totalW) / 2
	y := float32((float64(dst.Bounds().Dy())/scale - dotMarginY) * scale)

	for i := 0; i < n; i++ {
		cx := float32((startX + float64(i)*dotSpacing) * scale)
		clr := in.dotColor
		if i == current {
			clr = in.activeColor
		}
		vector.DrawFilledCircle(dst, cx, y, float32(dotRadius*scale), clr, true)
	}
}

// fillRect fills an axis-aligned rectangle on dst, clipped by dst itself.
func fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}
