package service

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	red   = color.RGBA{R: 0xff, A: 0xff}
	green = color.RGBA{G: 0xff, A: 0xff}
	blue  = color.RGBA{B: 0xff, A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// quad builds a 2x2 image: red green / blue white, reading left to right.
func quad() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, red)
	img.Set(1, 0, green)
	img.Set(0, 1, blue)
	img.Set(1, 1, white)
	return img
}

func pixels(img image.Image) [4]color.Color {
	b := img.Bounds()
	return [4]color.Color{
		img.At(b.Min.X, b.Min.Y), img.At(b.Min.X+1, b.Min.Y),
		img.At(b.Min.X, b.Min.Y+1), img.At(b.Min.X+1, b.Min.Y+1),
	}
}

func TestApplyOrientation(t *testing.T) {
	tests := []struct {
		name        string
		orientation int
		want        [4]color.Color
	}{
		{"upright unchanged", 1, [4]color.Color{red, green, blue, white}},
		{"mirror horizontal", 2, [4]color.Color{green, red, white, blue}},
		{"rotate 180", 3, [4]color.Color{white, blue, green, red}},
		{"mirror vertical", 4, [4]color.Color{blue, white, red, green}},
		{"rotate 90 cw", 6, [4]color.Color{blue, red, white, green}},
		{"rotate 270 cw", 8, [4]color.Color{green, white, red, blue}},
		{"out of range treated upright", 9, [4]color.Color{red, green, blue, white}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyOrientation(quad(), tt.orientation)
			gotPix := pixels(got)
			for i := range tt.want {
				r0, g0, b0, a0 := tt.want[i].RGBA()
				r1, g1, b1, a1 := gotPix[i].RGBA()
				assert.Equal(t, [4]uint32{r0, g0, b0, a0}, [4]uint32{r1, g1, b1, a1},
					"pixel %d", i)
			}
		})
	}
}

func TestApplyOrientationSwapsDimensions(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	rotated := applyOrientation(img, 6)
	b := rotated.Bounds()
	assert.Equal(t, 2, b.Dx())
	assert.Equal(t, 3, b.Dy())
}

func TestApplyOrientationUprightIsSameImage(t *testing.T) {
	img := quad()
	assert.Same(t, img, applyOrientation(img, 1))
}
