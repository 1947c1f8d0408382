package service

import (
	"image"
	"io"

	"github.com/rwcarlsen/goexif/exif"
)

// readOrientation extracts the EXIF orientation tag from a JPEG stream.
// Returns 1 (upright) when the tag or the EXIF block is absent.
func readOrientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	o, err := tag.Int(0)
	if err != nil || o < 1 || o > 8 {
		return 1
	}
	return o
}

// applyOrientation bakes an EXIF orientation into the pixels so the rest of
// the pipeline only ever sees upright images. Orientation values follow the
// EXIF spec: 1 upright, 2 mirrored, 3 rotated 180, 4 flipped vertically,
// 5-8 the transposed variants.
func applyOrientation(img image.Image, orientation int) image.Image {
	if orientation <= 1 || orientation > 8 {
		return img
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	var dst *image.RGBA
	if orientation >= 5 { // transposed: output dimensions swap
		dst = image.NewRGBA(image.Rect(0, 0, h, w))
	} else {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			switch orientation {
			case 2: // mirror horizontal
				dst.Set(w-1-x, y, c)
			case 3: // rotate 180
				dst.Set(w-1-x, h-1-y, c)
			case 4: // mirror vertical
				dst.Set(x, h-1-y, c)
			case 5: // mirror horizontal + rotate 270 CW
				dst.Set(y, x, c)
			case 6: // rotate 90 CW
				dst.Set(h-1-y, x, c)
			case 7: // mirror horizontal + rotate 90 CW
				dst.Set(h-1-y, w-1-x, c)
			case 8: // rotate 270 CW
				dst.Set(y, w-1-x, c)
			}
		}
	}
	return dst
}
