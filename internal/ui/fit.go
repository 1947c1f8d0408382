package ui

// FitRect computes the letterboxed placement of an image with intrinsic size
// imgW×imgH inside a rectW×rectH target rectangle. The image is scaled to the
// limiting dimension, preserving aspect ratio, and centered on the axis that
// has slack. The returned rectangle is relative to the target's origin.
func FitRect(imgW, imgH, rectW, rectH float64) (x, y, w, h float64) {
	if imgW <= 0 || imgH <= 0 || rectW <= 0 || rectH <= 0 {
		return 0, 0, 0, 0
	}

	imgRatio := imgW / imgH
	rectRatio := rectW / rectH

	if imgRatio > rectRatio {
		// Image is relatively wider: fill the width, center vertically.
		w = rectW
		h = rectW / imgRatio
		y = (rectH - h) / 2
	} else {
		// Image is relatively taller (or same ratio): fill the height, center horizontally.
		h = rectH
		w = rectH * imgRatio
		x = (rectW - w) / 2
	}
	return x, y, w, h
}
