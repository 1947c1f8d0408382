package ui

// DragController turns per-frame pointer state into scroll offset deltas.
// It is a two-state machine: Idle until the pointer goes down over the
// carousel, Dragging until it is released. Input is polled once per frame
// (see Input), so a fast drag that leaves the window is still tracked - the
// session only ends when the button is released.
type DragController struct {
	dragging bool
	lastX    int
}

// Dragging reports whether a drag session is active.
func (d *DragController) Dragging() bool {
	return d.dragging
}

// Update feeds one frame of pointer state into the state machine and applies
// the resulting delta to scroll. It returns true when the scroll offset
// changed this frame, which the caller uses to schedule a redraw.
//
// Sign convention: delta = current X - last X, and the proposed offset is
// offset - delta. Moving the pointer left therefore increases the offset,
// dragging the next slide into view.
func (d *DragController) Update(in PointerInput, scroll *ScrollState) bool {
	if !d.dragging {
		if in.JustPressed && in.OverSurface {
			d.dragging = true
			d.lastX = in.X
		}
		return false
	}

	if !in.Pressed {
		// Released anywhere, including outside the window.
		d.dragging = false
		return false
	}

	delta := in.X - d.lastX
	if delta == 0 {
		return false
	}
	d.lastX = in.X

	before := scroll.Offset()
	scroll.ShiftBy(-float64(delta))
	return scroll.Offset() != before
}

// PointerInput is the per-frame pointer snapshot consumed by DragController.
type PointerInput struct {
	X           int
	JustPressed bool // button transitioned to down this frame
	Pressed     bool // button is down this frame
	OverSurface bool // pointer is inside the carousel rectangle
}
