package ui

// Placement describes one slide to paint this frame: which slide, and the
// horizontal shift of its rectangle relative to the viewport origin.
type Placement struct {
	Slide int
	X     float64
}

// VisiblePlacements returns the one or two slides covering the viewport for
// the given scroll position. The current slide sits at x = -sub; when a next
// slide exists it slides in at x = width - sub. At the last slide (sub == 0,
// or an empty deck) only one placement - or none - is returned.
func VisiblePlacements(index int, sub, width float64, slideCount int) []Placement {
	if slideCount < 1 || width <= 0 {
		return nil
	}
	placements := []Placement{{Slide: index, X: -sub}}
	if next := index + 1; next < slideCount {
		placements = append(placements, Placement{Slide: next, X: width - sub})
	}
	return placements
}
