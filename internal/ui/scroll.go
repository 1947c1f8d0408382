package ui

import (
	"math"
	"sync"
)

// ScrollState holds the total horizontal scroll offset across all slides and
// derives the current slide index and sub-slide shift from it. The offset is
// always clamped to [0, (slideCount-1)*slideWidth], so index lookups derived
// from it are always in bounds.
//
// All methods are safe for concurrent use, although in practice the offset
// is only touched from the game loop.
type ScrollState struct {
	mu sync.Mutex

	offset     float64
	slideWidth float64
	slideCount int
}

// NewScrollState creates a ScrollState with no slides and a zero offset.
func NewScrollState() *ScrollState {
	return &ScrollState{}
}

// Configure sets the slide count and slide width (the logical viewport width)
// and re-clamps the current offset against the new bounds. Called when slides
// finish loading and on every viewport resize; the offset survives both, so a
// resize keeps the user's place in the deck.
func (s *ScrollState) Configure(slideCount int, slideWidth float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slideCount = slideCount
	s.slideWidth = slideWidth
	s.offset = s.clampUnlocked(s.offset)
}

// Offset returns the current scroll offset.
func (s *ScrollState) Offset() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offset
}

// SetOffset replaces the offset with the clamped value of v.
func (s *ScrollState) SetOffset(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offset = s.clampUnlocked(v)
}

// ShiftBy moves the offset by delta, clamped to the valid range.
func (s *ScrollState) ShiftBy(delta float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offset = s.clampUnlocked(s.offset + delta)
}

// SnapToSlide sets the offset to the start of slide i, clamped.
func (s *ScrollState) SnapToSlide(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offset = s.clampUnlocked(float64(i) * s.slideWidth)
}

// Index returns the current slide index, floor(offset/slideWidth), always in
// [0, slideCount-1] for a non-empty deck.
func (s *ScrollState) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexUnlocked()
}

// Sub returns the portion of the offset within the current slide, in
// [0, slideWidth).
func (s *ScrollState) Sub() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offset - float64(s.indexUnlocked())*s.slideWidth
}

// Position returns Index and Sub as one consistent snapshot.
func (s *ScrollState) Position() (index int, sub float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	index = s.indexUnlocked()
	return index, s.offset - float64(index)*s.slideWidth
}

// SlideCount returns the configured number of slides.
func (s *ScrollState) SlideCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slideCount
}

// SlideWidth returns the configured slide width.
func (s *ScrollState) SlideWidth() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slideWidth
}

// WrapIndex returns index moved by delta steps, wrapping around a deck of n
// slides. `(a % n + n) % n` handles negative deltas correctly.
func WrapIndex(index, delta, n int) int {
	if n < 1 {
		return 0
	}
	return (index + delta%n + n) % n
}

func (s *ScrollState) indexUnlocked() int {
	if s.slideWidth <= 0 {
		return 0
	}
	i := int(math.Floor(s.offset / s.slideWidth))
	// offset == maxOffset lands exactly on the last slide; the floor above
	// already yields slideCount-1 there, but guard against float edge cases.
	if i > s.slideCount-1 {
		i = s.slideCount - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func (s *ScrollState) clampUnlocked(v float64) float64 {
	if s.slideCount < 1 || s.slideWidth <= 0 {
		return 0
	}
	max := float64(s.slideCount-1) * s.slideWidth
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
