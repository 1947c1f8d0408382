package ui

import (
	"math/rand"
	"testing"
)

func TestScrollClamp(t *testing.T) {
	tests := []struct {
		name       string
		slides     int
		width      float64
		set        float64
		wantOffset float64
	}{
		{"zero stays", 4, 640, 0, 0},
		{"negative clamps to zero", 4, 640, -50, 0},
		{"in range", 4, 640, 700, 700},
		{"max", 4, 640, 1920, 1920},
		{"beyond max clamps", 4, 640, 5000, 1920},
		{"single slide pins to zero", 1, 640, 300, 0},
		{"no slides", 0, 640, 300, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScrollState()
			s.Configure(tt.slides, tt.width)
			s.SetOffset(tt.set)
			if got := s.Offset(); got != tt.wantOffset {
				t.Errorf("Offset() = %g, want %g", got, tt.wantOffset)
			}
		})
	}
}

func TestScrollDerivation(t *testing.T) {
	tests := []struct {
		name      string
		offset    float64
		wantIndex int
		wantSub   float64
	}{
		{"start", 0, 0, 0},
		{"mid first slide", 400, 0, 400},
		{"slide boundary", 640, 1, 0},
		{"drag past boundary", 700, 1, 60},
		{"last slide", 1920, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScrollState()
			s.Configure(4, 640)
			s.SetOffset(tt.offset)
			index, sub := s.Position()
			if index != tt.wantIndex || sub != tt.wantSub {
				t.Errorf("Position() = (%d, %g), want (%d, %g)", index, sub, tt.wantIndex, tt.wantSub)
			}
		})
	}
}

// TestScrollRandomDeltas drives the offset with random deltas and checks the
// invariants: offset stays in [0, (N-1)*w] and the index in [0, N-1].
func TestScrollRandomDeltas(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{1, 2, 4, 9} {
		s := NewScrollState()
		width := 100 + rng.Float64()*900
		s.Configure(n, width)
		max := float64(n-1) * width
		for i := 0; i < 1000; i++ {
			s.ShiftBy(rng.Float64()*2*width - width)
			if off := s.Offset(); off < 0 || off > max {
				t.Fatalf("n=%d: offset %g outside [0, %g]", n, off, max)
			}
			if idx := s.Index(); idx < 0 || idx > n-1 {
				t.Fatalf("n=%d: index %d outside [0, %d]", n, idx, n-1)
			}
			if sub := s.Sub(); sub < 0 || sub >= width {
				t.Fatalf("n=%d: sub %g outside [0, %g)", n, sub, width)
			}
		}
	}
}

// Reconfiguring with a new width models a viewport resize: the offset is kept,
// only re-clamped against the new bounds.
func TestScrollSurvivesResize(t *testing.T) {
	s := NewScrollState()
	s.Configure(4, 640)
	s.SetOffset(700)

	s.Configure(4, 800)
	if got := s.Offset(); got != 700 {
		t.Errorf("offset after widening = %g, want 700", got)
	}

	s.Configure(4, 200)
	if got := s.Offset(); got != 600 {
		t.Errorf("offset after narrowing = %g, want clamped 600", got)
	}
}

func TestWrapIndex(t *testing.T) {
	tests := []struct {
		index, delta, n int
		want            int
	}{
		{0, 1, 4, 1},
		{3, 1, 4, 0},
		{0, -1, 4, 3},
		{2, -7, 4, 3},
		{1, 9, 4, 2},
		{0, 1, 1, 0},
		{0, -5, 0, 0},
	}
	for _, tt := range tests {
		if got := WrapIndex(tt.index, tt.delta, tt.n); got != tt.want {
			t.Errorf("WrapIndex(%d, %d, %d) = %d, want %d", tt.index, tt.delta, tt.n, got, tt.want)
		}
	}
}

func TestSnapToSlide(t *testing.T) {
	s := NewScrollState()
	s.Configure(4, 640)

	s.SnapToSlide(2)
	if got := s.Index(); got != 2 {
		t.Errorf("Index() = %d, want 2", got)
	}
	s.SnapToSlide(99)
	if got := s.Offset(); got != 1920 {
		t.Errorf("snap past end: Offset() = %g, want 1920", got)
	}
	s.SnapToSlide(-1)
	if got := s.Offset(); got != 0 {
		t.Errorf("snap before start: Offset() = %g, want 0", got)
	}
}
