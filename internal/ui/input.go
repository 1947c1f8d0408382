package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the polled state of inputs for a single frame.
// This separates input polling from input handling logic.
type Input struct {
	Quit             bool
	ToggleFullscreen bool
	ToggleSlideshow  bool
	NextSlide        bool
	PrevSlide        bool

	Pointer PointerInput
}

// PollInput gathers all raw input events for the current frame. surfaceW and
// surfaceH bound the carousel rectangle used for the pointer hit test, in
// logical units; scale converts the cursor position from screen pixels.
func PollInput(surfaceW, surfaceH int, scale float64) Input {
	px, py := ebiten.CursorPosition()
	mx, my := px, py
	if scale > 0 {
		mx = int(float64(px) / scale)
		my = int(float64(py) / scale)
	}
	return Input{
		Quit:             inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		ToggleFullscreen: inpututil.IsKeyJustPressed(ebiten.KeyF11),
		ToggleSlideshow:  inpututil.IsKeyJustPressed(ebiten.KeyS),
		NextSlide:        inpututil.IsKeyJustPressed(ebiten.KeyRight),
		PrevSlide:        inpututil.IsKeyJustPressed(ebiten.KeyLeft),
		Pointer: PointerInput{
			X:           mx,
			JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
			Pressed:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
			OverSurface: mx >= 0 && mx < surfaceW && my >= 0 && my < surfaceH,
		},
	}
}
