package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/przemekrun/input"
)

// Poller reads Ebitengine's input state. Cursor and touch positions are in
// layout coordinates, which the game sets equal to field coordinates.
type Poller struct {
	touchIDs []ebiten.TouchID
	pressed  []ebiten.TouchID
}

func (p *Poller) Keys() input.Keys {
	return input.Keys{
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Space: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Pause: inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

func (p *Poller) Pointers() []input.Pointer {
	var out []input.Pointer
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		out = append(out, input.Pointer{
			X:           float64(x),
			Y:           float64(y),
			JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		})
	}

	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	p.pressed = inpututil.AppendJustPressedTouchIDs(p.pressed[:0])
	for _, id := range p.touchIDs {
		x, y := ebiten.TouchPosition(id)
		just := false
		for _, j := range p.pressed {
			if j == id {
				just = true
				break
			}
		}
		out = append(out, input.Pointer{X: float64(x), Y: float64(y), JustPressed: just})
	}
	return out
}
