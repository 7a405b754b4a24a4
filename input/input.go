// Package input turns raw key and pointer state into per-frame game intents
// for the keyboard and touch control schemes.
package input

import (
	"github.com/milk9111/przemekrun/ecs/component"
	"github.com/milk9111/przemekrun/prefabs"
)

// Intent is what the player asked for this frame.
type Intent struct {
	Up          bool
	Down        bool
	Activate    bool
	TogglePause bool
}

// Keys is the keyboard state for one frame.
type Keys struct {
	Up    bool
	Down  bool
	Space bool // just pressed
	Pause bool // just pressed
}

// Pointer is one mouse button or touch in field coordinates.
type Pointer struct {
	X, Y        float64
	JustPressed bool
}

// Scheme resolves a frame of raw input for a variant.
type Scheme struct {
	controls prefabs.ControlsSpec
	buttons  prefabs.ButtonsSpec
}

func NewScheme(v *prefabs.VariantSpec) Scheme {
	return Scheme{controls: v.Controls, buttons: v.Buttons}
}

// Resolve maps raw input to an intent given the current phase.
func (s Scheme) Resolve(phase component.Phase, keys Keys, pointers []Pointer) Intent {
	if s.controls.Scheme == prefabs.ControlsTouch {
		return s.resolveTouch(phase, pointers)
	}
	return s.resolveKeyboard(phase, keys)
}

func (s Scheme) resolveKeyboard(phase component.Phase, keys Keys) Intent {
	in := Intent{Up: keys.Up, Down: keys.Down}
	if keys.Space && (phase == component.PhaseNotStarted || phase == component.PhaseOver) {
		in.Activate = true
	}
	if keys.Pause && s.controls.AllowPause && inRun(phase) {
		in.TogglePause = true
	}
	return in
}

func (s Scheme) resolveTouch(phase component.Phase, pointers []Pointer) Intent {
	var in Intent
	for _, p := range pointers {
		if !p.JustPressed {
			continue
		}
		if !inRun(phase) && s.buttons.Play.Rect().Contains(p.X, p.Y) {
			return Intent{Activate: true}
		}
		if inRun(phase) && s.controls.AllowPause && s.buttons.Pause.Rect().Contains(p.X, p.Y) {
			in.TogglePause = true
		}
	}
	if in.TogglePause || !inRun(phase) {
		return in
	}

	// Directions follow any held pointer.
	for _, p := range pointers {
		if s.buttons.Up.Rect().Contains(p.X, p.Y) {
			in.Up = true
		}
		if s.buttons.Down.Rect().Contains(p.X, p.Y) {
			in.Down = true
		}
	}
	return in
}

// inRun is true between start and game over, paused included.
func inRun(phase component.Phase) bool {
	return phase == component.PhaseRunning || phase == component.PhasePaused
}

// ShowRunButtons reports whether the direction and pause buttons are drawn.
func ShowRunButtons(phase component.Phase) bool {
	return inRun(phase)
}
