package component

import (
	"errors"
	"fmt"
)

// Phase is the coarse game state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhasePaused
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// PhaseAction is an input to the phase machine.
type PhaseAction int

const (
	ActionStart PhaseAction = iota
	ActionTogglePause
	ActionDie
	ActionRestart
)

func (a PhaseAction) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionTogglePause:
		return "toggle_pause"
	case ActionDie:
		return "die"
	case ActionRestart:
		return "restart"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

var ErrInvalidTransition = errors.New("phase: invalid transition")

// NextPhase returns the phase reached by applying a to p.
//
//	NotStarted --start--> Running
//	Running --toggle_pause--> Paused --toggle_pause--> Running
//	Running --die--> Over --restart--> Running
//
// Restart is also accepted from NotStarted, where it behaves like start.
func NextPhase(p Phase, a PhaseAction) (Phase, error) {
	switch {
	case a == ActionStart && p == PhaseNotStarted:
		return PhaseRunning, nil
	case a == ActionRestart && (p == PhaseOver || p == PhaseNotStarted):
		return PhaseRunning, nil
	case a == ActionTogglePause && p == PhaseRunning:
		return PhasePaused, nil
	case a == ActionTogglePause && p == PhasePaused:
		return PhaseRunning, nil
	case a == ActionDie && p == PhaseRunning:
		return PhaseOver, nil
	}
	return p, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, a, p)
}
