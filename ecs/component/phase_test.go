package component

import (
	"errors"
	"testing"
)

func TestNextPhase(t *testing.T) {
	cases := []struct {
		from    Phase
		action  PhaseAction
		want    Phase
		wantErr bool
	}{
		{PhaseNotStarted, ActionStart, PhaseRunning, false},
		{PhaseNotStarted, ActionRestart, PhaseRunning, false},
		{PhaseNotStarted, ActionTogglePause, PhaseNotStarted, true},
		{PhaseNotStarted, ActionDie, PhaseNotStarted, true},
		{PhaseRunning, ActionTogglePause, PhasePaused, false},
		{PhaseRunning, ActionDie, PhaseOver, false},
		{PhaseRunning, ActionStart, PhaseRunning, true},
		{PhaseRunning, ActionRestart, PhaseRunning, true},
		{PhasePaused, ActionTogglePause, PhaseRunning, false},
		{PhasePaused, ActionDie, PhasePaused, true},
		{PhasePaused, ActionRestart, PhasePaused, true},
		{PhaseOver, ActionRestart, PhaseRunning, false},
		{PhaseOver, ActionStart, PhaseOver, true},
		{PhaseOver, ActionTogglePause, PhaseOver, true},
	}

	for _, c := range cases {
		t.Run(c.from.String()+"_"+c.action.String(), func(t *testing.T) {
			got, err := NextPhase(c.from, c.action)
			if got != c.want {
				t.Fatalf("NextPhase(%s, %s) = %s, want %s", c.from, c.action, got, c.want)
			}
			if c.wantErr != (err != nil) {
				t.Fatalf("unexpected error state: %v", err)
			}
			if err != nil && !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
		})
	}
}
