package input

import (
	"testing"

	"github.com/milk9111/przemekrun/ecs/component"
	"github.com/milk9111/przemekrun/prefabs"
)

func scheme(t *testing.T, variant string) Scheme {
	t.Helper()
	v, err := prefabs.LoadVariant(variant)
	if err != nil {
		t.Fatalf("LoadVariant failed: %v", err)
	}
	return NewScheme(v)
}

func TestKeyboard(t *testing.T) {
	s := scheme(t, "keyboard")

	tests := []struct {
		name  string
		phase component.Phase
		keys  Keys
		want  Intent
	}{
		{"space starts", component.PhaseNotStarted, Keys{Space: true}, Intent{Activate: true}},
		{"space restarts", component.PhaseOver, Keys{Space: true}, Intent{Activate: true}},
		{"space ignored while running", component.PhaseRunning, Keys{Space: true}, Intent{}},
		{"held directions", component.PhaseRunning, Keys{Up: true, Down: true}, Intent{Up: true, Down: true}},
		{"no pause in keyboard variant", component.PhaseRunning, Keys{Pause: true}, Intent{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Resolve(tc.phase, tc.keys, nil); got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestTouch(t *testing.T) {
	s := scheme(t, "touch")
	play := Pointer{X: 900, Y: 740, JustPressed: true}
	pause := Pointer{X: 1850, Y: 30, JustPressed: true}
	up := Pointer{X: 100, Y: 450}
	down := Pointer{X: 100, Y: 600}
	upEdge := Pointer{X: 160, Y: 520}

	tests := []struct {
		name     string
		phase    component.Phase
		pointers []Pointer
		want     Intent
	}{
		{"play from not started", component.PhaseNotStarted, []Pointer{play}, Intent{Activate: true}},
		{"play from over", component.PhaseOver, []Pointer{play}, Intent{Activate: true}},
		{"play hidden while running", component.PhaseRunning, []Pointer{play}, Intent{}},
		{"pause while running", component.PhaseRunning, []Pointer{pause}, Intent{TogglePause: true}},
		{"resume while paused", component.PhasePaused, []Pointer{pause}, Intent{TogglePause: true}},
		{"pause hidden before start", component.PhaseNotStarted, []Pointer{pause}, Intent{}},
		{"hold up", component.PhaseRunning, []Pointer{up}, Intent{Up: true}},
		{"button edges are inclusive", component.PhaseRunning, []Pointer{upEdge}, Intent{Up: true}},
		{"two fingers", component.PhaseRunning, []Pointer{up, down}, Intent{Up: true, Down: true}},
		{"directions ignored before start", component.PhaseNotStarted, []Pointer{up}, Intent{}},
		{"held play does not activate", component.PhaseOver, []Pointer{{X: 900, Y: 740}}, Intent{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Resolve(tc.phase, Keys{}, tc.pointers); got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}
