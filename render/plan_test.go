package render

import (
	"testing"

	"github.com/milk9111/przemekrun/common"
	"github.com/milk9111/przemekrun/ecs/component"
	"github.com/milk9111/przemekrun/prefabs"
	"github.com/milk9111/przemekrun/session"
)

func variant(t *testing.T, name string) *prefabs.VariantSpec {
	t.Helper()
	v, err := prefabs.LoadVariant(name)
	if err != nil {
		t.Fatalf("LoadVariant failed: %v", err)
	}
	return v
}

func texts(cmds []Command) []string {
	var out []string
	for _, c := range cmds {
		if c.Kind == KindText || c.Kind == KindButton {
			out = append(out, c.Text)
		}
	}
	return out
}

func count(cmds []Command, sprite string) int {
	n := 0
	for _, c := range cmds {
		if c.Kind == KindSprite && c.Sprite == sprite {
			n++
		}
	}
	return n
}

func has(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

func baseSnapshot(v *prefabs.VariantSpec, phase component.Phase) session.Snapshot {
	return session.Snapshot{
		Phase:        phase,
		Score:        123.9,
		Lives:        3,
		MaxLives:     5,
		Player:       common.Rect{X: 50, Y: 238, W: 64, H: 64},
		PlayerSprite: "player",
		Hazards: []session.HazardView{
			{Bounds: common.Rect{X: 500, Y: 10, W: 48, H: 48}, Good: true, Sprite: "laser_good"},
			{Bounds: common.Rect{X: 700, Y: 90, W: 48, H: 48}, Sprite: "laser_bad"},
		},
		PlayLabel: v.Labels.Play,
		FieldW:    v.Field.Width,
		FieldH:    v.Field.Height,
	}
}

func TestKeyboardStartScreenOnlyShowsHint(t *testing.T) {
	v := variant(t, "keyboard")
	cmds := Plan(baseSnapshot(v, component.PhaseNotStarted), v, 0)
	if len(cmds) != 1 || cmds[0].Text != v.Labels.StartHint || cmds[0].Align != AlignCenter {
		t.Fatalf("unexpected start screen %+v", cmds)
	}
	if cmds[0].X != 480 || cmds[0].Y != 270 {
		t.Fatalf("expected hint centred, got (%v,%v)", cmds[0].X, cmds[0].Y)
	}
}

func TestKeyboardRunning(t *testing.T) {
	v := variant(t, "keyboard")
	cmds := Plan(baseSnapshot(v, component.PhaseRunning), v, 0)

	if count(cmds, "player") != 1 || count(cmds, "laser_good") != 1 || count(cmds, "laser_bad") != 1 {
		t.Fatalf("unexpected sprites %+v", cmds)
	}
	if count(cmds, "health") != 3 {
		t.Fatalf("expected 3 hearts")
	}
	for _, c := range cmds {
		if c.Kind == KindButton {
			t.Fatalf("keyboard variant must not draw buttons")
		}
	}

	var hearts []common.Rect
	for _, c := range cmds {
		if c.Sprite == "health" {
			hearts = append(hearts, c.Rect)
		}
	}
	if hearts[2] != (common.Rect{X: 78, Y: 10, W: 32, H: 32}) {
		t.Fatalf("unexpected third heart %+v", hearts[2])
	}

	if !has(texts(cmds), "Score: 123") {
		t.Fatalf("expected floored score text, got %v", texts(cmds))
	}
}

func TestBlink(t *testing.T) {
	v := variant(t, "keyboard")
	snap := baseSnapshot(v, component.PhaseRunning)
	snap.Invulnerable = true

	if count(Plan(snap, v, 50), "player") != 1 {
		t.Fatalf("expected player visible in even blink slot")
	}
	if count(Plan(snap, v, 150), "player") != 0 {
		t.Fatalf("expected player hidden in odd blink slot")
	}
}

func TestGameOverOverlay(t *testing.T) {
	v := variant(t, "keyboard")
	snap := baseSnapshot(v, component.PhaseOver)
	got := texts(Plan(snap, v, 0))
	for _, want := range []string{"PRZEJEBAŁEŚ...", "Wynik: 123", v.Labels.RetryHint} {
		if !has(got, want) {
			t.Fatalf("missing %q in %v", want, got)
		}
	}
}

func TestTouchButtons(t *testing.T) {
	v := variant(t, "touch")

	t.Run("running", func(t *testing.T) {
		got := texts(Plan(baseSnapshot(v, component.PhaseRunning), v, 0))
		for _, want := range []string{"▲", "▼", "II", "123"} {
			if !has(got, want) {
				t.Fatalf("missing %q in %v", want, got)
			}
		}
		if has(got, "GRAJ") {
			t.Fatalf("play button shown while running")
		}
	})

	t.Run("paused", func(t *testing.T) {
		got := texts(Plan(baseSnapshot(v, component.PhasePaused), v, 0))
		if !has(got, "PAUZA") || !has(got, "II") {
			t.Fatalf("expected pause banner and pause button, got %v", got)
		}
	})

	t.Run("over shows retry label", func(t *testing.T) {
		snap := baseSnapshot(v, component.PhaseOver)
		snap.PlayLabel = v.Labels.Retry
		got := texts(Plan(snap, v, 0))
		if !has(got, "SPRÓBUJ ZNOWU") || has(got, "▲") {
			t.Fatalf("unexpected game over controls %v", got)
		}
	})

	t.Run("not started draws the field", func(t *testing.T) {
		cmds := Plan(baseSnapshot(v, component.PhaseNotStarted), v, 0)
		if count(cmds, "player") != 1 || !has(texts(cmds), "GRAJ") {
			t.Fatalf("expected field and play button before start")
		}
	})
}

func TestFormatScore(t *testing.T) {
	tests := map[float64]string{0: "0", 0.99: "0", 1000: "1000", 59.5: "59"}
	for in, want := range tests {
		if got := FormatScore(in); got != want {
			t.Fatalf("FormatScore(%v) = %q, want %q", in, got, want)
		}
	}
}
