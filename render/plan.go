// Package render turns a session snapshot into an ordered list of draw
// commands. Back-ends (Ebitengine, terminal) only execute the plan, so the
// layout rules live in one place.
package render

import (
	"math"
	"strconv"

	"github.com/milk9111/przemekrun/assets"
	"github.com/milk9111/przemekrun/common"
	"github.com/milk9111/przemekrun/ecs/component"
	"github.com/milk9111/przemekrun/input"
	"github.com/milk9111/przemekrun/prefabs"
	"github.com/milk9111/przemekrun/session"
)

type Kind int

const (
	KindSprite Kind = iota
	KindButton
	KindText
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Font sizes in field pixels.
const (
	SizeHUD    = 20
	SizeBanner = 40
	SizeScore  = 24
	SizeHint   = 18
	SizeStart  = 30
	SizeButton = 20
)

// Command is one draw operation. Sprites and buttons use Rect; text is
// anchored at (X, Y) on its baseline.
type Command struct {
	Kind   Kind
	Sprite string
	Rect   common.Rect
	Text   string
	Size   float64
	X, Y   float64
	Align  Align
	Good   bool
}

// Plan lays out one frame. nowMs is wall-clock time, used only for the
// invulnerability blink.
func Plan(snap session.Snapshot, v *prefabs.VariantSpec, nowMs int64) []Command {
	cx, cy := snap.FieldW/2, snap.FieldH/2

	if snap.Phase == component.PhaseNotStarted && v.Labels.StartHint != "" {
		return []Command{centerText(v.Labels.StartHint, SizeStart, cx, cy)}
	}

	cmds := make([]Command, 0, len(snap.Hazards)+12)

	if snap.PlayerVisible(nowMs, v.Hud.BlinkMs) {
		cmds = append(cmds, Command{Kind: KindSprite, Sprite: orDefault(snap.PlayerSprite, assets.SpritePlayer), Rect: snap.Player})
	}

	for _, h := range snap.Hazards {
		sprite := h.Sprite
		if sprite == "" {
			sprite = assets.SpriteLaserBad
			if h.Good {
				sprite = assets.SpriteLaserGood
			}
		}
		cmds = append(cmds, Command{Kind: KindSprite, Sprite: sprite, Rect: h.Bounds, Good: h.Good})
	}

	for i := 0; i < snap.Lives; i++ {
		cmds = append(cmds, Command{
			Kind:   KindSprite,
			Sprite: assets.SpriteHeart,
			Rect: common.Rect{
				X: v.Hud.HeartX + float64(i)*v.Hud.HeartSpacing,
				Y: v.Hud.HeartY,
				W: v.Hud.HeartSize,
				H: v.Hud.HeartSize,
			},
		})
	}

	cmds = append(cmds, Command{
		Kind: KindText,
		Text: v.Hud.ScorePrefix + FormatScore(snap.Score),
		Size: SizeHUD,
		X:    v.Hud.ScoreX,
		Y:    v.Hud.ScoreY,
	})

	if v.Controls.Scheme == prefabs.ControlsTouch {
		if input.ShowRunButtons(snap.Phase) {
			cmds = append(cmds, button(v.Buttons.Up, v.Buttons.Up.Label))
			cmds = append(cmds, button(v.Buttons.Down, v.Buttons.Down.Label))
			if v.Controls.AllowPause {
				cmds = append(cmds, button(v.Buttons.Pause, v.Buttons.Pause.Label))
			}
		} else {
			cmds = append(cmds, button(v.Buttons.Play, snap.PlayLabel))
		}
	}

	if snap.Phase == component.PhasePaused {
		cmds = append(cmds, centerText(v.Labels.Paused, SizeBanner, cx, cy))
	}

	if snap.Phase == component.PhaseOver {
		cmds = append(cmds,
			centerText(v.Labels.GameOver, SizeBanner, cx, cy+v.Labels.GameOverDY),
			centerText(v.Labels.FinalScore+FormatScore(snap.Score), SizeScore, cx, cy+v.Labels.FinalScoreDY),
		)
		if v.Labels.RetryHint != "" {
			cmds = append(cmds, centerText(v.Labels.RetryHint, SizeHint, cx, cy+v.Labels.RetryHintDY))
		}
	}

	return cmds
}

// FormatScore floors the score for display.
func FormatScore(score float64) string {
	return strconv.FormatFloat(math.Floor(score), 'f', 0, 64)
}

func centerText(s string, size, x, y float64) Command {
	return Command{Kind: KindText, Text: s, Size: size, X: x, Y: y, Align: AlignCenter}
}

func button(b prefabs.ButtonSpec, label string) Command {
	return Command{Kind: KindButton, Rect: b.Rect(), Text: label, Size: SizeButton}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
