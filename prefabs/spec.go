package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/przemekrun/common"
)

var ErrUnknownVariant = errors.New("prefabs: unknown variant")

// Control schemes understood by the front-ends.
const (
	ControlsKeyboard = "keyboard"
	ControlsTouch    = "touch"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// VariantSpec configures one flavour of the game: field size, control scheme,
// entity prefabs, HUD layout and on-screen copy.
type VariantSpec struct {
	Name     string       `yaml:"name"`
	Field    FieldSpec    `yaml:"field"`
	Controls ControlsSpec `yaml:"controls"`
	Player   string       `yaml:"player"`
	Lasers   LasersSpec   `yaml:"lasers"`
	Spawn    SpawnSpec    `yaml:"spawn"`
	Hud      HudSpec      `yaml:"hud"`
	Labels   LabelsSpec   `yaml:"labels"`
	Buttons  ButtonsSpec  `yaml:"buttons"`
	Audio    []AudioSpec  `yaml:"audio"`
}

type FieldSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type ControlsSpec struct {
	Scheme     string `yaml:"scheme"`
	AllowPause bool   `yaml:"allow_pause"`
}

type LasersSpec struct {
	Good string `yaml:"good"`
	Bad  string `yaml:"bad"`
}

type SpawnSpec struct {
	IntervalMs float64 `yaml:"interval_ms"`
	GoodChance float64 `yaml:"good_chance"`
	Margin     float64 `yaml:"margin"`
	Script     string  `yaml:"script"`
}

type HudSpec struct {
	HeartSize    float64 `yaml:"heart_size"`
	HeartSpacing float64 `yaml:"heart_spacing"`
	HeartX       float64 `yaml:"heart_x"`
	HeartY       float64 `yaml:"heart_y"`
	ScoreX       float64 `yaml:"score_x"`
	ScoreY       float64 `yaml:"score_y"`
	ScorePrefix  string  `yaml:"score_prefix"`
	BlinkMs      int64   `yaml:"blink_ms"`
}

type LabelsSpec struct {
	StartHint    string  `yaml:"start_hint"`
	GameOver     string  `yaml:"game_over"`
	FinalScore   string  `yaml:"final_score"`
	RetryHint    string  `yaml:"retry_hint"`
	Play         string  `yaml:"play"`
	Retry        string  `yaml:"retry"`
	Paused       string  `yaml:"paused"`
	GameOverDY   float64 `yaml:"game_over_dy"`
	FinalScoreDY float64 `yaml:"final_score_dy"`
	RetryHintDY  float64 `yaml:"retry_hint_dy"`
}

type ButtonSpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
	Label string  `yaml:"label"`
}

func (b ButtonSpec) Rect() common.Rect {
	return common.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

type ButtonsSpec struct {
	Up    ButtonSpec `yaml:"up"`
	Down  ButtonSpec `yaml:"down"`
	Play  ButtonSpec `yaml:"play"`
	Pause ButtonSpec `yaml:"pause"`
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
	Loop   bool    `yaml:"loop"`
}

// Variants lists the embedded variant names.
var Variants = []string{"keyboard", "touch"}

// LoadVariant loads and validates the named variant spec.
func LoadVariant(name string) (*VariantSpec, error) {
	known := false
	for _, v := range Variants {
		if v == name {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}

	spec, err := LoadSpec[VariantSpec](name + ".yaml")
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: variant %s: %w", name, err)
	}
	return &spec, nil
}

func (v *VariantSpec) applyDefaults() {
	if v.Controls.Scheme == "" {
		v.Controls.Scheme = ControlsKeyboard
	}
	if v.Spawn.IntervalMs <= 0 {
		v.Spawn.IntervalMs = 800
	}
	if v.Hud.BlinkMs <= 0 {
		v.Hud.BlinkMs = 100
	}
}

// Validate rejects specs the simulation cannot run with.
func (v *VariantSpec) Validate() error {
	switch {
	case v.Field.Width <= 0 || v.Field.Height <= 0:
		return fmt.Errorf("field must have a positive size, got %vx%v", v.Field.Width, v.Field.Height)
	case v.Player == "":
		return errors.New("player prefab is required")
	case v.Lasers.Good == "" || v.Lasers.Bad == "":
		return errors.New("good and bad laser prefabs are required")
	case v.Spawn.GoodChance < 0 || v.Spawn.GoodChance > 1:
		return fmt.Errorf("spawn.good_chance must be within [0, 1], got %v", v.Spawn.GoodChance)
	case v.Controls.Scheme != ControlsKeyboard && v.Controls.Scheme != ControlsTouch:
		return fmt.Errorf("unknown control scheme %q", v.Controls.Scheme)
	}
	return nil
}

// AudioByName returns the audio entry with the given name.
func (v *VariantSpec) AudioByName(name string) (AudioSpec, bool) {
	for _, a := range v.Audio {
		if a.Name == name {
			return a, true
		}
	}
	return AudioSpec{}, false
}
