package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/przemekrun/prefabs"
)

type spawnInputs struct {
	RandY       float64
	RandKind    float64
	Score       float64
	FieldHeight float64
	Margin      float64
	GoodChance  float64
}

// spawnScript wraps a compiled tengo program that may override where a laser
// appears and whether it is good. Scripts read rand_y, rand_kind, score,
// field_height, margin and good_chance, and assign y and good.
type spawnScript struct {
	name     string
	compiled *tengo.Compiled
}

func loadSpawnScript(name string) (*spawnScript, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("spawn script %s: %w", name, err)
	}

	script := tengo.NewScript(src)
	for _, v := range []string{"rand_y", "rand_kind", "score", "field_height", "margin", "good_chance", "y"} {
		if err := script.Add(v, 0.0); err != nil {
			return nil, fmt.Errorf("spawn script %s: add %s: %w", name, v, err)
		}
	}
	if err := script.Add("good", false); err != nil {
		return nil, fmt.Errorf("spawn script %s: add good: %w", name, err)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("spawn script %s: compile: %w", name, err)
	}
	return &spawnScript{name: name, compiled: compiled}, nil
}

func (s *spawnScript) place(in spawnInputs) (float64, bool, error) {
	vars := map[string]any{
		"rand_y":       in.RandY,
		"rand_kind":    in.RandKind,
		"score":        in.Score,
		"field_height": in.FieldHeight,
		"margin":       in.Margin,
		"good_chance":  in.GoodChance,
		"y":            in.RandY,
		"good":         in.RandKind < in.GoodChance,
	}
	for k, v := range vars {
		if err := s.compiled.Set(k, v); err != nil {
			return 0, false, err
		}
	}
	if err := s.compiled.Run(); err != nil {
		return 0, false, err
	}

	y := s.compiled.Get("y").Float()
	good := s.compiled.Get("good").Bool()
	if limit := in.FieldHeight - in.Margin; y < 0 || y > limit {
		return 0, false, fmt.Errorf("y %v outside [0, %v]", y, limit)
	}
	return y, good, nil
}
