package entity

import (
	"fmt"

	"github.com/milk9111/przemekrun/ecs"
	"github.com/milk9111/przemekrun/ecs/component"
)

// NewPlayer builds the player prefab and centres it vertically in a field of
// the given height.
func NewPlayer(w *ecs.World, prefab string, fieldHeight float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, err
	}
	if !ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("player: prefab %q has no player_tag", prefab)
	}
	if err := CenterPlayer(w, e, fieldHeight); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	return e, nil
}

// CenterPlayer moves the player back to the vertical middle of the field.
func CenterPlayer(w *ecs.World, e ecs.Entity, fieldHeight float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("player: missing transform")
	}
	c, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
	if !ok {
		return fmt.Errorf("player: missing collider")
	}
	t.Y = fieldHeight/2 - c.Height/2
	return nil
}
