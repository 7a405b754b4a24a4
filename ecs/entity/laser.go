package entity

import (
	"fmt"

	"github.com/milk9111/przemekrun/ecs"
	"github.com/milk9111/przemekrun/ecs/component"
)

// NewLaser builds a laser prefab at (x, y) and stamps it with spawn order seq.
func NewLaser(w *ecs.World, prefab string, x, y float64, seq uint64) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, err
	}
	h, ok := ecs.Get(w, e, component.HazardComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("laser: prefab %q has no hazard", prefab)
	}
	h.Seq = seq
	if err := SetEntityTransform(w, e, x, y); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("laser: set transform: %w", err)
	}
	return e, nil
}
