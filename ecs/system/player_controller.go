package system

import (
	"github.com/milk9111/przemekrun/common"
	"github.com/milk9111/przemekrun/ecs"
	"github.com/milk9111/przemekrun/ecs/component"
)

// PlayerControllerSystem moves the player by its per-frame speed and keeps it
// inside the vertical bounds of the field.
type PlayerControllerSystem struct {
	fieldHeight float64
}

func NewPlayerControllerSystem(fieldHeight float64) *PlayerControllerSystem {
	return &PlayerControllerSystem{fieldHeight: fieldHeight}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if !currentSession(w).Running() {
		return
	}

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, pl *component.Player, in *component.Input, t *component.Transform) {
			if in.Up {
				t.Y -= pl.Speed
			}
			if in.Down {
				t.Y += pl.Speed
			}

			height := 0.0
			if c, ok := ecs.Get(w, e, component.ColliderComponent.Kind()); ok {
				height = c.Height
			}
			t.Y = common.Clamp(t.Y, 0, p.fieldHeight-height)
		})
}
