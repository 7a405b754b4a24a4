package entity

import (
	"github.com/milk9111/przemekrun/ecs"
	"github.com/milk9111/przemekrun/ecs/component"
)

// NewSession creates the session singleton in its not-started state.
func NewSession(w *ecs.World) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.SessionComponent.Kind(), &component.Session{
		Phase:        component.PhaseNotStarted,
		Difficulty:   1,
		PlaybackRate: 1,
	}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	return e, nil
}
