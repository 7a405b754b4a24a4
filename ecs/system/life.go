package system

import (
	"log"

	"github.com/milk9111/przemekrun/ecs"
	"github.com/milk9111/przemekrun/ecs/component"
)

// LifeSystem ends the run once the player has no lives left. It runs after
// every hazard of the frame has been resolved.
type LifeSystem struct{}

func NewLifeSystem() *LifeSystem {
	return &LifeSystem{}
}

func (l *LifeSystem) Update(w *ecs.World) {
	sess := currentSession(w)
	if !sess.Running() {
		return
	}

	pe, ok := player(w)
	if !ok {
		return
	}
	health, ok := ecs.Get(w, pe, component.HealthComponent.Kind())
	if !ok || health.Current > 0 {
		return
	}

	next, err := component.NextPhase(sess.Phase, component.ActionDie)
	if err != nil {
		log.Printf("life: %v", err)
		return
	}
	sess.Phase = next
	sess.PlaybackRate = 1
	sess.Retry = true
	EmitCue(w, component.CueMusicStop)
	EmitCue(w, component.CueDeath)
}
