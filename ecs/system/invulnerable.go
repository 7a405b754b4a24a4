package system

import (
	"github.com/milk9111/przemekrun/ecs"
	"github.com/milk9111/przemekrun/ecs/component"
)

// InvulnerabilityMs is how long the player is immune after taking a hit.
const InvulnerabilityMs = 500.0

// InvulnerableSystem counts immunity timers down and clears them on expiry.
// It runs after hazards, so a window that ends this frame still blocks this
// frame's hits, and a window opened this frame is left untouched.
type InvulnerableSystem struct{}

func NewInvulnerableSystem() *InvulnerableSystem {
	return &InvulnerableSystem{}
}

func (s *InvulnerableSystem) Update(w *ecs.World) {
	sess := currentSession(w)
	if !sess.Running() {
		return
	}

	var expired []ecs.Entity
	ecs.ForEach(w, component.InvulnerableComponent.Kind(), func(e ecs.Entity, inv *component.Invulnerable) {
		if inv.Fresh {
			inv.Fresh = false
			return
		}
		inv.RemainingMs -= sess.FrameDeltaMs
		if inv.RemainingMs <= 0 {
			expired = append(expired, e)
		}
	})
	for _, e := range expired {
		ecs.Remove(w, e, component.InvulnerableComponent.Kind())
	}
}
