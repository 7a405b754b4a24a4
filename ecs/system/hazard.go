package system

import (
	"sort"

	"github.com/milk9111/przemekrun/ecs"
	"github.com/milk9111/przemekrun/ecs/component"
)

// HazardSystem scrolls lasers left, resolves their contact with the player
// and removes spent or off-screen lasers.
type HazardSystem struct{}

func NewHazardSystem() *HazardSystem {
	return &HazardSystem{}
}

type hazardRef struct {
	e      ecs.Entity
	hazard *component.Hazard
	t      *component.Transform
	c      *component.Collider
}

func (h *HazardSystem) Update(w *ecs.World) {
	sess := currentSession(w)
	if !sess.Running() {
		return
	}

	var hazards []hazardRef
	ecs.ForEach3(w, component.HazardComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(),
		func(e ecs.Entity, hz *component.Hazard, t *component.Transform, c *component.Collider) {
			hazards = append(hazards, hazardRef{e: e, hazard: hz, t: t, c: c})
		})
	// Newest first.
	sort.Slice(hazards, func(i, j int) bool {
		return hazards[i].hazard.Seq > hazards[j].hazard.Seq
	})

	pe, hasPlayer := player(w)
	var pt *component.Transform
	var pc *component.Collider
	var health *component.Health
	if hasPlayer {
		pt, _ = ecs.Get(w, pe, component.TransformComponent.Kind())
		pc, _ = ecs.Get(w, pe, component.ColliderComponent.Kind())
		health, _ = ecs.Get(w, pe, component.HealthComponent.Kind())
	}

	spent := make([]ecs.Entity, 0, len(hazards))
	for _, ref := range hazards {
		ref.t.X -= ref.hazard.BaseSpeed * sess.Difficulty

		if pt != nil && pc != nil && pc.Bounds(*pt).Overlaps(ref.c.Bounds(*ref.t)) {
			h.resolve(w, pe, ref.hazard, health)
			spent = append(spent, ref.e)
			continue
		}

		if ref.t.X+ref.c.Width < 0 {
			spent = append(spent, ref.e)
		}
	}

	for _, e := range spent {
		ecs.DestroyEntity(w, e)
	}
}

func (h *HazardSystem) resolve(w *ecs.World, pe ecs.Entity, hz *component.Hazard, health *component.Health) {
	if health == nil {
		return
	}

	if hz.Good {
		if health.Current < health.Max {
			health.Current++
			EmitCue(w, component.CueHeal)
		}
		return
	}

	if ecs.Has(w, pe, component.InvulnerableComponent.Kind()) {
		return
	}
	health.Current--
	_ = ecs.Add(w, pe, component.InvulnerableComponent.Kind(), &component.Invulnerable{RemainingMs: InvulnerabilityMs, Fresh: true})
	EmitCue(w, component.CueHit)
}
