package session

import (
	"sort"

	"github.com/milk9111/przemekrun/common"
	"github.com/milk9111/przemekrun/ecs"
	"github.com/milk9111/przemekrun/ecs/component"
)

// HazardView is the drawable part of a laser.
type HazardView struct {
	Bounds common.Rect
	Good   bool
	Sprite string
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Phase        component.Phase
	Score        float64
	Lives        int
	MaxLives     int
	Player       common.Rect
	PlayerSprite string
	Invulnerable bool
	// Hazards are in spawn order, oldest first.
	Hazards   []HazardView
	PlayLabel string
	FieldW    float64
	FieldH    float64
}

func (s *Session) Snapshot() Snapshot {
	st := s.state()
	snap := Snapshot{
		Phase:     st.Phase,
		Score:     st.Score,
		PlayLabel: s.variant.Labels.Play,
		FieldW:    s.variant.Field.Width,
		FieldH:    s.variant.Field.Height,
	}
	if st.Retry {
		snap.PlayLabel = s.variant.Labels.Retry
	}

	w := s.world
	pe := s.playerEntity
	if t, ok := ecs.Get(w, pe, component.TransformComponent.Kind()); ok {
		if c, ok := ecs.Get(w, pe, component.ColliderComponent.Kind()); ok {
			snap.Player = c.Bounds(*t)
		}
	}
	if h, ok := ecs.Get(w, pe, component.HealthComponent.Kind()); ok {
		snap.Lives = h.Current
		snap.MaxLives = h.Max
	}
	if sp, ok := ecs.Get(w, pe, component.SpriteComponent.Kind()); ok {
		snap.PlayerSprite = sp.Name
	}
	snap.Invulnerable = ecs.Has(w, pe, component.InvulnerableComponent.Kind())

	type ordered struct {
		seq  uint64
		view HazardView
	}
	var hz []ordered
	ecs.ForEach3(w, component.HazardComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(),
		func(e ecs.Entity, h *component.Hazard, t *component.Transform, c *component.Collider) {
			v := HazardView{Bounds: c.Bounds(*t), Good: h.Good}
			if sp, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
				v.Sprite = sp.Name
			}
			hz = append(hz, ordered{seq: h.Seq, view: v})
		})
	sort.Slice(hz, func(i, j int) bool { return hz[i].seq < hz[j].seq })
	snap.Hazards = make([]HazardView, len(hz))
	for i := range hz {
		snap.Hazards[i] = hz[i].view
	}

	return snap
}

// PlayerVisible reports whether the player should be drawn at wall-clock time
// nowMs. While invulnerable the sprite blinks with the given period.
func (s Snapshot) PlayerVisible(nowMs, blinkMs int64) bool {
	if !s.Invulnerable || blinkMs <= 0 {
		return true
	}
	return (nowMs/blinkMs)%2 == 0
}
