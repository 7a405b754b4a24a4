package system

import (
	"github.com/milk9111/przemekrun/ecs"
	"github.com/milk9111/przemekrun/ecs/component"
)

func currentSession(w *ecs.World) *component.Session {
	e, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return nil
	}
	s, _ := ecs.Get(w, e, component.SessionComponent.Kind())
	return s
}

func player(w *ecs.World) (ecs.Entity, bool) {
	return ecs.First(w, component.PlayerTagComponent.Kind())
}

// EmitCue queues a sound or music command for the audio system.
func EmitCue(w *ecs.World, cue component.Cue) {
	if q := w.Events(); q != nil {
		q.Push(ecs.Event{Type: component.CueEventType, Data: cue})
	}
}
