package system

import (
	"github.com/milk9111/przemekrun/ecs"
	"github.com/milk9111/przemekrun/ecs/component"
)

// CueSink is the output side of the audio system.
type CueSink interface {
	Cue(c component.Cue)
	SetPlaybackRate(rate float64)
}

// AudioSystem forwards queued cues to a sink in the order they were raised
// and keeps the music playback rate in step with the session.
type AudioSystem struct {
	sink CueSink
}

func NewAudioSystem(sink CueSink) *AudioSystem {
	return &AudioSystem{sink: sink}
}

func (a *AudioSystem) Update(w *ecs.World) {
	q := w.Events()
	if q == nil {
		return
	}

	events := q.Drain()
	if a.sink == nil {
		return
	}
	for _, ev := range events {
		if ev.Type != component.CueEventType {
			continue
		}
		if cue, ok := ev.Data.(component.Cue); ok {
			a.sink.Cue(cue)
		}
	}
	if sess := currentSession(w); sess != nil {
		a.sink.SetPlaybackRate(sess.PlaybackRate)
	}
}
