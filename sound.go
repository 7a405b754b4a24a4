package main

import (
	"log"
	"time"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/przemekrun/audio"
)

// Sound plays the mixing engine through Ebitengine's audio context.
type Sound struct {
	Engine *audio.Engine
	player *ebaudio.Player
}

// StartSound opens the audio device. On failure the game runs silently with
// the engine still accepting cues.
func StartSound(engine *audio.Engine) *Sound {
	s := &Sound{Engine: engine}
	ctx := ebaudio.NewContext(int(audio.SampleRate))
	player, err := ctx.NewPlayerF32(audio.NewPCMReader(engine))
	if err != nil {
		log.Printf("audio: %v, continuing without sound", err)
		return s
	}
	player.SetBufferSize(60 * time.Millisecond)
	player.Play()
	s.player = player
	return s
}

// Status reports the engine state, or "muted" when no device opened.
func (s *Sound) Status() string {
	if s == nil || s.player == nil {
		return "sound muted"
	}
	return s.Engine.Status()
}
