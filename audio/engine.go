// Package audio mixes the game's sound cues and looping music track into a
// single beep stream that front-ends hand to their audio device.
package audio

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/gopxl/beep"

	"github.com/milk9111/przemekrun/common"
	"github.com/milk9111/przemekrun/ecs/component"
	"github.com/milk9111/przemekrun/prefabs"
)

const (
	SampleRate = beep.SampleRate(44100)

	MusicVolume     = 0.4
	MaxPlaybackRate = 1.5
	minPlaybackRate = 0.25
)

// voice is a one-shot cue. Triggering seeks it back to the start.
type voice struct {
	buf    *beep.Buffer
	stream beep.StreamSeeker
	volume float64
	active bool
}

func newVoice(buf *beep.Buffer, volume float64) *voice {
	return &voice{buf: buf, stream: buf.Streamer(0, buf.Len()), volume: volume}
}

func (v *voice) trigger() {
	if v.buf.Len() == 0 {
		return
	}
	if err := v.stream.Seek(0); err != nil {
		log.Printf("audio: rewind cue: %v", err)
		return
	}
	v.active = true
}

func (v *voice) mixInto(dst, scratch [][2]float64) {
	if !v.active {
		return
	}
	scratch = scratch[:len(dst)]
	n, ok := v.stream.Stream(scratch)
	for i := 0; i < n; i++ {
		dst[i][0] += scratch[i][0] * v.volume
		dst[i][1] += scratch[i][1] * v.volume
	}
	if !ok || n < len(dst) {
		v.active = false
	}
}

// Engine is a beep.Streamer. It is safe to call Cue and SetPlaybackRate from
// the game loop while an audio device pulls samples on another goroutine.
type Engine struct {
	mu sync.Mutex

	voices map[component.Cue]*voice

	music       *beep.Buffer
	musicPos    beep.StreamSeeker
	resampler   *beep.Resampler
	musicVolume float64
	playing     bool
	rate        float64

	scratch [][2]float64
}

// Load builds an engine from the variant's audio entries. Files are read from
// dir when present; anything missing or undecodable is synthesised.
func Load(dir string, v *prefabs.VariantSpec) *Engine {
	byName := map[string]prefabs.AudioSpec{}
	if v != nil {
		for _, a := range v.Audio {
			byName[a.Name] = a
		}
	}

	buffer := func(name string) (*beep.Buffer, float64) {
		spec, ok := byName[name]
		vol := spec.Volume
		if !ok || vol <= 0 {
			vol = 1
			if name == "music" {
				vol = MusicVolume
			}
		}
		if ok && dir != "" && spec.File != "" {
			buf, err := loadWav(filepath.Join(dir, filepath.FromSlash(spec.File)), SampleRate)
			if err == nil {
				return buf, vol
			}
			log.Printf("audio: %s: %v, using synthesised sound", name, err)
		}
		return bufferOf(synthCue(name, SampleRate), SampleRate), vol
	}

	e := &Engine{voices: map[component.Cue]*voice{}, rate: 1}
	for _, cue := range []component.Cue{component.CueHeal, component.CueHit, component.CueDeath} {
		buf, vol := buffer(string(cue))
		e.voices[cue] = newVoice(buf, vol)
	}
	music, vol := buffer("music")
	e.setMusic(music, vol)
	return e
}

// NewEngine builds an engine from raw buffers. Cues without a buffer are silent.
func NewEngine(cues map[component.Cue]*beep.Buffer, music *beep.Buffer) *Engine {
	e := &Engine{voices: map[component.Cue]*voice{}, rate: 1}
	for cue, buf := range cues {
		e.voices[cue] = newVoice(buf, 1)
	}
	if music == nil {
		music = bufferOf(nil, SampleRate)
	}
	e.setMusic(music, MusicVolume)
	return e
}

func (e *Engine) setMusic(buf *beep.Buffer, volume float64) {
	e.music = buf
	e.musicVolume = volume
	e.musicPos = buf.Streamer(0, buf.Len())
	if buf.Len() > 0 {
		e.resampler = beep.ResampleRatio(resampleQuality, 1, beep.Loop(-1, e.musicPos))
	}
}

// Cue plays a one-shot sound or applies a music command.
func (e *Engine) Cue(c component.Cue) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch c {
	case component.CueMusicPlay:
		e.playing = true
	case component.CueMusicPause:
		e.playing = false
	case component.CueMusicStop:
		e.playing = false
		if err := e.musicPos.Seek(0); err != nil {
			log.Printf("audio: rewind music: %v", err)
		}
	default:
		if v, ok := e.voices[c]; ok {
			v.trigger()
		}
	}
}

// SetPlaybackRate changes the music speed. Rates are clamped to
// [0.25, MaxPlaybackRate].
func (e *Engine) SetPlaybackRate(rate float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	rate = common.Clamp(rate, minPlaybackRate, MaxPlaybackRate)
	if rate == e.rate {
		return
	}
	e.rate = rate
	if e.resampler != nil {
		e.resampler.SetRatio(rate)
	}
}

func (e *Engine) PlaybackRate() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rate
}

func (e *Engine) MusicPlaying() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playing
}

// Status is a one-line summary for debug overlays.
func (e *Engine) Status() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	state := "stopped"
	if e.playing {
		state = "playing"
	}
	return fmt.Sprintf("music %s x%.2f", state, e.rate)
}

// MusicPosition is the sample offset into the music track.
func (e *Engine) MusicPosition() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.musicPos.Position()
}

// Stream mixes active cues and, while playing, the music. It never ends.
func (e *Engine) Stream(samples [][2]float64) (n int, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range samples {
		samples[i] = [2]float64{}
	}
	if cap(e.scratch) < len(samples) {
		e.scratch = make([][2]float64, len(samples))
	}
	scratch := e.scratch[:len(samples)]

	if e.playing && e.resampler != nil {
		n, _ := e.resampler.Stream(scratch)
		for i := 0; i < n; i++ {
			samples[i][0] += scratch[i][0] * e.musicVolume
			samples[i][1] += scratch[i][1] * e.musicVolume
		}
	}
	for _, v := range e.voices {
		v.mixInto(samples, scratch)
	}
	return len(samples), true
}

func (e *Engine) Err() error { return nil }
