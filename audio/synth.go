package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator returns a finite tone of the given shape.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(int64(freq) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume maps to a silent stage.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func note(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// synthCue renders the built-in sound for a cue name.
func synthCue(name string, rate beep.SampleRate) beep.Streamer {
	switch name {
	case "heal":
		// Rising fifth.
		return newVolume(beep.Seq(
			note(659.25, 80*time.Millisecond, WaveSine, rate),
			note(987.77, 140*time.Millisecond, WaveSine, rate),
		), 0.6)
	case "hit":
		return newVolume(beep.Take(rate.N(180*time.Millisecond), beep.Mix(
			note(110, 180*time.Millisecond, WaveSaw, rate),
			newVolume(note(0, 120*time.Millisecond, WaveNoise, rate), 0.4),
		)), 0.5)
	case "death":
		return newVolume(beep.Seq(
			note(392, 160*time.Millisecond, WaveSquare, rate),
			note(311.13, 160*time.Millisecond, WaveSquare, rate),
			note(261.63, 160*time.Millisecond, WaveSquare, rate),
			note(196, 400*time.Millisecond, WaveSquare, rate),
		), 0.35)
	case "music":
		// Minor arpeggio over a bass pulse, two seconds per bar.
		var bar []beep.Streamer
		for _, f := range []float64{220, 261.63, 329.63, 261.63, 196, 246.94, 293.66, 246.94} {
			bar = append(bar, beep.Take(rate.N(250*time.Millisecond), beep.Mix(
				note(f, 250*time.Millisecond, WaveSquare, rate),
				newVolume(note(f/2, 250*time.Millisecond, WaveSine, rate), 0.8),
			)))
		}
		return newVolume(beep.Seq(bar...), 0.4)
	}
	return nil
}
