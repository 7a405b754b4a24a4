package audio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const bytesPerFrame = 8

// PCMReader adapts a streamer to interleaved little-endian float32 stereo,
// the format expected by Ebitengine's NewPlayerF32.
type PCMReader struct {
	s   beep.Streamer
	buf [][2]float64
}

func NewPCMReader(s beep.Streamer) *PCMReader {
	return &PCMReader{s: s}
}

func (r *PCMReader) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}
	if cap(r.buf) < frames {
		r.buf = make([][2]float64, frames)
	}
	buf := r.buf[:frames]

	n, _ := r.s.Stream(buf)
	for i := n; i < frames; i++ {
		buf[i] = [2]float64{}
	}
	for i, f := range buf {
		binary.LittleEndian.PutUint32(p[i*bytesPerFrame:], math.Float32bits(float32(f[0])))
		binary.LittleEndian.PutUint32(p[i*bytesPerFrame+4:], math.Float32bits(float32(f[1])))
	}
	return frames * bytesPerFrame, nil
}

// StartSpeaker plays the engine through the default output device. Only one
// process-wide speaker exists, so callers must not also open an Ebitengine
// audio context.
func StartSpeaker(e *Engine) error {
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(e)
	return nil
}

func StopSpeaker() {
	speaker.Clear()
	speaker.Close()
}
