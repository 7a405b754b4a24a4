package audio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

const resampleQuality = 4

// loadWav decodes a wav file into a buffer at the engine sample rate.
func loadWav(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != rate {
		s = beep.Resample(resampleQuality, format.SampleRate, rate, streamer)
	}

	out := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	out.Append(s)
	if out.Len() == 0 {
		return nil, fmt.Errorf("decode %s: no samples", filepath.Base(path))
	}
	return out, nil
}

func bufferOf(s beep.Streamer, rate beep.SampleRate) *beep.Buffer {
	out := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	if s != nil {
		out.Append(s)
	}
	return out
}
