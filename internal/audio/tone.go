package audio

import (
	"io"
	"math"
	"sync/atomic"
)

const (
	SampleRate    = 44100
	ChannelCount  = 2
	bytesPerFrame = 8 // two float32 channels
)

// Pad voices: a root, a fifth and an octave, each slowly detuned.
var padFreqs = [3]float64{110.0, 164.81, 220.0}

// Level maps field energy to a tone level in [0, 1]. Mean particle speed
// drives most of it; an engaged pointer adds a little.
func Level(meanSpeed float64, active bool) float64 {
	if math.IsNaN(meanSpeed) || meanSpeed < 0 {
		meanSpeed = 0
	}
	l := meanSpeed * 2.5
	if active {
		l += 0.2
	}
	return math.Min(1, l)
}

// Tone is an endless stereo float32 stream whose loudness follows the level
// set from the frame loop. Read runs on the audio goroutine.
type Tone struct {
	level atomic.Uint64 // float64 bits

	gain  float64
	phase [3]float64
	lfo   float64
}

func NewTone() *Tone { return &Tone{} }

// SetLevel publishes a new target level; safe from any goroutine.
func (t *Tone) SetLevel(l float64) {
	t.level.Store(math.Float64bits(math.Max(0, math.Min(1, l))))
}

func (t *Tone) Level() float64 {
	return math.Float64frombits(t.level.Load())
}

// Read fills p with whole frames. It never returns io.EOF.
func (t *Tone) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, io.ErrShortBuffer
	}
	target := t.Level() * 0.22
	// ~80 ms glide toward the target keeps level changes click-free.
	glide := 1 - math.Exp(-1/(0.08*SampleRate))
	for i := 0; i < frames; i++ {
		t.gain += (target - t.gain) * glide
		t.lfo += 2 * math.Pi * 0.07 / SampleRate
		wobble := 1 + 0.003*math.Sin(t.lfo)

		var s float64
		for v, f := range padFreqs {
			t.phase[v] += 2 * math.Pi * f * wobble / SampleRate
			if t.phase[v] > 2*math.Pi {
				t.phase[v] -= 2 * math.Pi
			}
			s += math.Sin(t.phase[v]) / float64(len(padFreqs))
		}
		s *= t.gain

		pan := 0.5 + 0.15*math.Sin(t.lfo*0.5)
		putF32(p, i*bytesPerFrame, s*(1-pan))
		putF32(p, i*bytesPerFrame+4, s*pan)
	}
	return frames * bytesPerFrame, nil
}

func putF32(buf []byte, off int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[off] = byte(v)
	buf[off+1] = byte(v >> 8)
	buf[off+2] = byte(v >> 16)
	buf[off+3] = byte(v >> 24)
}
