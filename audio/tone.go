package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// tone is a decaying sine streamer used for synthesized effects.
// Each Play gets its own instance; the mixer drains it to completion
type tone struct {
	freq     float64
	sweep    float64 // frequency delta applied linearly over the duration
	volume   float64
	total    int
	position int
}

// newTone builds a streamer for freq Hz lasting the given sample count
func newTone(freq, sweep, volume float64, samples int) *tone {
	return &tone{
		freq:   freq,
		sweep:  sweep,
		volume: volume,
		total:  samples,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.position >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.position >= t.total {
			return i, true
		}
		progress := float64(t.position) / float64(t.total)
		freq := t.freq + t.sweep*progress
		phase := 2 * math.Pi * freq * float64(t.position) / float64(sampleRate)

		// Exponential decay keeps short effects from clicking
		envelope := math.Exp(-4 * progress)
		v := math.Sin(phase) * envelope * t.volume

		samples[i][0] = v
		samples[i][1] = v
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

var _ beep.Streamer = (*tone)(nil)
