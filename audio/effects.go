package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/fusion-field/parameter"
)

// pentatonic holds major pentatonic ratios over the blip base frequency
var pentatonic = [...]float64{1, 9.0 / 8.0, 5.0 / 4.0, 3.0 / 2.0, 5.0 / 3.0}

// NewTone returns a sine of freq cut to duration
func NewTone(freq float64, duration time.Duration, rate beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("tone %.1f Hz: %w", freq, err)
	}
	return beep.Take(rate.N(duration), sine), nil
}

// ramp scales a stream by a linear attack and release over total samples
type ramp struct {
	beep.Streamer
	pos     int
	attack  int
	release int
	total   int
}

// NewEnvelope shapes s with attack and release ramps inside duration; s is cut at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &ramp{
		Streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (r *ramp) gain() float64 {
	g := 1.0
	if r.pos < r.attack {
		g = float64(r.pos) / float64(r.attack)
	}
	if tail := r.total - r.pos; tail < r.release {
		g = min(g, float64(tail)/float64(r.release))
	}
	return g
}

func (r *ramp) Stream(samples [][2]float64) (n int, ok bool) {
	if r.pos >= r.total {
		return 0, false
	}
	if rem := r.total - r.pos; len(samples) > rem {
		samples = samples[:rem]
	}

	n, ok = r.Streamer.Stream(samples)
	for i := range samples[:n] {
		g := r.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		r.pos++
	}
	return n, ok
}

// newVolume wraps s with linear gain
// math.Log2(0) is -Inf, so zero gain is expressed as Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// BlipFreq returns the tone for an input anchor, climbing the pentatonic scale by octave
func BlipFreq(anchor int) float64 {
	if anchor < 0 {
		anchor = 0
	}
	octave := anchor / len(pentatonic)
	return parameter.BlipBaseFreq * pentatonic[anchor%len(pentatonic)] * math.Exp2(float64(octave))
}

// CreateBlip generates the short tick played when a pulse leaves anchor
func CreateBlip(anchor int, volume float64, rate beep.SampleRate) (beep.Streamer, error) {
	tone, err := NewTone(BlipFreq(anchor), parameter.BlipDuration, rate)
	if err != nil {
		return nil, err
	}
	shaped := NewEnvelope(tone, parameter.BlipDuration, parameter.BlipAttack, parameter.BlipRelease, rate)
	return newVolume(shaped, volume), nil
}

// CreateChime generates the bell marking the chaos to fusion transition
func CreateChime(volume float64, rate beep.SampleRate) (beep.Streamer, error) {
	// Overtones die away faster than the fundamental
	partials := []struct {
		mul, gain float64
		duration  time.Duration
	}{
		{1, 0.6, parameter.ChimeDuration},
		{2, 0.25, parameter.ChimeDuration / 2},
		{3, 0.15, parameter.ChimeDuration / 4},
	}

	streams := make([]beep.Streamer, 0, len(partials))
	for _, p := range partials {
		release := min(parameter.ChimeRelease, p.duration-parameter.ChimeAttack)
		tone, err := NewTone(parameter.ChimeFreq*p.mul, p.duration, rate)
		if err != nil {
			return nil, err
		}
		shaped := NewEnvelope(tone, p.duration, parameter.ChimeAttack, release, rate)
		streams = append(streams, newVolume(shaped, p.gain))
	}
	return newVolume(beep.Mix(streams...), volume), nil
}
