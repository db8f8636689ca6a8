package freqresp

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// ErrInvalidFrequency is returned for tone frequencies outside (0, Nyquist).
var ErrInvalidFrequency = errors.New("freqresp: frequency must be between 0 and sampleRate/2")

// goertzel evaluates a single DFT bin over the samples fed to it.
type goertzel struct {
	coeff  float64
	s0, s1 float64
}

func newGoertzel(freq, sampleRate float64) goertzel {
	return goertzel{coeff: 2 * math.Cos(2*math.Pi*freq/sampleRate)}
}

func (g *goertzel) processBlock(in []float64) {
	s0, s1 := g.s0, g.s1
	for _, x := range in {
		s := x + g.coeff*s0 - s1
		s1 = s0
		s0 = s
	}
	g.s0, g.s1 = s0, s1
}

func (g *goertzel) magnitude() float64 {
	p := g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
	if p <= 0 {
		return 0
	}

	return math.Sqrt(p)
}

// ToneGain drives p with n samples of a unit sine at freq and returns the
// steady-state gain in dB. At most the last half of the output is
// compared with the input at freq; the rest is settling time. p should
// start from cleared state.
func ToneGain(p BlockProcessor, freq, sampleRate float64, n int) (float64, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("sample rate %v: %w", sampleRate, ErrInvalidSampleRate)
	}

	if !(freq > 0) || freq >= sampleRate/2 {
		return 0, fmt.Errorf("tone %v Hz: %w", freq, ErrInvalidFrequency)
	}

	if n < 4 {
		return 0, fmt.Errorf("tone length %d: %w", n, ErrInvalidSize)
	}

	in := make([]float64, n)
	step := 2 * math.Pi * freq / sampleRate
	for i := range in {
		in[i] = math.Sin(step * float64(i))
	}

	out := append([]float64(nil), in...)
	p.Process([][]float64{out})

	// Analyze a whole number of periods at the end of the buffer to keep
	// leakage from the negative-frequency image out of the ratio.
	span := n / 2
	if periods := math.Floor(float64(span) * freq / sampleRate); periods >= 1 {
		span = int(math.Round(periods * sampleRate / freq))
	}

	ref := newGoertzel(freq, sampleRate)
	ref.processBlock(in[n-span:])

	got := newGoertzel(freq, sampleRate)
	got.processBlock(out[n-span:])

	return core.GainToDecibels(got.magnitude() / ref.magnitude()), nil
}
