package eq

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// Display frequency axis bounds in Hz.
const (
	MinDisplayFreq = 20.0
	MaxDisplayFreq = 20000.0
)

// LogFrequency maps pixel i of a width-pixel axis onto 20 Hz..20 kHz on a
// logarithmic scale. Pixel 0 is 20 Hz.
func LogFrequency(i, width int) float64 {
	if width <= 0 {
		return MinDisplayFreq
	}

	lo := math.Log10(MinDisplayFreq)
	hi := math.Log10(MaxDisplayFreq)

	return math.Pow(10, lo+float64(i)/float64(width)*(hi-lo))
}

// GainToDecibels converts a linear magnitude to dB with a -100 dB floor.
func GainToDecibels(gain float64) float64 {
	return core.GainToDecibels(gain)
}

// magnitudeAt returns the linear chain magnitude at freq, walking the
// positions in processing order and honoring every bypass flag.
func (c *MonoChain) magnitudeAt(freq, sampleRate float64) float64 {
	m := 1.0

	if !c.lowCutOff.Load() {
		m *= c.lowCut.magnitude(freq, sampleRate)
	}

	m *= c.peak.magnitude(freq, sampleRate)

	if !c.highCutOff.Load() {
		m *= c.highCut.magnitude(freq, sampleRate)
	}

	return m
}

// ResponseAt writes the chain's magnitude in dB at each of freqs into dst
// and returns dst[:len(freqs)]. dst is grown only when too short.
func ResponseAt(chain *MonoChain, sampleRate float64, freqs, dst []float64) []float64 {
	dst = core.EnsureLen(dst, len(freqs))

	if !(sampleRate > 0) || !core.IsFinite(sampleRate) {
		core.Zero(dst)
		return dst
	}

	for i, f := range freqs {
		dst[i] = GainToDecibels(chain.magnitudeAt(f, sampleRate))
	}

	return dst
}

// ComputeResponse returns the chain's magnitude in dB at width points on
// the logarithmic display axis. A non-positive width yields nil.
func ComputeResponse(chain *MonoChain, sampleRate float64, width int) []float64 {
	if width <= 0 {
		return nil
	}

	freqs := make([]float64, width)
	for i := range freqs {
		freqs[i] = LogFrequency(i, width)
	}

	return ResponseAt(chain, sampleRate, freqs, freqs)
}
