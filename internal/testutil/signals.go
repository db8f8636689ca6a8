// Package testutil holds deterministic signals and tolerance checks shared
// by the EQ tests.
package testutil

import (
	"math"
	"math/rand"
)

// Impulse returns a unit impulse of the given length at pos. A pos outside
// the buffer yields silence.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}

	return out
}

// DeterministicSine returns a sine at freqHz starting at phase 0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// DeterministicNoise returns uniform white noise in [-amplitude, amplitude)
// drawn from a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// Block returns channels independent copies of src, laid out the way the
// processor expects a host buffer.
func Block(src []float64, channels int) [][]float64 {
	block := make([][]float64, channels)
	for ch := range block {
		block[ch] = append([]float64(nil), src...)
	}

	return block
}

// RMS returns the root mean square of data, or 0 for an empty slice.
func RMS(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}

	var sum float64
	for _, v := range data {
		sum += v * v
	}

	return math.Sqrt(sum / float64(len(data)))
}
