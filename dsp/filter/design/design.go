package design

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// ButterworthQ is the quality factor of a second-order Butterworth section.
const ButterworthQ = 1 / math.Sqrt2

// Lowpass designs an RBJ lowpass biquad at freq (Hz) with quality factor q.
func Lowpass(freq, q, sampleRate float64, opts ...Option) biquad.Coefficients {
	w0, ok := normalizedW0(freq, sampleRate, applyOptions(opts).limits)
	if !ok {
		return biquad.Identity()
	}

	alpha := math.Sin(w0) / (2 * normalizedQ(q))
	cw := math.Cos(w0)

	b0 := (1 - cw) / 2
	b1 := 1 - cw
	b2 := (1 - cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// Highpass designs an RBJ highpass biquad at freq (Hz) with quality factor q.
func Highpass(freq, q, sampleRate float64, opts ...Option) biquad.Coefficients {
	w0, ok := normalizedW0(freq, sampleRate, applyOptions(opts).limits)
	if !ok {
		return biquad.Identity()
	}

	alpha := math.Sin(w0) / (2 * normalizedQ(q))
	cw := math.Cos(w0)

	b0 := (1 + cw) / 2
	b1 := -(1 + cw)
	b2 := (1 + cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// Peak designs an RBJ peaking-EQ biquad. The magnitude at freq equals
// gainDB; far from freq it tends to 0 dB.
func Peak(freq, gainDB, q, sampleRate float64, opts ...Option) biquad.Coefficients {
	w0, ok := normalizedW0(freq, sampleRate, applyOptions(opts).limits)
	if !ok {
		return biquad.Identity()
	}

	if !core.IsFinite(gainDB) {
		gainDB = 0
	}

	alpha := math.Sin(w0) / (2 * normalizedQ(q))
	cw := math.Cos(w0)
	a := math.Sqrt(core.DBToLinear(gainDB))

	b0 := 1 + alpha*a
	b1 := -2 * cw
	b2 := 1 - alpha*a
	a0 := 1 + alpha/a
	a1 := -2 * cw
	a2 := 1 - alpha/a

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

func normalizedW0(freq, sampleRate float64, limits Limits) (float64, bool) {
	f, ok := limits.ClampFrequency(freq, sampleRate)
	if !ok {
		return 0, false
	}

	return 2 * math.Pi * f / sampleRate, true
}

func normalizedQ(q float64) float64 {
	if !(q > 0) || math.IsInf(q, 0) {
		return ButterworthQ
	}

	return q
}

// normalizeBiquad divides through by a0 and falls back to the identity
// section when the result is not a finite, stable filter.
func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	if a0 == 0 || !core.IsFinite(a0) {
		return biquad.Identity()
	}

	c := biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
	if !c.Stable() {
		return biquad.Identity()
	}

	return c
}
