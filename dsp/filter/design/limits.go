package design

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// Limits is the clamp policy applied to design frequencies.
type Limits struct {
	// MinFreq is the lowest accepted design frequency in Hz.
	MinFreq float64
	// NyquistRatio caps design frequencies at NyquistRatio*sampleRate.
	// Must be in (0, 0.5).
	NyquistRatio float64
}

// DefaultLimits returns MinFreq = 10 Hz and NyquistRatio = 0.49.
func DefaultLimits() Limits {
	return Limits{MinFreq: 10, NyquistRatio: 0.49}
}

func (l Limits) sanitized() Limits {
	def := DefaultLimits()
	if !(l.MinFreq > 0) || !core.IsFinite(l.MinFreq) {
		l.MinFreq = def.MinFreq
	}
	if !(l.NyquistRatio > 0 && l.NyquistRatio < 0.5) {
		l.NyquistRatio = def.NyquistRatio
	}

	return l
}

// ClampFrequency maps freq into [MinFreq, NyquistRatio*sampleRate]. It
// reports false when no usable frequency exists: the sample rate is not a
// positive finite number or freq is NaN.
func (l Limits) ClampFrequency(freq, sampleRate float64) (float64, bool) {
	if !validSampleRate(sampleRate) || math.IsNaN(freq) {
		return 0, false
	}

	l = l.sanitized()
	upper := sampleRate * l.NyquistRatio
	lower := math.Min(l.MinFreq, upper)

	return core.Clamp(freq, lower, upper), true
}

func validSampleRate(sampleRate float64) bool {
	return sampleRate > 0 && core.IsFinite(sampleRate)
}

// Option configures a designer.
type Option func(*config)

type config struct {
	limits Limits
}

// WithLimits overrides the default clamp policy.
func WithLimits(l Limits) Option {
	return func(c *config) { c.limits = l }
}

func applyOptions(opts []Option) config {
	cfg := config{limits: DefaultLimits()}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	return cfg
}
