package eq

import (
	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
)

// ChainCoefficients is the full design result for one settings snapshot.
type ChainCoefficients struct {
	Peak         biquad.Coefficients
	LowCut       []biquad.Coefficients
	LowCutSlope  Slope
	HighCut      []biquad.Coefficients
	HighCutSlope Slope
}

// Designer turns settings into coefficients. The zero value uses stacked
// cut sections and the default frequency limits.
type Designer struct {
	Method design.CutMethod
	Limits design.Limits
}

func (d Designer) options() []design.Option {
	if d.Limits == (design.Limits{}) {
		return nil
	}

	return []design.Option{design.WithLimits(d.Limits)}
}

// Peak designs the peaking filter.
func (d Designer) Peak(s ChainSettings, sampleRate float64) biquad.Coefficients {
	return design.Peak(s.PeakFreq, s.PeakGainDB, s.PeakQ, sampleRate, d.options()...)
}

// LowCut designs the highpass cascade of the low-cut bank.
func (d Designer) LowCut(s ChainSettings, sampleRate float64) []biquad.Coefficients {
	return design.HighpassCascade(d.Method, s.LowCutFreq, s.LowCutSlope.Stages(), sampleRate, d.options()...)
}

// HighCut designs the lowpass cascade of the high-cut bank.
func (d Designer) HighCut(s ChainSettings, sampleRate float64) []biquad.Coefficients {
	return design.LowpassCascade(d.Method, s.HighCutFreq, s.HighCutSlope.Stages(), sampleRate, d.options()...)
}

// Chain designs all three positions.
func (d Designer) Chain(s ChainSettings, sampleRate float64) ChainCoefficients {
	return ChainCoefficients{
		Peak:         d.Peak(s, sampleRate),
		LowCut:       d.LowCut(s, sampleRate),
		LowCutSlope:  s.LowCutSlope,
		HighCut:      d.HighCut(s, sampleRate),
		HighCutSlope: s.HighCutSlope,
	}
}

// MakePeakFilter designs the RBJ peaking filter for s.
func MakePeakFilter(s ChainSettings, sampleRate float64) biquad.Coefficients {
	return Designer{}.Peak(s, sampleRate)
}

// MakeLowCutFilter designs s.LowCutSlope.Stages() highpass sections.
func MakeLowCutFilter(s ChainSettings, sampleRate float64) []biquad.Coefficients {
	return Designer{}.LowCut(s, sampleRate)
}

// MakeHighCutFilter designs s.HighCutSlope.Stages() lowpass sections.
func MakeHighCutFilter(s ChainSettings, sampleRate float64) []biquad.Coefficients {
	return Designer{}.HighCut(s, sampleRate)
}
