package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
)

// CutMethod selects how a multi-section cut slope is built.
type CutMethod int

const (
	// CutStacked cascades identical second-order Butterworth sections. Each
	// section adds 12 dB/oct, and raising the section count only appends
	// sections: the ones already running keep their coefficients.
	CutStacked CutMethod = iota

	// CutButterworth designs a maximally flat Butterworth response of order
	// 2*sections. Section Qs depend on the total order, so changing the
	// slope changes every section.
	CutButterworth
)

func (m CutMethod) String() string {
	switch m {
	case CutStacked:
		return "stacked"
	case CutButterworth:
		return "butterworth"
	default:
		return fmt.Sprintf("CutMethod(%d)", int(m))
	}
}

// ParseCutMethod parses the names returned by [CutMethod.String].
func ParseCutMethod(s string) (CutMethod, error) {
	switch s {
	case "stacked":
		return CutStacked, nil
	case "butterworth":
		return CutButterworth, nil
	default:
		return 0, fmt.Errorf("unknown cut method %q", s)
	}
}

// HighpassCascade designs a highpass (low-cut) cascade of the given number
// of second-order sections. Returns nil for sections <= 0.
func HighpassCascade(method CutMethod, freq float64, sections int, sampleRate float64, opts ...Option) []biquad.Coefficients {
	return cascade(method, sections, func(q float64) biquad.Coefficients {
		return Highpass(freq, q, sampleRate, opts...)
	})
}

// LowpassCascade designs a lowpass (high-cut) cascade of the given number
// of second-order sections. Returns nil for sections <= 0.
func LowpassCascade(method CutMethod, freq float64, sections int, sampleRate float64, opts ...Option) []biquad.Coefficients {
	return cascade(method, sections, func(q float64) biquad.Coefficients {
		return Lowpass(freq, q, sampleRate, opts...)
	})
}

func cascade(method CutMethod, sections int, section func(q float64) biquad.Coefficients) []biquad.Coefficients {
	if sections <= 0 {
		return nil
	}

	out := make([]biquad.Coefficients, sections)
	for i := range out {
		q := ButterworthQ
		if method == CutButterworth {
			q = butterworthQ(2*sections, sections-1-i)
		}
		out[i] = section(q)
	}

	return out
}

// butterworthQ returns the quality factor of section index of an even-order
// Butterworth filter; index ranges over [0, order/2).
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return ButterworthQ
	}

	return 1 / (2 * s)
}
