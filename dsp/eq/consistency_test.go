package eq_test

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
	"github.com/cwbudde/algo-eq/measure/freqresp"
)

// TestMeasuredMatchesComputedResponse sends an impulse through the audio
// path, transforms it and compares every bin with the analytic curve.
func TestMeasuredMatchesComputedResponse(t *testing.T) {
	const (
		sr   = 48000
		size = 16384
	)

	s := eq.ChainSettings{
		PeakFreq: 2000, PeakGainDB: -8, PeakQ: 2.5,
		LowCutFreq: 100, HighCutFreq: 8000,
		LowCutSlope: eq.Slope24, HighCutSlope: eq.Slope36,
	}

	tests := []struct {
		name     string
		method   design.CutMethod
		bypassed []eq.Position
	}{
		{name: "stacked", method: design.CutStacked},
		{name: "butterworth", method: design.CutButterworth},
		{name: "peak bypassed", method: design.CutStacked, bypassed: []eq.Position{eq.Peak}},
		{name: "cuts bypassed", method: design.CutStacked, bypassed: []eq.Position{eq.LowCut, eq.HighCut}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := eq.NewProcessor(eq.StaticSettings(s), sr, eq.WithChannels(1), eq.WithCutMethod(tc.method))
			for _, pos := range tc.bypassed {
				p.SetBypassed(pos, true)
			}

			resp, err := freqresp.Measure(p, size, sr)
			if err != nil {
				t.Fatalf("Measure: %v", err)
			}

			freqs := make([]float64, len(resp.Magnitude))
			for k := range freqs {
				freqs[k] = resp.BinFrequency(k)
			}
			want := p.ResponseAt(freqs, nil)

			for k := 1; k < len(freqs); k++ {
				if want[k] < -60 {
					continue
				}

				if got := resp.MagnitudeDB(k); math.Abs(got-want[k]) > 0.05 {
					t.Fatalf("%.1f Hz: measured %.4f dB, computed %.4f dB", freqs[k], got, want[k])
				}
			}
		})
	}
}
