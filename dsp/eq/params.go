package eq

import (
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/eq/params"
)

// paramSettings reads ChainSettings from a parameter store.
type paramSettings struct {
	lowCutFreq, highCutFreq         *params.Parameter
	peakFreq, peakGain, peakQuality *params.Parameter
	lowCutSlope, highCutSlope       *params.Parameter
}

// SettingsFromParams resolves the EQ parameters in store once and returns a
// SettingsSource that builds a fresh snapshot from their current values on
// every call.
func SettingsFromParams(store *params.Store) (SettingsSource, error) {
	var ps paramSettings

	for _, b := range []struct {
		name string
		dst  **params.Parameter
	}{
		{params.LowCutFreq, &ps.lowCutFreq},
		{params.HighCutFreq, &ps.highCutFreq},
		{params.PeakFreq, &ps.peakFreq},
		{params.PeakGain, &ps.peakGain},
		{params.PeakQuality, &ps.peakQuality},
		{params.LowCutSlope, &ps.lowCutSlope},
		{params.HighCutSlope, &ps.highCutSlope},
	} {
		p, err := store.Lookup(b.name)
		if err != nil {
			return nil, fmt.Errorf("eq settings: %w", err)
		}
		*b.dst = p
	}

	return &ps, nil
}

func (ps *paramSettings) ChainSettings() ChainSettings {
	return ChainSettings{
		PeakFreq:     ps.peakFreq.Value(),
		PeakGainDB:   ps.peakGain.Value(),
		PeakQ:        ps.peakQuality.Value(),
		LowCutFreq:   ps.lowCutFreq.Value(),
		HighCutFreq:  ps.highCutFreq.Value(),
		LowCutSlope:  Slope(ps.lowCutSlope.Index()),
		HighCutSlope: Slope(ps.highCutSlope.Index()),
	}
}

// NewParamProcessor builds a Processor driven by store: settings are read
// from its parameters and every value change marks the processor dirty.
func NewParamProcessor(store *params.Store, sampleRate float64, opts ...Option) (*Processor, error) {
	src, err := SettingsFromParams(store)
	if err != nil {
		return nil, err
	}

	p := NewProcessor(src, sampleRate, opts...)
	store.AddListener(func(*params.Parameter) { p.NotifyParameterChanged() })

	return p, nil
}
