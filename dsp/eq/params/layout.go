package params

// Parameter names of the EQ layout.
const (
	LowCutFreq   = "LowCut Freq"
	HighCutFreq  = "HighCut Freq"
	PeakFreq     = "Peak Freq"
	PeakGain     = "Peak Gain"
	PeakQuality  = "Peak Quality"
	LowCutSlope  = "LowCut Slope"
	HighCutSlope = "HighCut Slope"
)

// SlopeChoices is the number of cut slope settings: 12, 24, 36, 48 dB/oct.
const SlopeChoices = 4

// freqSkew gives each decade of 20 Hz..20 kHz roughly equal travel.
const freqSkew = 0.25

// Layout returns fresh parameters for the EQ: three frequencies, peak gain
// and quality, and two slope choices.
func Layout() []*Parameter {
	return []*Parameter{
		New(LowCutFreq, "Hz", 20, 20000, 20, freqSkew),
		New(HighCutFreq, "Hz", 20, 20000, 20000, freqSkew),
		New(PeakFreq, "Hz", 20, 20000, 750, freqSkew),
		New(PeakGain, "dB", -24, 24, 0, 1),
		New(PeakQuality, "", 0.1, 10, 1, 1),
		NewChoice(LowCutSlope, SlopeChoices, 0),
		NewChoice(HighCutSlope, SlopeChoices, 0),
	}
}

// NewEQStore returns a store holding [Layout].
func NewEQStore() *Store {
	s, err := NewStore(Layout()...)
	if err != nil {
		panic(err)
	}

	return s
}
