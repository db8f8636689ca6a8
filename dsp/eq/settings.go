package eq

import "fmt"

// MaxCutStages is the number of biquad slots in each cut bank.
const MaxCutStages = 4

// Slope is the roll-off of a cut filter.
type Slope int

// Each slope step adds one second-order section.
const (
	Slope12 Slope = iota
	Slope24
	Slope36
	Slope48
)

// Stages returns the number of active biquad sections, 1 to MaxCutStages.
// Out-of-range slopes are clamped.
func (s Slope) Stages() int {
	return int(s.clamped()) + 1
}

// Order returns the roll-off in dB per octave.
func (s Slope) Order() int {
	return 12 * s.Stages()
}

func (s Slope) clamped() Slope {
	switch {
	case s < Slope12:
		return Slope12
	case s > Slope48:
		return Slope48
	default:
		return s
	}
}

func (s Slope) String() string {
	return fmt.Sprintf("%ddB/oct", s.Order())
}

// SlopeFromOrder maps 12, 24, 36 or 48 dB/oct to a Slope.
func SlopeFromOrder(order int) (Slope, error) {
	if order < 12 || order > 12*MaxCutStages || order%12 != 0 {
		return 0, fmt.Errorf("slope order %d: want 12, 24, 36 or 48", order)
	}

	return Slope(order/12 - 1), nil
}

// ChainSettings is a snapshot of the user-facing EQ parameters. It is a
// plain value; every read from a [SettingsSource] returns a fresh copy.
type ChainSettings struct {
	PeakFreq   float64 // Hz
	PeakGainDB float64
	PeakQ      float64

	LowCutFreq  float64 // Hz
	HighCutFreq float64 // Hz

	LowCutSlope  Slope
	HighCutSlope Slope
}

// DefaultChainSettings returns a flat EQ: 750 Hz / 0 dB / Q 1 peak, cuts at
// 20 Hz and 20 kHz with 12 dB/oct.
func DefaultChainSettings() ChainSettings {
	return ChainSettings{
		PeakFreq:     750,
		PeakGainDB:   0,
		PeakQ:        1,
		LowCutFreq:   20,
		HighCutFreq:  20000,
		LowCutSlope:  Slope12,
		HighCutSlope: Slope12,
	}
}

// SettingsSource supplies settings snapshots to a [Processor].
type SettingsSource interface {
	ChainSettings() ChainSettings
}

// SettingsFunc adapts a function to a SettingsSource.
type SettingsFunc func() ChainSettings

// ChainSettings calls f.
func (f SettingsFunc) ChainSettings() ChainSettings {
	return f()
}

// StaticSettings is a SettingsSource that always returns the same snapshot.
type StaticSettings ChainSettings

// ChainSettings returns s.
func (s StaticSettings) ChainSettings() ChainSettings {
	return ChainSettings(s)
}
