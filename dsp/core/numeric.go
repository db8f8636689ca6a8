// Package core holds the small numeric and buffer helpers shared by the EQ
// packages.
package core

import "math"

// MinusInfinityDB is the floor returned by [GainToDecibels] for silence.
const MinusInfinityDB = -100.0

// Clamp limits value to the inclusive range [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}

	return math.Min(math.Max(value, lo), hi)
}

// IsFinite reports whether v is neither NaN nor Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// GainToDecibels converts a linear amplitude to dB. Gains at or below the
// level of [MinusInfinityDB], and NaN, map to MinusInfinityDB.
func GainToDecibels(gain float64) float64 {
	if !(gain > 0) {
		return MinusInfinityDB
	}

	return math.Max(MinusInfinityDB, 20*math.Log10(gain))
}
