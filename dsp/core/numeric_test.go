package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{5, 10, 0, 5},
		{math.Inf(1), 20, 20000, 20000},
	}

	for _, tc := range tests {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
}

func TestGainToDecibels(t *testing.T) {
	tests := []struct {
		name string
		gain float64
		want float64
	}{
		{"unity", 1, 0},
		{"double", 2, 20 * math.Log10(2)},
		{"zero", 0, MinusInfinityDB},
		{"negative", -1, MinusInfinityDB},
		{"nan", math.NaN(), MinusInfinityDB},
		{"below floor", 1e-7, MinusInfinityDB},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := GainToDecibels(tc.gain); math.Abs(got-tc.want) > 1e-12 {
				t.Fatalf("GainToDecibels(%v) = %v, want %v", tc.gain, got, tc.want)
			}
		})
	}
}

func TestDBToLinear(t *testing.T) {
	if got := DBToLinear(6); math.Abs(got-1.9952623149688795) > 1e-12 {
		t.Fatalf("DBToLinear(6) = %v", got)
	}

	if got := GainToDecibels(DBToLinear(-12)); math.Abs(got+12) > 1e-12 {
		t.Fatalf("round trip = %v, want -12", got)
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1) || IsFinite(math.NaN()) || IsFinite(math.Inf(-1)) {
		t.Fatal("IsFinite misclassified a value")
	}
}
