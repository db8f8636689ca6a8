package biquad

import (
	"fmt"
	"testing"
)

// benchCoeffs is a realistic lowpass-like biquad for benchmarking.
var benchCoeffs = Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}

func BenchmarkProcessSample(b *testing.B) {
	var s State
	x := 1.0
	for b.Loop() {
		x = s.ProcessSample(&benchCoeffs, x)
	}
	_ = x
}

func BenchmarkProcess(b *testing.B) {
	for _, size := range []int{256, 1024, 4096} {
		b.Run(fmt.Sprintf("N=%d", size), func(b *testing.B) {
			var s State
			buf := make([]float64, size)
			for i := range buf {
				buf[i] = float64(i) * 0.001
			}
			b.SetBytes(int64(size * 8))
			for b.Loop() {
				s.Process(&benchCoeffs, buf)
			}
		})
	}
}

func BenchmarkMagnitude(b *testing.B) {
	for b.Loop() {
		_ = benchCoeffs.Magnitude(1000, 48000)
	}
}
