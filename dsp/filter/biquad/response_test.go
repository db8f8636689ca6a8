package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestMagnitudeSquared_MatchesResponse(t *testing.T) {
	// Verify closed-form MagnitudeSquared matches |Response|^2 across frequencies.
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	sr := 48000.0

	for _, freq := range []float64{100, 500, 1000, 5000, 10000, 20000} {
		h := c.Response(freq, sr)
		fromResponse := real(h)*real(h) + imag(h)*imag(h)
		fromClosed := c.MagnitudeSquared(freq, sr)
		if !almostEqual(fromClosed, fromResponse, 1e-10) {
			t.Errorf("freq=%v: MagnitudeSquared=%.15f, |Response|²=%.15f", freq, fromClosed, fromResponse)
		}
	}
}

func TestMagnitude_MatchesResponse(t *testing.T) {
	c := Coefficients{B0: 0.9, B1: -1.6, B2: 0.75, A1: -1.6, A2: 0.65}
	sr := 44100.0

	for _, freq := range []float64{20, 440, 3000, 15000, 22050} {
		want := cmplx.Abs(c.Response(freq, sr))
		if got := c.Magnitude(freq, sr); !almostEqual(got, want, 1e-9) {
			t.Errorf("freq=%v: Magnitude=%.12f, |H|=%.12f", freq, got, want)
		}
	}
}

func TestMagnitudeDB_MatchesMagnitudeSquared(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	sr := 48000.0

	for _, freq := range []float64{100, 1000, 10000} {
		db := c.MagnitudeDB(freq, sr)
		fromSq := 10 * math.Log10(c.MagnitudeSquared(freq, sr))
		if !almostEqual(db, fromSq, 1e-12) {
			t.Errorf("freq=%v: MagnitudeDB=%.15f, 10*log10(MagSq)=%.15f", freq, db, fromSq)
		}
	}
}

func TestPhase_MatchesResponse(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	sr := 48000.0

	for _, freq := range []float64{100, 500, 1000, 5000, 10000} {
		want := cmplx.Phase(c.Response(freq, sr))
		if got := c.Phase(freq, sr); !almostEqual(got, want, 1e-10) {
			t.Errorf("freq=%v: Phase=%.15f, arg(Response)=%.15f", freq, got, want)
		}
	}
}

func TestResponse_Passthrough(t *testing.T) {
	c := passthrough()
	sr := 48000.0
	for _, freq := range []float64{0, 100, 1000, 10000, 24000} {
		if mag := c.Magnitude(freq, sr); !almostEqual(mag, 1, 1e-12) {
			t.Errorf("freq=%v: |H|=%v, want 1", freq, mag)
		}
	}
}

func TestResponse_Allpass(t *testing.T) {
	// B = reversed A gives |H(f)| = 1 for all f.
	a1, a2 := -0.5, 0.3
	c := Coefficients{B0: a2, B1: a1, B2: 1, A1: a1, A2: a2}
	sr := 48000.0
	for _, freq := range []float64{100, 500, 1000, 5000, 10000, 20000} {
		if mag := c.Magnitude(freq, sr); !almostEqual(mag, 1, 1e-10) {
			t.Errorf("freq=%v: |H|=%.15f, want 1", freq, mag)
		}
	}
}

func TestMagnitudeSquared_NeverNegative(t *testing.T) {
	// Zeros on the unit circle at Nyquist: |H| is exactly zero there.
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25}
	if got := c.MagnitudeSquared(24000, 48000); got < 0 || got > 1e-20 {
		t.Fatalf("MagnitudeSquared at zero = %g, want ~0 and >= 0", got)
	}
}

func TestImpulseResponse(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	ir := c.ImpulseResponse(6)
	want := []float64{0.25, 0.55, 0.35, 0.048, -0.0044, -0.0028}
	for i := range want {
		if !almostEqual(ir[i], want[i], eps) {
			t.Errorf("ir[%d]: got %.15f, want %.15f", i, ir[i], want[i])
		}
	}

	if c.ImpulseResponse(0) != nil || c.ImpulseResponse(-1) != nil {
		t.Error("ImpulseResponse(n<=0) should return nil")
	}
}
