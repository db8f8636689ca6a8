package eq

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-eq/internal/testutil"
)

func TestLogFrequency(t *testing.T) {
	if got := LogFrequency(0, 500); math.Abs(got-20) > 1e-9 {
		t.Fatalf("pixel 0 = %v, want 20", got)
	}

	if got := LogFrequency(500, 500); math.Abs(got-20000) > 1e-6 {
		t.Fatalf("pixel width = %v, want 20000", got)
	}

	if got := LogFrequency(250, 500); math.Abs(got-math.Sqrt(20*20000)) > 1e-6 {
		t.Fatalf("mid pixel = %v, want geometric mean", got)
	}

	if got := LogFrequency(3, 0); got != MinDisplayFreq {
		t.Fatalf("zero width = %v", got)
	}
}

func TestComputeResponseEmptyChainIsFlat(t *testing.T) {
	var chain MonoChain

	curve := ComputeResponse(&chain, 48000, 64)
	if len(curve) != 64 {
		t.Fatalf("len = %d, want 64", len(curve))
	}

	testutil.RequireSliceNearlyEqual(t, curve, make([]float64, 64), 0)

	if ComputeResponse(&chain, 48000, 0) != nil {
		t.Fatal("zero width should return nil")
	}
}

func TestComputeResponseMatchesSectionProduct(t *testing.T) {
	const sr = 44100

	cc := Designer{}.Chain(testSettings(), sr)

	var chain MonoChain
	chain.Apply(cc)

	curve := ComputeResponse(&chain, sr, 200)
	for i, got := range curve {
		f := LogFrequency(i, 200)

		m := cc.Peak.Magnitude(f, sr)
		for j := range cc.LowCut {
			m *= cc.LowCut[j].Magnitude(f, sr)
		}
		for j := range cc.HighCut {
			m *= cc.HighCut[j].Magnitude(f, sr)
		}

		if want := GainToDecibels(m); math.Abs(got-want) > 1e-9 {
			t.Fatalf("pixel %d (%.1f Hz): %v dB, want %v", i, f, got, want)
		}
	}
}

func TestComputeResponseHonorsBypass(t *testing.T) {
	const sr = 48000

	s := testSettings()
	cc := Designer{}.Chain(s, sr)

	var chain MonoChain
	chain.Apply(cc)
	chain.SetBypassed(LowCut, true)
	chain.SetBypassed(HighCut, true)

	freqs := []float64{50, 1000, 15000}
	got := ResponseAt(&chain, sr, freqs, nil)
	for i, f := range freqs {
		if want := cc.Peak.MagnitudeDB(f, sr); math.Abs(got[i]-want) > 1e-9 {
			t.Fatalf("%v Hz: %v dB, want peak only %v", f, got[i], want)
		}
	}

	chain.SetBypassed(Peak, true)
	got = ResponseAt(&chain, sr, freqs, got)
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 0, 0}, 0)
}

func TestResponseAtReusesBuffer(t *testing.T) {
	var chain MonoChain
	chain.Apply(Designer{}.Chain(testSettings(), 48000))

	freqs := []float64{100, 1000}
	dst := make([]float64, 0, 8)

	got := ResponseAt(&chain, 48000, freqs, dst)
	if len(got) != 2 || &got[0] != &dst[:1][0] {
		t.Fatal("ResponseAt did not reuse dst")
	}

	allocs := testing.AllocsPerRun(100, func() {
		ResponseAt(&chain, 48000, freqs, dst)
	})
	if allocs != 0 {
		t.Fatalf("ResponseAt allocated %v times", allocs)
	}

	got = ResponseAt(&chain, 0, freqs, dst)
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 0}, 0)
}

func TestGainToDecibelsFloor(t *testing.T) {
	if got := GainToDecibels(0); got != -100 {
		t.Fatalf("GainToDecibels(0) = %v, want -100", got)
	}

	if got := GainToDecibels(10); math.Abs(got-20) > 1e-12 {
		t.Fatalf("GainToDecibels(10) = %v, want 20", got)
	}
}
