package eq

import (
	"testing"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
	"github.com/cwbudde/algo-eq/internal/testutil"
)

func TestCutBankActiveStages(t *testing.T) {
	for _, slope := range []Slope{Slope12, Slope24, Slope36, Slope48} {
		var b CutBank
		b.Update(design.HighpassCascade(design.CutStacked, 100, slope.Stages(), 48000), slope)

		if got := b.ActiveStages(); got != slope.Order()/12 {
			t.Fatalf("%v: active stages = %d, want %d", slope, got, slope.Order()/12)
		}

		for i := range MaxCutStages {
			want := i >= slope.Stages()
			if got := b.IsBypassed(i); got != want {
				t.Fatalf("%v: slot %d bypassed = %v, want %v", slope, i, got, want)
			}
		}
	}
}

func TestCutBankUpdateIgnoresExtraAndMissingSections(t *testing.T) {
	coeffs := design.LowpassCascade(design.CutStacked, 5000, 4, 48000)

	var b CutBank
	b.Update(coeffs, Slope24)
	if b.ActiveStages() != 2 || !b.IsBypassed(2) {
		t.Fatalf("extra sections: active %d", b.ActiveStages())
	}

	b.Update(coeffs[:1], Slope48)
	if b.ActiveStages() != 1 || !b.IsBypassed(1) {
		t.Fatalf("missing sections: active %d", b.ActiveStages())
	}

	if _, ok := b.Coefficients(1); ok {
		t.Fatal("slot 1 should hold no coefficients")
	}

	if c, ok := b.Coefficients(0); !ok || c != coeffs[0] {
		t.Fatalf("slot 0 = %+v, %v", c, ok)
	}
}

func TestCutBankEmptyPassesThrough(t *testing.T) {
	var b CutBank

	in := testutil.DeterministicNoise(1, 1, 64)
	buf := append([]float64(nil), in...)
	b.Process(buf)

	testutil.RequireSliceNearlyEqual(t, buf, in, 0)

	if b.ActiveStages() != 0 || !b.IsBypassed(0) || !b.IsBypassed(-1) || !b.IsBypassed(MaxCutStages) {
		t.Fatal("empty bank should report every slot bypassed")
	}
}

func TestCutBankSetBypassed(t *testing.T) {
	coeffs := design.HighpassCascade(design.CutStacked, 200, 2, 48000)

	var b CutBank
	b.Update(coeffs, Slope24)
	b.SetBypassed(1, true)
	b.SetBypassed(7, true)

	if !b.IsBypassed(1) || b.IsBypassed(0) {
		t.Fatal("SetBypassed(1) not applied")
	}

	if b.ActiveStages() != 2 {
		t.Fatalf("ActiveStages = %d after SetBypassed, want 2", b.ActiveStages())
	}

	// Only slot 0 runs: output equals a single section.
	in := testutil.DeterministicNoise(3, 1, 256)
	got := append([]float64(nil), in...)
	b.Process(got)

	var st biquad.State
	want := append([]float64(nil), in...)
	st.Process(&coeffs[0], want)

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)

	// A bypass flag on a slot without coefficients keeps it disabled.
	var empty CutBank
	empty.SetBypassed(0, false)
	if !empty.IsBypassed(0) {
		t.Fatal("slot without coefficients reported enabled")
	}
}

func TestCutBankMatchesSerialSections(t *testing.T) {
	coeffs := design.LowpassCascade(design.CutButterworth, 3000, 3, 44100)

	var b CutBank
	b.Update(coeffs, Slope36)

	in := testutil.DeterministicNoise(9, 1, 1024)
	got := append([]float64(nil), in...)
	for off := 0; off < len(got); off += 128 {
		b.Process(got[off : off+128])
	}

	want := append([]float64(nil), in...)
	for i := range coeffs {
		var st biquad.State
		for j := range want {
			want[j] = st.ProcessSample(&coeffs[i], want[j])
		}
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestCutBankReactivatedSlotStartsCleared(t *testing.T) {
	coeffs := design.HighpassCascade(design.CutStacked, 500, 2, 48000)
	noise := testutil.DeterministicNoise(4, 1, 512)
	block := testutil.DeterministicNoise(5, 1, 64)

	// a runs slot 1, drops it, then re-enables it.
	var a CutBank
	a.Update(coeffs, Slope24)
	a.Process(append([]float64(nil), noise...))
	a.Update(coeffs, Slope12)
	a.Process(make([]float64, 16))
	a.Update(coeffs, Slope24)

	// b gives slot 0 the same history but never ran slot 1.
	var b CutBank
	b.Update(coeffs, Slope12)
	b.Process(append([]float64(nil), noise...))
	b.Process(make([]float64, 16))
	b.Update(coeffs, Slope24)

	gotA := append([]float64(nil), block...)
	gotB := append([]float64(nil), block...)
	a.Process(gotA)
	b.Process(gotB)

	testutil.RequireSliceNearlyEqual(t, gotA, gotB, 0)
}
