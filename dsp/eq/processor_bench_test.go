package eq

import (
	"testing"

	"github.com/cwbudde/algo-eq/internal/testutil"
)

func BenchmarkProcessorProcess(b *testing.B) {
	s := testSettings()
	s.LowCutSlope = Slope48
	s.HighCutSlope = Slope48

	p := NewProcessor(StaticSettings(s), 48000)
	block := testutil.Block(testutil.DeterministicNoise(1, 0.5, 512), 2)

	b.ReportAllocs()
	b.SetBytes(int64(len(block) * len(block[0]) * 8))

	for b.Loop() {
		p.Process(block)
	}
}

func BenchmarkResponseCurve(b *testing.B) {
	p := NewProcessor(StaticSettings(testSettings()), 48000)

	b.ReportAllocs()

	for b.Loop() {
		p.ResponseCurve(800)
	}
}

func BenchmarkApplyPendingChanges(b *testing.B) {
	p := NewProcessor(StaticSettings(testSettings()), 48000)

	b.ReportAllocs()

	for b.Loop() {
		p.NotifyParameterChanged()
		p.ApplyPendingChanges()
	}
}
