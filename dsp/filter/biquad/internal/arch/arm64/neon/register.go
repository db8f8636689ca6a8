//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-eq/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-eq/dsp/filter/biquad/internal/arch/unroll"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.Kernel{
		Name:     "neon",
		Level:    cpu.SIMDNEON,
		Priority: 15,
		Process:  unroll.Process4,
	})
}
