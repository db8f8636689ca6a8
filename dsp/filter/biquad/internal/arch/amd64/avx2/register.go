//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-eq/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-eq/dsp/filter/biquad/internal/arch/unroll"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.Kernel{
		Name:     "avx2",
		Level:    cpu.SIMDAVX2,
		Priority: 20,
		Process:  unroll.Process4,
	})
}
