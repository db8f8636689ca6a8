//nolint:funcorder
package biquad

import (
	"sync"

	archregistry "github.com/cwbudde/algo-eq/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// State is the delay line of one Direct Form II Transposed section for one
// channel. The zero value is a cleared delay line.
type State struct {
	d0, d1 float64
}

var (
	processImpl     archregistry.ProcessFn
	processInitOnce sync.Once
)

// ProcessSample filters one input sample through c and returns the output.
func (s *State) ProcessSample(c *Coefficients, x float64) float64 {
	y := c.B0*x + s.d0
	s.d0 = c.B1*x - c.A1*y + s.d1
	s.d1 = c.B2*x - c.A2*y

	return y
}

// Process filters buf in place through c. It does not allocate.
func (s *State) Process(c *Coefficients, buf []float64) {
	processInitOnce.Do(initProcessKernel)

	k := archregistry.Coefficients{B0: c.B0, B1: c.B1, B2: c.B2, A1: c.A1, A2: c.A2}
	s.d0, s.d1 = processImpl(k, s.d0, s.d1, buf)
}

// Reset clears the delay line.
func (s *State) Reset() {
	s.d0 = 0
	s.d1 = 0
}

// Values returns the delay line as [d0, d1].
func (s *State) Values() [2]float64 {
	return [2]float64{s.d0, s.d1}
}

// KernelName reports which block kernel Process dispatches to.
func KernelName() string {
	processInitOnce.Do(initProcessKernel)

	return kernelName
}

var kernelName string

func initProcessKernel() {
	k := archregistry.Global.Lookup(cpu.DetectFeatures())
	if k == nil {
		panic("biquad: no block kernel registered (missing generic fallback?)")
	}

	if k.Process == nil {
		panic("biquad: selected kernel missing Process")
	}

	processImpl = k.Process
	kernelName = k.Name
}
