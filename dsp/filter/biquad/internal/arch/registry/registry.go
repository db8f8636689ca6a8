// Package registry selects the biquad block kernel for the running CPU.
package registry

import (
	"sort"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Coefficients mirrors biquad.Coefficients without importing it.
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// ProcessFn filters buf in place with one Direct Form II Transposed section
// starting from delay state (d0, d1) and returns the updated state.
type ProcessFn func(c Coefficients, d0, d1 float64, buf []float64) (newD0, newD1 float64)

// Kernel is one registered block kernel.
type Kernel struct {
	Name     string
	Level    cpu.SIMDLevel
	Priority int
	Process  ProcessFn
}

// Registry holds the kernels linked into the binary, highest priority first.
type Registry struct {
	mu      sync.RWMutex
	kernels []Kernel
}

// Global is the registry the backends register into from init.
var Global = &Registry{}

// Register adds k.
func (r *Registry) Register(k Kernel) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.kernels = append(r.kernels, k)
	sort.SliceStable(r.kernels, func(i, j int) bool {
		return r.kernels[i].Priority > r.kernels[j].Priority
	})
}

// Lookup returns the highest-priority kernel the features support, or nil.
func (r *Registry) Lookup(features cpu.Features) *Kernel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.kernels {
		if cpu.Supports(features, r.kernels[i].Level) {
			k := r.kernels[i]
			return &k
		}
	}

	return nil
}

// Names lists registered kernels in priority order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.kernels))
	for i := range r.kernels {
		names[i] = r.kernels[i].Name
	}

	return names
}
