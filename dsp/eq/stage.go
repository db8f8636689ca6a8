package eq

import (
	"sync/atomic"

	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
	"github.com/cwbudde/algo-eq/internal/handoff"
)

var identity = biquad.Identity()

// Stage is one biquad section for one channel: an atomically swapped
// coefficient set, a bypass flag and the section's delay line.
//
// SetCoefficients and SetBypassed may be called from any goroutine. Process
// and Reset belong to the audio goroutine.
type Stage struct {
	coeffs   handoff.Handle[biquad.Coefficients]
	bypassed atomic.Bool
	state    biquad.State

	// Whether the previous Process ran the section. Audio goroutine only.
	wasActive bool
}

// SetCoefficients publishes a copy of c.
func (s *Stage) SetCoefficients(c biquad.Coefficients) {
	s.coeffs.Store(&c)
}

// Coefficients returns the published coefficients, or the identity section
// before the first SetCoefficients.
func (s *Stage) Coefficients() biquad.Coefficients {
	if c := s.coeffs.Load(); c != nil {
		return *c
	}

	return identity
}

// SetBypassed enables or disables the stage.
func (s *Stage) SetBypassed(bypassed bool) {
	s.bypassed.Store(bypassed)
}

// IsBypassed reports whether the stage passes audio through unchanged.
func (s *Stage) IsBypassed() bool {
	return s.bypassed.Load()
}

// Process filters buf in place unless the stage is bypassed. A stage that
// was bypassed during the previous block starts from a cleared delay line.
func (s *Stage) Process(buf []float64) {
	c := s.coeffs.Load()
	if c == nil || s.bypassed.Load() {
		s.wasActive = false
		return
	}

	if !s.wasActive {
		s.state.Reset()
		s.wasActive = true
	}

	s.state.Process(c, buf)
}

// Reset clears the delay line.
func (s *Stage) Reset() {
	s.state.Reset()
}

// magnitude returns |H(f)| of the published coefficients, or 1 when the
// stage is bypassed.
func (s *Stage) magnitude(freq, sampleRate float64) float64 {
	if s.bypassed.Load() {
		return 1
	}

	c := s.coeffs.Load()
	if c == nil {
		return 1
	}

	return c.Magnitude(freq, sampleRate)
}
