package eq

import (
	"github.com/cwbudde/algo-eq/dsp/filter/biquad"
	"github.com/cwbudde/algo-eq/internal/handoff"
)

// cutPlan is an immutable snapshot of a bank's slots.
type cutPlan struct {
	coeffs   [MaxCutStages]*biquad.Coefficients
	bypassed [MaxCutStages]bool
	active   int
}

func (p *cutPlan) enabled(i int) bool {
	return p != nil && p.coeffs[i] != nil && !p.bypassed[i]
}

// CutBank is a cascade of up to MaxCutStages biquad sections for one
// channel. All slot assignments of an Update are published with a single
// atomic store, so Process sees either the old bank or the new one.
//
// Update and SetBypassed may be called from any goroutine. Process and
// Reset belong to the audio goroutine.
type CutBank struct {
	plan   handoff.Handle[cutPlan]
	states [MaxCutStages]biquad.State

	// wasEnabled is audio-goroutine state: the slots that ran last block.
	wasEnabled [MaxCutStages]bool
}

// Update assigns coeffs to the first slope.Stages() slots and bypasses the
// rest. Extra coefficient sets are ignored; missing ones leave their slots
// bypassed.
func (b *CutBank) Update(coeffs []biquad.Coefficients, slope Slope) {
	next := &cutPlan{}

	active := min(slope.Stages(), len(coeffs))
	for i := range MaxCutStages {
		if i < active {
			c := coeffs[i]
			next.coeffs[i] = &c
		} else {
			next.bypassed[i] = true
		}
	}
	next.active = active

	b.plan.Store(next)
}

// SetBypassed overrides the bypass flag of slot index. Out-of-range indices
// are ignored. The next Update recomputes every flag.
func (b *CutBank) SetBypassed(index int, bypassed bool) {
	if index < 0 || index >= MaxCutStages {
		return
	}

	b.plan.Update(func(old *cutPlan) *cutPlan {
		next := &cutPlan{}
		if old != nil {
			*next = *old
		} else {
			for i := range next.bypassed {
				next.bypassed[i] = true
			}
		}
		next.bypassed[index] = bypassed

		return next
	})
}

// IsBypassed reports whether slot index passes audio through unchanged.
// A slot without coefficients counts as bypassed.
func (b *CutBank) IsBypassed(index int) bool {
	if index < 0 || index >= MaxCutStages {
		return true
	}

	return !b.plan.Load().enabled(index)
}

// Coefficients returns the coefficients of slot index and whether the slot
// has any.
func (b *CutBank) Coefficients(index int) (biquad.Coefficients, bool) {
	p := b.plan.Load()
	if p == nil || index < 0 || index >= MaxCutStages || p.coeffs[index] == nil {
		return identity, false
	}

	return *p.coeffs[index], true
}

// ActiveStages returns the number of slots the last Update assigned.
func (b *CutBank) ActiveStages() int {
	if p := b.plan.Load(); p != nil {
		return p.active
	}

	return 0
}

// Process runs buf through every enabled slot in order. A slot that was
// disabled during the previous block starts from a cleared delay line.
func (b *CutBank) Process(buf []float64) {
	p := b.plan.Load()

	for i := range MaxCutStages {
		on := p.enabled(i)
		if on {
			if !b.wasEnabled[i] {
				b.states[i].Reset()
			}
			b.states[i].Process(p.coeffs[i], buf)
		}
		b.wasEnabled[i] = on
	}
}

// skip records a block the whole bank sat out, so every slot restarts from
// a cleared delay line when the bank runs again.
func (b *CutBank) skip() {
	b.wasEnabled = [MaxCutStages]bool{}
}

// Reset clears every delay line.
func (b *CutBank) Reset() {
	for i := range b.states {
		b.states[i].Reset()
	}
}

// magnitude returns the product of |H(f)| over enabled slots.
func (b *CutBank) magnitude(freq, sampleRate float64) float64 {
	p := b.plan.Load()

	m := 1.0
	for i := range MaxCutStages {
		if p.enabled(i) {
			m *= p.coeffs[i].Magnitude(freq, sampleRate)
		}
	}

	return m
}
