// Package params stores the EQ's user-facing parameters.
//
// Values live in atomic float64 bits so any goroutine may read them without
// locking. Writes clamp into range, snap stepped parameters and notify the
// store's listeners.
package params

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// Parameter is one named, ranged value.
type Parameter struct {
	Name    string
	Unit    string
	Min     float64
	Max     float64
	Default float64

	// Skew shapes the normalized mapping: normalized = linear^Skew. 1 is
	// linear; values below 1 give the low end of the range more travel.
	Skew float64

	// Steps is the number of discrete steps above Min; 0 means continuous.
	Steps int

	value atomic.Uint64
	store atomic.Pointer[Store]
}

// New returns a continuous parameter initialized to def.
func New(name, unit string, lo, hi, def, skew float64) *Parameter {
	p := &Parameter{Name: name, Unit: unit, Min: lo, Max: hi, Default: def, Skew: skew}
	p.value.Store(math.Float64bits(p.constrain(def)))

	return p
}

// NewChoice returns a stepped parameter with values 0..len(choices)-1.
func NewChoice(name string, choices int, def int) *Parameter {
	p := &Parameter{Name: name, Min: 0, Max: float64(max(choices-1, 0)), Default: float64(def), Skew: 1, Steps: max(choices-1, 0)}
	p.value.Store(math.Float64bits(p.constrain(p.Default)))

	return p
}

// Value returns the plain value.
func (p *Parameter) Value() float64 {
	return math.Float64frombits(p.value.Load())
}

// Index returns the value rounded to the nearest integer, for choices.
func (p *Parameter) Index() int {
	return int(math.Round(p.Value()))
}

// Set stores plain after clamping and snapping it, and reports whether the
// stored value changed. Listeners run on the caller's goroutine.
func (p *Parameter) Set(plain float64) bool {
	if math.IsNaN(plain) {
		return false
	}

	v := p.constrain(plain)
	old := math.Float64frombits(p.value.Swap(math.Float64bits(v)))
	if old == v {
		return false
	}

	if s := p.store.Load(); s != nil {
		s.notify(p)
	}

	return true
}

// Normalized returns the value mapped onto [0, 1].
func (p *Parameter) Normalized() float64 {
	return p.Normalize(p.Value())
}

// SetNormalized stores the plain value for normalized n.
func (p *Parameter) SetNormalized(n float64) bool {
	return p.Set(p.Denormalize(n))
}

// Reset restores the default value.
func (p *Parameter) Reset() bool {
	return p.Set(p.Default)
}

// Normalize maps a plain value onto [0, 1].
func (p *Parameter) Normalize(plain float64) float64 {
	if p.Max <= p.Min {
		return 0
	}

	lin := core.Clamp((plain-p.Min)/(p.Max-p.Min), 0, 1)

	return math.Pow(lin, p.skew())
}

// Denormalize maps n in [0, 1] onto the plain range.
func (p *Parameter) Denormalize(n float64) float64 {
	n = core.Clamp(n, 0, 1)
	lin := math.Pow(n, 1/p.skew())

	return p.constrain(p.Min + lin*(p.Max-p.Min))
}

// Format renders the plain value with its unit.
func (p *Parameter) Format() string {
	v := p.Value()

	var s string
	if p.Steps > 0 {
		s = strconv.Itoa(p.Index())
	} else {
		s = strconv.FormatFloat(v, 'f', 2, 64)
	}

	if p.Unit == "" {
		return s
	}

	return s + " " + p.Unit
}

// Parse parses a plain value and stores it.
func (p *Parameter) Parse(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parameter %q: %w", p.Name, err)
	}

	p.Set(v)

	return nil
}

func (p *Parameter) skew() float64 {
	if !(p.Skew > 0) || math.IsInf(p.Skew, 0) {
		return 1
	}

	return p.Skew
}

func (p *Parameter) constrain(v float64) float64 {
	v = core.Clamp(v, p.Min, p.Max)
	if p.Steps > 0 && p.Max > p.Min {
		step := (p.Max - p.Min) / float64(p.Steps)
		v = p.Min + math.Round((v-p.Min)/step)*step
	}

	return v
}
