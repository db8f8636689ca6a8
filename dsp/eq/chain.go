package eq

import (
	"fmt"
	"sync/atomic"
)

// Position names a slot of the chain, in processing order.
type Position int

const (
	LowCut Position = iota
	Peak
	HighCut

	numPositions
)

// Positions lists every position in processing order.
var Positions = [numPositions]Position{LowCut, Peak, HighCut}

func (p Position) String() string {
	switch p {
	case LowCut:
		return "LowCut"
	case Peak:
		return "Peak"
	case HighCut:
		return "HighCut"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

// MonoChain is the filter chain of one channel: low cut, peak, high cut.
//
// Apply and SetBypassed may be called from any goroutine. Process and Reset
// belong to the audio goroutine.
type MonoChain struct {
	lowCut  CutBank
	peak    Stage
	highCut CutBank

	// Whole-bank bypass of the cut positions. The peak position uses the
	// stage's own flag.
	lowCutOff  atomic.Bool
	highCutOff atomic.Bool
}

// Apply publishes a full design result. Each position is swapped
// independently.
func (c *MonoChain) Apply(cc ChainCoefficients) {
	c.lowCut.Update(cc.LowCut, cc.LowCutSlope)
	c.peak.SetCoefficients(cc.Peak)
	c.highCut.Update(cc.HighCut, cc.HighCutSlope)
}

// LowCutBank returns the low-cut bank.
func (c *MonoChain) LowCutBank() *CutBank { return &c.lowCut }

// PeakStage returns the peak stage.
func (c *MonoChain) PeakStage() *Stage { return &c.peak }

// HighCutBank returns the high-cut bank.
func (c *MonoChain) HighCutBank() *CutBank { return &c.highCut }

// SetBypassed disables or enables a whole position.
func (c *MonoChain) SetBypassed(pos Position, bypassed bool) {
	switch pos {
	case LowCut:
		c.lowCutOff.Store(bypassed)
	case Peak:
		c.peak.SetBypassed(bypassed)
	case HighCut:
		c.highCutOff.Store(bypassed)
	}
}

// IsBypassed reports whether a whole position is disabled. Unknown
// positions report true.
func (c *MonoChain) IsBypassed(pos Position) bool {
	switch pos {
	case LowCut:
		return c.lowCutOff.Load()
	case Peak:
		return c.peak.IsBypassed()
	case HighCut:
		return c.highCutOff.Load()
	default:
		return true
	}
}

// Process filters buf in place: low cut, then peak, then high cut. A
// position re-enabled after a bypass starts from cleared delay lines.
func (c *MonoChain) Process(buf []float64) {
	if c.lowCutOff.Load() {
		c.lowCut.skip()
	} else {
		c.lowCut.Process(buf)
	}

	c.peak.Process(buf)

	if c.highCutOff.Load() {
		c.highCut.skip()
	} else {
		c.highCut.Process(buf)
	}
}

// Reset clears every delay line of the chain.
func (c *MonoChain) Reset() {
	c.lowCut.Reset()
	c.peak.Reset()
	c.highCut.Reset()
}
