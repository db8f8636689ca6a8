package eq

import (
	"log/slog"
	"math"
	"sync"
	"sync/atomic"

	"github.com/cwbudde/algo-eq/internal/handoff"
)

// chainSet is an immutable list of per-channel chains.
type chainSet struct {
	chains []*MonoChain
}

// Processor owns one MonoChain per channel plus a display chain and runs the
// coefficient update protocol between them.
//
// Process is the audio entry point. NotifyParameterChanged may be called
// from any goroutine. ApplyPendingChanges, Watch, SetBypassed and
// ResponseCurve belong to the control side; Prepare must not overlap
// Process.
type Processor struct {
	src      SettingsSource
	designer Designer
	logger   *slog.Logger

	sampleRate atomic.Uint64
	dirty      handoff.Flag
	chains     handoff.Handle[chainSet]
	display    MonoChain
	applied    handoff.Handle[ChainSettings]
	bypass     [numPositions]atomic.Bool

	// applyMu orders control-side writers so the last snapshot read is the
	// last one installed. The audio path never takes it.
	applyMu sync.Mutex
}

// NewProcessor returns a Processor reading settings from src and designs
// the current settings immediately.
func NewProcessor(src SettingsSource, sampleRate float64, opts ...Option) *Processor {
	cfg := defaultConfig()
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	p := &Processor{
		src:      src,
		designer: cfg.designer,
		logger:   logger,
	}
	p.sampleRate.Store(math.Float64bits(sampleRate))
	p.chains.Store(&chainSet{chains: p.newChains(cfg.channels)})

	p.applyMu.Lock()
	p.apply()
	p.applyMu.Unlock()

	return p
}

func (p *Processor) newChains(n int) []*MonoChain {
	chains := make([]*MonoChain, n)
	for i := range chains {
		c := &MonoChain{}
		for _, pos := range Positions {
			c.SetBypassed(pos, p.bypass[pos].Load())
		}
		chains[i] = c
	}

	return chains
}

// SampleRate returns the sample rate set by NewProcessor or Prepare.
func (p *Processor) SampleRate() float64 {
	return math.Float64frombits(p.sampleRate.Load())
}

// Channels returns the number of channel chains.
func (p *Processor) Channels() int {
	return len(p.chains.Load().chains)
}

// Chain returns the chain of channel ch, or nil when out of range.
func (p *Processor) Chain(ch int) *MonoChain {
	cs := p.chains.Load().chains
	if ch < 0 || ch >= len(cs) {
		return nil
	}

	return cs[ch]
}

// DisplayChain returns the chain the response curve is evaluated on. It
// receives the same coefficients and bypass flags as the channel chains
// but never processes audio.
func (p *Processor) DisplayChain() *MonoChain {
	return &p.display
}

// AppliedSettings returns the snapshot installed by the last apply.
func (p *Processor) AppliedSettings() ChainSettings {
	if s := p.applied.Load(); s != nil {
		return *s
	}

	return ChainSettings{}
}

// Prepare restarts the stream at a new sample rate and channel count:
// chains are rebuilt when the channel count changes, delay lines are
// cleared and the current settings are designed and installed.
func (p *Processor) Prepare(sampleRate float64, channels int) {
	p.applyMu.Lock()
	defer p.applyMu.Unlock()

	p.sampleRate.Store(math.Float64bits(sampleRate))

	cs := p.chains.Load().chains
	if channels > 0 && channels != len(cs) {
		p.chains.Store(&chainSet{chains: p.newChains(channels)})
		p.logger.Debug("eq: rebuilt channel chains", "channels", channels, "previous", len(cs))
	} else {
		for _, c := range cs {
			c.Reset()
		}
	}

	p.dirty.TestAndClear()
	p.apply()
}

// Process filters block in place, one slice per channel. Channels beyond
// the prepared count are left untouched.
func (p *Processor) Process(block [][]float64) {
	cs := p.chains.Load().chains

	n := min(len(block), len(cs))
	for ch := range n {
		cs[ch].Process(block[ch])
	}
}

// NotifyParameterChanged marks the settings dirty. It never blocks.
func (p *Processor) NotifyParameterChanged() {
	p.dirty.Set()
}

// ApplyPendingChanges installs the current settings if any change was
// notified since the last apply, and reports whether it did.
func (p *Processor) ApplyPendingChanges() bool {
	if !p.dirty.TestAndClear() {
		return false
	}

	p.applyMu.Lock()
	p.apply()
	p.applyMu.Unlock()

	return true
}

// apply designs the current snapshot once and installs it in every chain.
// Callers hold applyMu.
func (p *Processor) apply() {
	settings := p.src.ChainSettings()
	sr := p.SampleRate()
	cc := p.designer.Chain(settings, sr)

	for _, c := range p.chains.Load().chains {
		c.Apply(cc)
	}
	p.display.Apply(cc)
	p.applied.Store(&settings)

	p.logger.Debug("eq: applied settings",
		"sampleRate", sr,
		"peakFreq", settings.PeakFreq,
		"peakGainDB", settings.PeakGainDB,
		"peakQ", settings.PeakQ,
		"lowCut", settings.LowCutFreq,
		"lowCutSlope", settings.LowCutSlope,
		"highCut", settings.HighCutFreq,
		"highCutSlope", settings.HighCutSlope,
	)
}

// SetBypassed disables or enables a position in every chain, including the
// display chain.
func (p *Processor) SetBypassed(pos Position, bypassed bool) {
	if pos < 0 || pos >= numPositions {
		return
	}

	p.applyMu.Lock()
	defer p.applyMu.Unlock()

	p.bypass[pos].Store(bypassed)
	for _, c := range p.chains.Load().chains {
		c.SetBypassed(pos, bypassed)
	}
	p.display.SetBypassed(pos, bypassed)
}

// IsBypassed reports the bypass state of a position.
func (p *Processor) IsBypassed(pos Position) bool {
	return p.display.IsBypassed(pos)
}

// ResponseCurve returns width dB values of the current response on the
// logarithmic display axis.
func (p *Processor) ResponseCurve(width int) []float64 {
	return ComputeResponse(&p.display, p.SampleRate(), width)
}

// ResponseAt evaluates the current response at arbitrary frequencies into
// dst.
func (p *Processor) ResponseAt(freqs, dst []float64) []float64 {
	return ResponseAt(&p.display, p.SampleRate(), freqs, dst)
}

// Reset clears every channel's delay lines. Must not overlap Process.
func (p *Processor) Reset() {
	for _, c := range p.chains.Load().chains {
		c.Reset()
	}
}
