package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/dsp/eq/params"
	"github.com/cwbudde/algo-eq/dsp/filter/design"
)

// eqFlags are the EQ settings shared by every command.
type eqFlags struct {
	peakFreq, peakGain, peakQ float64
	lowCut, highCut           float64
	lowCutSlope, highCutSlope int
	sampleRate                float64
	method                    string
	logLevel                  string
}

func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, *eqFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	f := &eqFlags{}
	fs.Float64Var(&f.peakFreq, "peak-freq", 750, "peak centre frequency in Hz")
	fs.Float64Var(&f.peakGain, "peak-gain", 0, "peak gain in dB (-24..24)")
	fs.Float64Var(&f.peakQ, "peak-q", 1, "peak quality (0.1..10)")
	fs.Float64Var(&f.lowCut, "lowcut", 20, "low-cut frequency in Hz")
	fs.Float64Var(&f.highCut, "highcut", 20000, "high-cut frequency in Hz")
	fs.IntVar(&f.lowCutSlope, "lowcut-slope", 12, "low-cut slope in dB/oct (12, 24, 36, 48)")
	fs.IntVar(&f.highCutSlope, "highcut-slope", 12, "high-cut slope in dB/oct (12, 24, 36, 48)")
	fs.Float64Var(&f.sampleRate, "sr", 44100, "sample rate in Hz")
	fs.StringVar(&f.method, "method", design.CutStacked.String(), "cut design: stacked or butterworth")
	fs.StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	return fs, f
}

// store loads the flag values into a parameter store. Values outside a
// parameter's range are clamped the same way a host automation would be.
func (f *eqFlags) store() (*params.Store, error) {
	lowSlope, err := eq.SlopeFromOrder(f.lowCutSlope)
	if err != nil {
		return nil, fmt.Errorf("-lowcut-slope: %w", err)
	}

	highSlope, err := eq.SlopeFromOrder(f.highCutSlope)
	if err != nil {
		return nil, fmt.Errorf("-highcut-slope: %w", err)
	}

	s := params.NewEQStore()
	for _, v := range []struct {
		name  string
		value float64
	}{
		{params.PeakFreq, f.peakFreq},
		{params.PeakGain, f.peakGain},
		{params.PeakQuality, f.peakQ},
		{params.LowCutFreq, f.lowCut},
		{params.HighCutFreq, f.highCut},
		{params.LowCutSlope, float64(lowSlope)},
		{params.HighCutSlope, float64(highSlope)},
	} {
		if err := s.Set(v.name, v.value); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// processor builds an EQ processor from the flags.
func (f *eqFlags) processor(stderr io.Writer, opts ...eq.Option) (*eq.Processor, *slog.Logger, error) {
	logger, err := newLogger(stderr, f.logLevel)
	if err != nil {
		return nil, nil, err
	}

	method, err := design.ParseCutMethod(f.method)
	if err != nil {
		return nil, nil, err
	}

	store, err := f.store()
	if err != nil {
		return nil, nil, err
	}

	opts = append([]eq.Option{eq.WithCutMethod(method), eq.WithLogger(logger)}, opts...)

	p, err := eq.NewParamProcessor(store, f.sampleRate, opts...)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("eq ready", "settings", fmt.Sprintf("%+v", p.AppliedSettings()), "method", method)

	return p, logger, nil
}
