package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/measure/freqresp"
)

func runVerify(args []string, stdout, stderr io.Writer) error {
	fs, f := newFlagSet("verify", stderr)
	size := fs.Int("size", 16384, "impulse response length (power of two)")
	points := fs.Int("points", 12, "number of log-spaced frequencies to report")
	tol := fs.Float64("tol", 0.1, "maximum allowed deviation in dB")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, logger, err := f.processor(stderr, eq.WithChannels(1))
	if err != nil {
		return err
	}

	resp, err := freqresp.Measure(p, *size, p.SampleRate())
	if err != nil {
		return err
	}

	freqs := verifyFrequencies(*points, p.SampleRate())
	computed := p.ResponseAt(freqs, nil)

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tw, "Freq [Hz]\tComputed [dB]\tFFT [dB]\tTone [dB]\tDiff [dB]\t\n"); err != nil {
		return err
	}

	toneLen := int(p.SampleRate())
	worst := 0.0
	for i, freq := range freqs {
		measured := resp.At(freq)

		p.Reset()
		tone, err := freqresp.ToneGain(p, freq, p.SampleRate(), toneLen)
		if err != nil {
			return err
		}

		diff := measured - computed[i]
		if math.Abs(tone-computed[i]) > math.Abs(diff) {
			diff = tone - computed[i]
		}
		if computed[i] > -60 {
			worst = math.Max(worst, math.Abs(diff))
		}

		if _, err := fmt.Fprintf(tw, "%.1f\t%.3f\t%.3f\t%.3f\t%+.4f\t\n", freq, computed[i], measured, tone, diff); err != nil {
			return err
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	logger.Info("verified", "size", *size, "worstDiffDB", worst)

	if worst > *tol {
		return fmt.Errorf("measured response deviates by %.4f dB (tolerance %.4f dB)", worst, *tol)
	}

	_, _ = fmt.Fprintf(stdout, "ok: max deviation %.4f dB\n", worst)

	return nil
}

// verifyFrequencies returns n log-spaced frequencies from 20 Hz up to
// 20 kHz or 0.49 of the sample rate, whichever is lower, so every point
// stays below Nyquist.
func verifyFrequencies(n int, sampleRate float64) []float64 {
	lo := eq.MinDisplayFreq
	hi := max(min(eq.MaxDisplayFreq, 0.49*sampleRate), lo)

	freqs := make([]float64, max(n, 0))
	for i := range freqs {
		freqs[i] = lo * math.Pow(hi/lo, float64(i)/float64(max(n-1, 1)))
	}

	return freqs
}
