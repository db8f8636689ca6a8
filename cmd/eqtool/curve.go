package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-eq/dsp/eq"
)

func runCurve(args []string, stdout, stderr io.Writer) error {
	fs, f := newFlagSet("curve", stderr)
	width := fs.Int("width", 24, "number of points on the 20 Hz..20 kHz axis")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *width <= 0 {
		return fmt.Errorf("-width must be positive: %d", *width)
	}

	p, _, err := f.processor(stderr)
	if err != nil {
		return err
	}

	curve := p.ResponseCurve(*width)

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tw, "Freq [Hz]\tGain [dB]\t\n"); err != nil {
		return err
	}

	for i, db := range curve {
		if _, err := fmt.Fprintf(tw, "%.1f\t%.2f\t\n", eq.LogFrequency(i, *width), db); err != nil {
			return err
		}
	}

	return tw.Flush()
}
