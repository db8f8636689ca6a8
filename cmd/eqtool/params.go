package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-eq/dsp/eq/params"
)

func runParams(args []string, stdout, stderr io.Writer) error {
	fs, _ := newFlagSet("params", stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Name\tMin\tMax\tDefault\tUnit\n"); err != nil {
		return err
	}

	for _, p := range params.Layout() {
		if _, err := fmt.Fprintf(tw, "%s\t%g\t%g\t%g\t%s\n", p.Name, p.Min, p.Max, p.Default, p.Unit); err != nil {
			return err
		}
	}

	return tw.Flush()
}
