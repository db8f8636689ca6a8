// Command eqtool drives the parametric EQ offline.
//
// Usage:
//
//	eqtool <command> [flags]
//
// Commands:
//
//	curve   print the magnitude response on the display axis
//	render  filter a WAV file through the EQ
//	verify  compare the computed curve with an FFT measurement of the audio path
//	params  list the parameter layout
//
// Examples:
//
//	eqtool curve -peak-freq 1000 -peak-gain 6 -width 32
//	eqtool render -in dry.wav -out wet.wav -lowcut 80 -lowcut-slope 24
//	eqtool verify -method butterworth -highcut 8000 -highcut-slope 48
package main

import (
	"fmt"
	"io"
	"os"
)

type command struct {
	name  string
	usage string
	run   func(args []string, stdout, stderr io.Writer) error
}

var commands = []command{
	{"curve", "print the magnitude response on the display axis", runCurve},
	{"render", "filter a WAV file through the EQ", runRender},
	{"verify", "compare the computed curve with an FFT measurement", runVerify},
	{"params", "list the parameter layout", runParams},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "-help" || args[0] == "help" {
		usage(stderr)
		if len(args) == 0 {
			return 2
		}
		return 0
	}

	for _, c := range commands {
		if c.name != args[0] {
			continue
		}

		if err := c.run(args[1:], stdout, stderr); err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}

		return 0
	}

	_, _ = fmt.Fprintf(stderr, "error: unknown command %q\n\n", args[0])
	usage(stderr)

	return 2
}

func usage(w io.Writer) {
	_, _ = fmt.Fprintf(w, "Usage: eqtool <command> [flags]\n\nCommands:\n")
	for _, c := range commands {
		_, _ = fmt.Fprintf(w, "  %-8s %s\n", c.name, c.usage)
	}
	_, _ = fmt.Fprintf(w, "\nRun 'eqtool <command> -h' for command flags.\n")
}
