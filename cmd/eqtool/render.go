package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gopxl/beep/wav"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/host/beepstream"
)

func runRender(args []string, stdout, stderr io.Writer) (err error) {
	fs, f := newFlagSet("render", stderr)
	in := fs.String("in", "", "input WAV file")
	out := fs.String("out", "", "output WAV file")
	block := fs.Int("block", 512, "processing block size in frames")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *in == "" || *out == "" {
		return errors.New("render needs -in and -out")
	}

	src, err := os.Open(*in)
	if err != nil {
		return err
	}
	defer src.Close()

	stream, format, err := wav.Decode(src)
	if err != nil {
		return fmt.Errorf("decode %s: %w", *in, err)
	}
	defer stream.Close()

	// The file's rate overrides -sr.
	f.sampleRate = float64(format.SampleRate)

	p, logger, err := f.processor(stderr)
	if err != nil {
		return err
	}

	filtered, err := beepstream.New(stream, p, format, core.WithBlockSize(*block))
	if err != nil {
		return err
	}

	dst, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := dst.Close(); err == nil {
			err = cerr
		}
	}()

	if err := wav.Encode(dst, filtered, format); err != nil {
		return fmt.Errorf("encode %s: %w", *out, err)
	}

	if err := filtered.Err(); err != nil {
		return fmt.Errorf("decode %s: %w", *in, err)
	}

	logger.Info("rendered", "in", *in, "out", *out, "frames", stream.Len(),
		"sampleRate", int(format.SampleRate), "channels", format.NumChannels)
	_, _ = fmt.Fprintf(stdout, "wrote %s (%d frames)\n", *out, stream.Len())

	return nil
}
