// Package beepstream runs an EQ processor inside a beep streaming pipeline
// the way an audio host would: fixed-size blocks, channel-separated
// buffers, one Process call per block.
package beepstream

import (
	"errors"
	"fmt"

	"github.com/gopxl/beep"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// ErrChannelCount is returned for formats that are neither mono nor stereo.
var ErrChannelCount = errors.New("beepstream: format must have 1 or 2 channels")

// Processor is the host-facing side of an EQ.
type Processor interface {
	Prepare(sampleRate float64, channels int)
	Process(block [][]float64)
}

// Streamer filters the samples of a source streamer through a Processor.
type Streamer struct {
	src      beep.Streamer
	proc     Processor
	channels int
	block    [][]float64
}

var _ beep.Streamer = (*Streamer)(nil)

// New prepares proc for format and returns a streamer that filters src.
// The block size comes from opts (default 512 frames); sample rate and
// channel count come from format.
func New(src beep.Streamer, proc Processor, format beep.Format, opts ...core.ProcessorOption) (*Streamer, error) {
	if format.NumChannels != 1 && format.NumChannels != 2 {
		return nil, fmt.Errorf("%d channels: %w", format.NumChannels, ErrChannelCount)
	}

	opts = append([]core.ProcessorOption{
		core.WithSampleRate(float64(format.SampleRate)),
		core.WithChannels(format.NumChannels),
	}, opts...)
	cfg := core.ApplyProcessorOptions(opts...)

	s := &Streamer{
		src:      src,
		proc:     proc,
		channels: format.NumChannels,
		block:    make([][]float64, format.NumChannels),
	}
	for ch := range s.block {
		s.block[ch] = make([]float64, cfg.BlockSize)
	}

	proc.Prepare(cfg.SampleRate, s.channels)

	return s, nil
}

// BlockSize returns the number of frames handed to Process at a time.
func (s *Streamer) BlockSize() int {
	return len(s.block[0])
}

// Stream fills samples from the source and filters them in place.
func (s *Streamer) Stream(samples [][2]float64) (int, bool) {
	total := 0
	size := s.BlockSize()

	for total < len(samples) {
		want := min(size, len(samples)-total)
		chunk := samples[total : total+want]

		n, ok := s.src.Stream(chunk)
		if n > 0 {
			s.filter(chunk[:n])
			total += n
		}

		if !ok || n < want {
			return total, total > 0 || ok
		}
	}

	return total, true
}

// Err propagates the source's error.
func (s *Streamer) Err() error {
	return s.src.Err()
}

func (s *Streamer) filter(frames [][2]float64) {
	n := len(frames)
	block := s.block
	for ch := range block {
		block[ch] = block[ch][:n]
	}

	for i, f := range frames {
		for ch := range block {
			block[ch][i] = f[ch]
		}
	}

	s.proc.Process(block)

	for i := range frames {
		if s.channels == 1 {
			frames[i][0] = block[0][i]
			frames[i][1] = block[0][i]
			continue
		}
		frames[i][0] = block[0][i]
		frames[i][1] = block[1][i]
	}

	for ch := range block {
		block[ch] = block[ch][:cap(block[ch])]
	}
}
