package freqresp

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-eq/dsp/core"
)

// Errors returned by measurement functions.
var (
	ErrInvalidSize       = errors.New("freqresp: size must be a power of two >= 2")
	ErrInvalidSampleRate = errors.New("freqresp: sample rate must be positive")
)

// BlockProcessor filters channel-separated audio in place.
type BlockProcessor interface {
	Process(block [][]float64)
}

// ProcessorFunc adapts a mono in-place filter to a BlockProcessor.
type ProcessorFunc func(buf []float64)

// Process runs f on the first channel of block.
func (f ProcessorFunc) Process(block [][]float64) {
	if len(block) > 0 {
		f(block[0])
	}
}

// Response is a measured magnitude response on the FFT bin grid.
type Response struct {
	SampleRate float64
	// Magnitude holds linear |H| for bins 0..size/2.
	Magnitude []float64
}

// Size returns the FFT length the response was measured with.
func (r *Response) Size() int {
	return 2 * (len(r.Magnitude) - 1)
}

// BinFrequency returns the centre frequency of bin k in Hz.
func (r *Response) BinFrequency(k int) float64 {
	return float64(k) * r.SampleRate / float64(r.Size())
}

// MagnitudeDB returns bin k in dB with the -100 dB floor.
func (r *Response) MagnitudeDB(k int) float64 {
	return core.GainToDecibels(r.Magnitude[k])
}

// At returns the magnitude at freq in dB. Between bins the dB values are
// interpolated over log frequency, which follows filter skirts closely;
// below the first bin the interpolation is linear in frequency.
// Frequencies outside [0, Nyquist] are clamped to the edge bins.
func (r *Response) At(freq float64) float64 {
	last := len(r.Magnitude) - 1
	pos := core.Clamp(freq*float64(r.Size())/r.SampleRate, 0, float64(last))

	k := int(pos)
	if k >= last {
		return r.MagnitudeDB(last)
	}

	frac := pos - float64(k)
	if k > 0 {
		frac = math.Log(pos/float64(k)) / math.Log(float64(k+1)/float64(k))
	}

	lo, hi := r.MagnitudeDB(k), r.MagnitudeDB(k+1)

	return lo + (hi-lo)*frac
}

// ImpulseResponse sends a unit impulse through a fresh single-channel block
// of n samples and returns the output.
func ImpulseResponse(p BlockProcessor, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("impulse response length %d: %w", n, ErrInvalidSize)
	}

	buf := make([]float64, n)
	buf[0] = 1
	p.Process([][]float64{buf})

	return buf, nil
}

// Measure captures size samples of p's impulse response and returns its
// magnitude spectrum. p should start from cleared state.
func Measure(p BlockProcessor, size int, sampleRate float64) (*Response, error) {
	if err := validate(size, sampleRate); err != nil {
		return nil, err
	}

	ir, err := ImpulseResponse(p, size)
	if err != nil {
		return nil, err
	}

	return Spectrum(ir, sampleRate)
}

// Spectrum returns the magnitude spectrum of ir. len(ir) must be a power of
// two.
func Spectrum(ir []float64, sampleRate float64) (*Response, error) {
	size := len(ir)
	if err := validate(size, sampleRate); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("freqresp: fft plan: %w", err)
	}

	in := make([]complex128, size)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("freqresp: fft: %w", err)
	}

	half := size/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)
	for k := range half {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, half)
	vecmath.Magnitude(mag, re, im)

	return &Response{SampleRate: sampleRate, Magnitude: mag}, nil
}

func validate(size int, sampleRate float64) error {
	if size < 2 || bits.OnesCount(uint(size)) != 1 {
		return fmt.Errorf("size %d: %w", size, ErrInvalidSize)
	}

	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("sample rate %v: %w", sampleRate, ErrInvalidSampleRate)
	}

	return nil
}
