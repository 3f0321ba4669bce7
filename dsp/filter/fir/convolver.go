package fir

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fir/dsp/core"
)

// Convolver applies a fixed tap set to independent buffers. Each call to
// [Convolver.Process] starts from zero history, like [Compute].
//
// A Convolver owns scratch memory and is not safe for concurrent use.
type Convolver struct {
	method   Method
	numTaps  int
	reversed []float64 // reversed[k] = coeffs[numTaps-1-k]

	fft *overlapAdd
}

// NewConvolver plans a convolver for coeffs. The coefficients are copied.
func NewConvolver(coeffs []float64, opts ...Option) (*Convolver, error) {
	cfg := ApplyOptions(opts...)

	m := len(coeffs)
	c := &Convolver{
		method:   cfg.Method,
		numTaps:  m,
		reversed: make([]float64, m),
	}
	for k := range m {
		c.reversed[k] = coeffs[m-1-k]
	}

	if c.method == MethodAuto {
		if m < DirectThreshold {
			c.method = MethodDirect
		} else {
			c.method = MethodFFT
		}
	}
	if m == 0 {
		c.method = MethodDirect
	}

	if c.method == MethodFFT {
		oa, err := newOverlapAdd(coeffs, cfg.BlockSize)
		if err != nil {
			return nil, err
		}
		c.fft = oa
	}

	return c, nil
}

// Method returns the resolved convolution method (never MethodAuto).
func (c *Convolver) Method() Method {
	return c.method
}

// NumTaps returns the number of coefficients.
func (c *Convolver) NumTaps() int {
	return c.numTaps
}

// Coefficients returns a copy of the coefficients in their original order.
func (c *Convolver) Coefficients() []float64 {
	out := make([]float64, c.numTaps)
	for k, v := range c.reversed {
		out[c.numTaps-1-k] = v
	}
	return out
}

// Process filters src into dst. Both slices must have the same length and
// dst may alias src.
func (c *Convolver) Process(dst, src []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: dst %d, src %d", ErrLengthMismatch, len(dst), len(src))
	}
	if len(src) == 0 {
		return nil
	}

	switch {
	case c.numTaps == 0:
		core.Zero(dst)
	case c.method == MethodFFT:
		return c.fft.process(dst, src)
	default:
		c.processDirect(dst, src)
	}
	return nil
}

// ProcessInPlace filters buf in place.
func (c *Convolver) ProcessInPlace(buf []float64) error {
	return c.Process(buf, buf)
}

// processDirect walks backwards so that dst[i] is written only after every
// output that reads src[i] is done.
func (c *Convolver) processDirect(dst, src []float64) {
	m := c.numTaps
	if m == 1 {
		vecmath.ScaleBlock(dst, src, c.reversed[0])
		return
	}

	for i := len(src) - 1; i >= 0; i-- {
		lo := i - m + 1
		if lo < 0 {
			dst[i] = vecmath.DotProduct(src[:i+1], c.reversed[-lo:])
			continue
		}
		dst[i] = vecmath.DotProduct(src[lo:i+1], c.reversed)
	}
}

// overlapAdd is a causal, truncated overlap-add convolver. The tail of each
// block's linear convolution is carried into the next block and dropped
// after the last one.
type overlapAdd struct {
	numTaps   int
	blockSize int
	fftSize   int

	plan      *algofft.Plan[complex128]
	kernelFFT []complex128
	block     []complex128
	tail      []float64
}

func newOverlapAdd(coeffs []float64, blockSize int) (*overlapAdd, error) {
	m := len(coeffs)
	if blockSize <= 0 {
		blockSize = max(nextPowerOf2(m), minFFTBlockSize)
	}
	fftSize := nextPowerOf2(blockSize + m - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("fir: failed to create FFT plan: %w", err)
	}

	oa := &overlapAdd{
		numTaps:   m,
		blockSize: blockSize,
		fftSize:   fftSize,
		plan:      plan,
		kernelFFT: make([]complex128, fftSize),
		block:     make([]complex128, fftSize),
		tail:      make([]float64, m-1),
	}

	for i, v := range coeffs {
		oa.block[i] = complex(v, 0)
	}
	if err := plan.Forward(oa.kernelFFT, oa.block); err != nil {
		return nil, fmt.Errorf("fir: failed to compute kernel FFT: %w", err)
	}

	return oa, nil
}

func (oa *overlapAdd) process(dst, src []float64) error {
	clear(oa.tail)
	n := len(src)
	carry := len(oa.tail)

	for start := 0; start < n; start += oa.blockSize {
		end := min(start+oa.blockSize, n)
		blockLen := end - start

		clear(oa.block)
		for i := range blockLen {
			oa.block[i] = complex(src[start+i], 0)
		}

		if err := oa.plan.Forward(oa.block, oa.block); err != nil {
			return fmt.Errorf("fir: forward FFT failed: %w", err)
		}
		for i := range oa.block {
			oa.block[i] *= oa.kernelFFT[i]
		}
		if err := oa.plan.Inverse(oa.block, oa.block); err != nil {
			return fmt.Errorf("fir: inverse FFT failed: %w", err)
		}

		// src[start:end] is consumed, so writing dst over it is safe.
		for i := range blockLen {
			v := real(oa.block[i])
			if i < carry {
				v += oa.tail[i]
			}
			dst[start+i] = v
		}

		for i := range carry {
			var prev float64
			if i+blockLen < carry {
				prev = oa.tail[i+blockLen]
			}
			oa.tail[i] = prev + real(oa.block[blockLen+i])
		}
	}

	return nil
}
