package fir

import (
	"math"
	"math/cmplx"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fir/dsp/core"
)

// Filter is a streaming direct-form FIR filter. Its delay line carries input
// history from one call to the next.
//
// The delay line is stored twice back to back so that the most recent
// numTaps samples always form one contiguous slice.
type Filter struct {
	reversed []float64
	delay    []float64
	pos      int
}

// New creates a filter from coeffs. The coefficients are copied and the
// filter order is len(coeffs)-1.
func New(coeffs []float64) *Filter {
	n := len(coeffs)
	f := &Filter{
		reversed: make([]float64, n),
		delay:    make([]float64, 2*n),
	}
	for k := range n {
		f.reversed[k] = coeffs[n-1-k]
	}
	return f
}

// ProcessSample pushes x into the delay line and returns
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
func (f *Filter) ProcessSample(x float64) float64 {
	n := len(f.reversed)
	if n == 0 {
		return 0
	}

	f.delay[f.pos] = x
	f.delay[f.pos+n] = x
	y := vecmath.DotProduct(f.delay[f.pos+1:f.pos+1+n], f.reversed)

	f.pos++
	if f.pos == n {
		f.pos = 0
	}
	return y
}

// ProcessBlock filters buf in place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. dst must be at least as long as src.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1]
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears the delay line.
func (f *Filter) Reset() {
	core.Zero(f.delay)
	f.pos = 0
}

// Order returns len(coeffs)-1.
func (f *Filter) Order() int {
	return len(f.reversed) - 1
}

// Coefficients returns a copy of the coefficients in their original order.
func (f *Filter) Coefficients() []float64 {
	n := len(f.reversed)
	c := make([]float64, n)
	for k, v := range f.reversed {
		c[n-1-k] = v
	}
	return c
}

// Response computes H(e^{jw}) at freqHz for the given sample rate.
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	n := len(f.reversed)
	var h complex128
	for k := range n {
		h += complex(f.reversed[n-1-k], 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}

// MagnitudeDB returns the magnitude response in dB at freqHz.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.LinearToDB(cmplx.Abs(f.Response(freqHz, sampleRate)))
}
