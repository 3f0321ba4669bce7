package fir

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-fir/dsp/core"
)

// DCGain returns the filter gain at 0 Hz, the sum of the coefficients.
func DCGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}
	return floats.Sum(coeffs)
}

// Normalize scales coeffs in place to unity DC gain.
func Normalize(coeffs []float64) error {
	gain := DCGain(coeffs)
	if gain == 0 {
		return ErrZeroGain
	}
	floats.Scale(1/gain, coeffs)
	return nil
}

// FrequencyResponse evaluates the tap set on n/2+1 evenly spaced bins from
// 0 Hz to Nyquist by zero-padding it to n samples. Bin k sits at
// k*sampleRate/n Hz.
func FrequencyResponse(coeffs []float64, n int) ([]complex128, error) {
	if n <= 0 || n < len(coeffs) {
		return nil, fmt.Errorf("%w: %d for %d taps", ErrInvalidFFTSize, n, len(coeffs))
	}

	seq := make([]float64, n)
	copy(seq, coeffs)
	return fourier.NewFFT(n).Coefficients(nil, seq), nil
}

// MagnitudeResponseDB is [FrequencyResponse] converted to dB.
func MagnitudeResponseDB(coeffs []float64, n int) ([]float64, error) {
	h, err := FrequencyResponse(coeffs, n)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(h))
	for k, v := range h {
		out[k] = core.LinearToDB(cmplx.Abs(v))
	}
	return out, nil
}

// BinFrequency returns the frequency in Hz of response bin k for an n-point
// evaluation.
func BinFrequency(k, n int, sampleRate float64) float64 {
	return float64(k) * sampleRate / float64(n)
}
