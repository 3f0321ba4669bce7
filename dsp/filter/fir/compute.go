package fir

import (
	"errors"
	"fmt"
)

// Errors returned by the validated entry points.
var (
	ErrNegativeLength = errors.New("fir: negative length")
	ErrNegativeTaps   = errors.New("fir: negative tap count")
	ErrShortInput     = errors.New("fir: input shorter than length")
	ErrShortOutput    = errors.New("fir: output shorter than length")
	ErrShortCoeffs    = errors.New("fir: coefficients shorter than tap count")
	ErrLengthMismatch = errors.New("fir: buffer length mismatch")
	ErrZeroGain       = errors.New("fir: coefficients sum to zero")
	ErrInvalidFFTSize = errors.New("fir: invalid FFT size")
)

// Compute filters input into output with the first numTaps coefficients:
//
//	output[i] = sum_{j=0}^{min(i, numTaps-1)} input[i-j] * coeffs[j]
//
// for every i in [0, length). Inputs before index 0 count as zero, so the
// first numTaps-1 outputs see fewer terms.
//
// Compute does not validate its arguments. The caller guarantees
// len(input) >= length, len(output) >= length and len(coeffs) >= numTaps;
// violating that panics with an index out of range. A non-positive length
// writes nothing and a non-positive numTaps zeroes output[:length].
// output must not alias input. Use [Apply] for a checked call.
func Compute(input, output, coeffs []float64, length, numTaps int) {
	for i := 0; i < length; i++ {
		var acc float64
		for j := 0; j < numTaps && j <= i; j++ {
			acc += input[i-j] * coeffs[j]
		}
		output[i] = acc
	}
}

// Apply is [Compute] with argument validation. On error output is left
// untouched.
func Apply(input, output, coeffs []float64, length, numTaps int) error {
	if err := validate(input, output, coeffs, length, numTaps); err != nil {
		return err
	}

	Compute(input, output, coeffs, length, numTaps)
	return nil
}

// Filt returns a newly allocated len(input) output filtered with all of
// coeffs.
func Filt(input, coeffs []float64) []float64 {
	out := make([]float64, len(input))
	Compute(input, out, coeffs, len(input), len(coeffs))
	return out
}

func validate(input, output, coeffs []float64, length, numTaps int) error {
	switch {
	case length < 0:
		return fmt.Errorf("%w: %d", ErrNegativeLength, length)
	case numTaps < 0:
		return fmt.Errorf("%w: %d", ErrNegativeTaps, numTaps)
	case len(input) < length:
		return fmt.Errorf("%w: have %d, need %d", ErrShortInput, len(input), length)
	case len(output) < length:
		return fmt.Errorf("%w: have %d, need %d", ErrShortOutput, len(output), length)
	case len(coeffs) < numTaps:
		return fmt.Errorf("%w: have %d, need %d", ErrShortCoeffs, len(coeffs), numTaps)
	}
	return nil
}
