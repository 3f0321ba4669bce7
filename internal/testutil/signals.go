package testutil

import "math/rand"

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Filled returns a slice of length n with every element set to value.
func Filled(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// ReferenceFIR is the textbook causal convolution written out term by term,
// independent of the code under test. Only the first len(x) outputs are
// returned.
func ReferenceFIR(x, h []float64) []float64 {
	y := make([]float64, len(x))
	for i := range y {
		for j := range h {
			if i-j < 0 {
				break
			}
			y[i] += x[i-j] * h[j]
		}
	}
	return y
}
