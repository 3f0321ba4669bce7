// Package fir provides causal finite-impulse-response filtering.
//
// Three entry points cover the same convolution
//
//	y[i] = sum_{j=0}^{numTaps-1} h[j] * x[i-j],  x[k] = 0 for k < 0
//
// with different trade-offs:
//
//   - [Compute] is the plain nested loop. It validates nothing, allocates
//     nothing and writes exactly length output samples. [Apply] is the same
//     loop behind explicit size checks that report errors instead of
//     panicking.
//   - [Convolver] pre-plans a tap set for repeated use. Short filters run as
//     vectorised dot products, long filters as FFT overlap-add.
//   - [Filter] is a streaming runtime with a delay line that carries history
//     across blocks.
//
// Every entry point treats samples before the start of a buffer as zero, so
// a fresh [Filter], a [Convolver] and [Compute] agree on the first
// numTaps-1 outputs.
//
// Coefficient design is out of scope. [DCGain], [Normalize] and
// [FrequencyResponse] help inspect a tap set once it exists.
package fir
