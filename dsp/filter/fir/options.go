package fir

import (
	"fmt"
	"strings"
)

// Method selects the convolution strategy of a [Convolver].
type Method int

const (
	// MethodAuto picks MethodDirect below DirectThreshold taps and
	// MethodFFT otherwise.
	MethodAuto Method = iota

	// MethodDirect evaluates every output as a dot product over the input
	// window. O(N*M).
	MethodDirect

	// MethodFFT uses block overlap-add through a complex FFT plan.
	// O(N log B) for block size B.
	MethodFFT
)

// DirectThreshold is the tap count from which MethodAuto switches to FFT.
const DirectThreshold = 64

const minFFTBlockSize = 256

// String returns the lower-case method name.
func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodDirect:
		return "direct"
	case MethodFFT:
		return "fft"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod converts a name produced by [Method.String] back to a Method.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return MethodAuto, nil
	case "direct":
		return MethodDirect, nil
	case "fft":
		return MethodFFT, nil
	default:
		return MethodAuto, fmt.Errorf("fir: unknown method %q", name)
	}
}

// Config holds [Convolver] settings.
type Config struct {
	Method Method
	// BlockSize is the FFT input block length. Zero selects the next power
	// of two at or above the tap count, at least 256.
	BlockSize int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns automatic method selection and block sizing.
func DefaultConfig() Config {
	return Config{Method: MethodAuto}
}

// WithMethod forces a convolution method.
func WithMethod(m Method) Option {
	return func(cfg *Config) {
		if m >= MethodAuto && m <= MethodFFT {
			cfg.Method = m
		}
	}
}

// WithBlockSize sets the FFT block size. Non-positive values are ignored.
func WithBlockSize(blockSize int) Option {
	return func(cfg *Config) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
