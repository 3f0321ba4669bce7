package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/cwbudde/algo-fir/dsp/core"
	"github.com/cwbudde/algo-fir/dsp/filter/fir"
)

type command string

const (
	cmdDemo     command = "demo"
	cmdFilter   command = "filter"
	cmdResponse command = "response"
)

// methodReference runs the plain nested loop instead of a Convolver.
const methodReference = "reference"

// defaultTaps is the 8-tap low-pass of the original demo program.
const defaultTaps = "0.1,0.2,0.3,0.2,0.1,0.05,0.03,0.02"

type config struct {
	// taps is the comma separated coefficient list
	taps string
	// method is reference or a fir.Method name
	method string
	// normalize scales the taps to unity DC gain
	normalize bool
	// sampleRate is used by generated signals and the response table
	sampleRate float64

	// demo
	samples int
	print   int
	signal  string
	toneHz  float64
	seed    int64

	// filter
	in        string
	out       string
	bits      int
	blockSize int

	// response
	fftSize int
}

func newZeroConfig() config {
	return config{
		taps:       defaultTaps,
		method:     methodReference,
		sampleRate: 48000,
		samples:    128,
		print:      10,
		signal:     "ramp",
		toneHz:     1000,
		seed:       1,
		bits:       16,
		fftSize:    64,
	}
}

func (cfg *config) validate(cmd command) error {
	if cfg.method != methodReference {
		if _, err := fir.ParseMethod(cfg.method); err != nil {
			return err
		}
	}
	if cfg.sampleRate <= 0 {
		return errors.Errorf("sample rate must be > 0: %g", cfg.sampleRate)
	}

	switch cmd {
	case cmdDemo:
		if cfg.samples <= 0 {
			return errors.Errorf("samples must be > 0: %d", cfg.samples)
		}
		if cfg.print < 0 {
			return errors.Errorf("print count must be >= 0: %d", cfg.print)
		}
		switch cfg.signal {
		case "ramp", "sine", "noise", "impulse":
		default:
			return errors.Errorf("unknown signal %q", cfg.signal)
		}
	case cmdFilter:
		if cfg.in == "" || cfg.out == "" {
			return errors.New("both --in and --out are required")
		}
		if cfg.blockSize < 0 {
			return errors.Errorf("block size must be >= 0: %d", cfg.blockSize)
		}
	case cmdResponse:
		if cfg.fftSize <= 0 {
			return errors.Errorf("points must be > 0: %d", cfg.fftSize)
		}
	}
	return nil
}

// coefficients parses the tap list and applies normalization.
func (cfg *config) coefficients() ([]float64, error) {
	fields := strings.FieldsFunc(cfg.taps, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, errors.New("no taps given")
	}

	coeffs := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "tap %d", i)
		}
		coeffs[i] = v
	}

	if cfg.normalize {
		if err := fir.Normalize(coeffs); err != nil {
			return nil, err
		}
	}
	return coeffs, nil
}

func (cfg *config) processorOptions() []core.ProcessorOption {
	return []core.ProcessorOption{
		core.WithSampleRate(cfg.sampleRate),
		core.WithBlockSize(cfg.blockSize),
	}
}

// filterFunc returns the routine that filters one buffer with coeffs.
func (cfg *config) filterFunc(coeffs []float64) (func(dst, src []float64) error, error) {
	if cfg.method == methodReference {
		return func(dst, src []float64) error {
			return fir.Apply(src, dst, coeffs, len(src), len(coeffs))
		}, nil
	}

	method, err := fir.ParseMethod(cfg.method)
	if err != nil {
		return nil, err
	}

	pc := core.ApplyProcessorOptions(cfg.processorOptions()...)
	c, err := fir.NewConvolver(coeffs, fir.WithMethod(method), fir.WithBlockSize(pc.BlockSize))
	if err != nil {
		return nil, errors.Wrap(err, "failed to plan convolver")
	}
	return c.Process, nil
}
