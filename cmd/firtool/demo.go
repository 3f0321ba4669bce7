package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/cwbudde/algo-fir/dsp/signal"
)

func runDemo(w io.Writer, cfg *config, coeffs []float64) error {
	gen := signal.NewGenerator(cfg.processorOptions(), signal.WithSeed(cfg.seed))

	var (
		input []float64
		err   error
	)
	switch cfg.signal {
	case "ramp":
		input, err = gen.Ramp(cfg.samples)
	case "sine":
		input, err = gen.Sine(cfg.toneHz, 1, cfg.samples)
	case "noise":
		input, err = gen.WhiteNoise(1, cfg.samples)
	case "impulse":
		input, err = gen.Impulse(cfg.samples, 0)
	default:
		err = errors.Errorf("unknown signal %q", cfg.signal)
	}
	if err != nil {
		return errors.Wrap(err, "failed to generate signal")
	}

	process, err := cfg.filterFunc(coeffs)
	if err != nil {
		return err
	}

	output := make([]float64, len(input))
	if err := process(output, input); err != nil {
		return err
	}

	n := min(cfg.print, len(output))
	if _, err := fmt.Fprintf(w, "FIR filter output (first %d samples):\n", n); err != nil {
		return err
	}
	for i := range n {
		if _, err := fmt.Fprintf(w, "output[%d] = %.4f\n", i, output[i]); err != nil {
			return err
		}
	}
	return nil
}
