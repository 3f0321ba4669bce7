package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-fir/dsp/filter/fir"
)

func runResponse(w io.Writer, cfg *config, coeffs []float64) error {
	n := max(cfg.fftSize, len(coeffs))
	db, err := fir.MagnitudeResponseDB(coeffs, n)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "taps=%d dc gain=%.6f\n", len(coeffs), fir.DCGain(coeffs)); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Bin\tFreq [Hz]\tMagnitude [dB]\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "---\t---------\t--------------\n"); err != nil {
		return err
	}
	for k, v := range db {
		if _, err := fmt.Fprintf(tw, "%d\t%.1f\t%.2f\n", k, fir.BinFrequency(k, n, cfg.sampleRate), v); err != nil {
			return err
		}
	}
	return tw.Flush()
}
