package main

import (
	"log"

	"github.com/pkg/errors"

	"github.com/cwbudde/algo-fir/internal/audiofile"
)

func runFilter(cfg *config, coeffs []float64) error {
	clip, err := audiofile.Load(cfg.in)
	if err != nil {
		return err
	}

	process, err := cfg.filterFunc(coeffs)
	if err != nil {
		return err
	}

	for ch, samples := range clip.Channels {
		if err := process(samples, append([]float64(nil), samples...)); err != nil {
			return errors.Wrapf(err, "channel %d", ch)
		}
	}

	if err := audiofile.SaveWAV(cfg.out, clip, cfg.bits); err != nil {
		return err
	}

	log.Printf("filtered %d frames x %d channels at %d Hz with %d taps (%s) -> %s",
		clip.Frames(), len(clip.Channels), clip.SampleRate, len(coeffs), cfg.method, cfg.out)
	return nil
}
