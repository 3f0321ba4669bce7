// Command firtool runs the causal FIR filter from the command line.
//
// Usage:
//
//	firtool demo [flags]
//	firtool filter --in in.wav --out out.wav [flags]
//	firtool response [flags]
//
// demo filters a generated 128-sample ramp with the default 8-tap set and
// prints the first outputs. filter applies a tap set to every channel of a
// WAV or MP3 file and writes a WAV. response prints the magnitude response
// of the tap set.
package main

import (
	"log"
	"os"

	"github.com/integrii/flaggy"
)

// AppName is the app name
const AppName = "firtool"

// AppDesc is the app description
const AppDesc = "Causal FIR filtering of generated signals and audio files"

var version = "unknown"

func main() {
	log.SetFlags(0)

	cfg := newZeroConfig()
	cmd := doFlags(&cfg)

	chk(cfg.validate(cmd), "invalid config")

	coeffs, err := cfg.coefficients()
	chk(err, "invalid taps")

	switch cmd {
	case cmdDemo:
		chk(runDemo(os.Stdout, &cfg, coeffs), "demo failed")
	case cmdFilter:
		chk(runFilter(&cfg, coeffs), "filter failed")
	case cmdResponse:
		chk(runResponse(os.Stdout, &cfg, coeffs), "response failed")
	}
}

func doFlags(cfg *config) command {
	parser := flaggy.NewParser(AppName)
	parser.Description = AppDesc
	parser.Version = version

	demoCmd := flaggy.Subcommand{
		Name:        string(cmdDemo),
		ShortName:   "d",
		Description: "filter a generated test signal and print the first outputs",
	}
	demoCmd.Int(&cfg.samples, "n", "samples", "number of samples to generate")
	demoCmd.Int(&cfg.print, "p", "print", "number of outputs to print")
	demoCmd.String(&cfg.signal, "s", "signal", "test signal (ramp, sine, noise, impulse)")
	demoCmd.Float64(&cfg.toneHz, "hz", "tone", "sine frequency in Hz")
	demoCmd.Int64(&cfg.seed, "seed", "seed", "noise seed")

	filterCmd := flaggy.Subcommand{
		Name:        string(cmdFilter),
		ShortName:   "f",
		Description: "filter every channel of an audio file into a wav file",
	}
	filterCmd.String(&cfg.in, "i", "in", "input file (.wav or .mp3)")
	filterCmd.String(&cfg.out, "o", "out", "output wav file")
	filterCmd.Int(&cfg.bits, "b", "bits", "output bit depth (8, 16, 24, 32)")
	filterCmd.Int(&cfg.blockSize, "bs", "block", "fft block size (0 picks one)")

	responseCmd := flaggy.Subcommand{
		Name:        string(cmdResponse),
		ShortName:   "r",
		Description: "print the magnitude response of the tap set",
	}
	responseCmd.Int(&cfg.fftSize, "n", "points", "number of evaluation points")

	for _, sub := range []*flaggy.Subcommand{&demoCmd, &filterCmd, &responseCmd} {
		sub.String(&cfg.taps, "t", "taps", "comma separated coefficients")
		sub.String(&cfg.method, "m", "method", "reference, auto, direct or fft")
		sub.Bool(&cfg.normalize, "nz", "normalize", "scale taps to unity dc gain")
		sub.Float64(&cfg.sampleRate, "r", "rate", "sample rate in Hz")
		parser.AttachSubcommand(sub, 1)
	}

	chk(parser.Parse(), "failed to parse arguments")

	switch {
	case demoCmd.Used:
		return cmdDemo
	case filterCmd.Used:
		return cmdFilter
	case responseCmd.Used:
		return cmdResponse
	}

	parser.ShowHelpAndExit("a subcommand is required")
	return ""
}

func chk(err error, wrap string) {
	if err != nil {
		log.Fatalln(wrap+": ", err)
	}
}
