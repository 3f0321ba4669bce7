// Package audiofile loads and stores the sample clips firtool filters.
//
// Samples are held as float64 per channel, scaled to [-1, 1]. WAV files are
// read and written with go-audio; MP3 files are read with go-mp3, which
// always decodes to 16-bit stereo.
package audiofile

import (
	"encoding/binary"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/pkg/errors"

	"github.com/cwbudde/algo-fir/dsp/core"
)

const wavFormatPCM = 1

// Clip is decoded audio, one sample slice per channel.
type Clip struct {
	SampleRate int
	Channels   [][]float64
}

// Frames returns the number of samples per channel.
func (c *Clip) Frames() int {
	if len(c.Channels) == 0 {
		return 0
	}
	return len(c.Channels[0])
}

// Load decodes a .wav or .mp3 file.
func Load(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "audiofile: open")
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return DecodeWAV(f)
	case ".mp3":
		return DecodeMP3(f)
	default:
		return nil, errors.Errorf("audiofile: unsupported file type %q", ext)
	}
}

// DecodeWAV reads an integer PCM WAV stream.
func DecodeWAV(r io.ReadSeeker) (*Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, errors.New("audiofile: wav: not a valid wav file")
	}
	if dec.WavAudioFormat != wavFormatPCM {
		return nil, errors.Errorf("audiofile: wav: unsupported audio format %d", dec.WavAudioFormat)
	}

	bitDepth := int(dec.BitDepth)
	if bitDepth < 8 || bitDepth > 32 || dec.NumChans == 0 {
		return nil, errors.Errorf("audiofile: wav: unsupported layout %d bit x %d channels", bitDepth, dec.NumChans)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "audiofile: wav")
	}

	fullScale := float64(int(1) << (bitDepth - 1))
	data := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		if bitDepth == 8 {
			// 8-bit WAV samples are unsigned.
			v -= 128
		}
		data[i] = float64(v) / fullScale
	}

	return &Clip{
		SampleRate: int(dec.SampleRate),
		Channels:   core.Deinterleave(data, int(dec.NumChans)),
	}, nil
}

// DecodeMP3 reads an MP3 stream into a stereo clip.
func DecodeMP3(r io.Reader) (*Clip, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, errors.Wrap(err, "audiofile: mp3")
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, errors.Wrap(err, "audiofile: mp3")
	}

	// Two bytes per sample, little endian, left and right interleaved.
	data := make([]float64, len(raw)/2)
	for i := range data {
		data[i] = float64(int16(binary.LittleEndian.Uint16(raw[2*i:]))) / 32768
	}

	return &Clip{
		SampleRate: dec.SampleRate(),
		Channels:   core.Deinterleave(data, 2),
	}, nil
}

// SaveWAV writes clip as integer PCM with the given bit depth.
func SaveWAV(path string, clip *Clip, bitDepth int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "audiofile: create")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "audiofile: close")
		}
	}()

	return EncodeWAV(f, clip, bitDepth)
}

// EncodeWAV writes clip to w. Samples outside [-1, 1] are clipped.
func EncodeWAV(w io.WriteSeeker, clip *Clip, bitDepth int) error {
	switch {
	case clip == nil || len(clip.Channels) == 0:
		return errors.New("audiofile: wav: clip has no channels")
	case clip.SampleRate <= 0:
		return errors.Errorf("audiofile: wav: invalid sample rate %d", clip.SampleRate)
	case bitDepth != 8 && bitDepth != 16 && bitDepth != 24 && bitDepth != 32:
		return errors.Errorf("audiofile: wav: unsupported bit depth %d", bitDepth)
	}

	fullScale := float64(int(1) << (bitDepth - 1))
	interleaved := core.Interleave(clip.Channels)
	ints := make([]int, len(interleaved))
	for i, v := range interleaved {
		s := int(math.Round(core.Clamp(v, -1, 1) * (fullScale - 1)))
		if bitDepth == 8 {
			s += 128
		}
		ints[i] = s
	}

	numChans := len(clip.Channels)
	enc := wav.NewEncoder(w, clip.SampleRate, bitDepth, numChans, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChans, SampleRate: clip.SampleRate},
		Data:           ints,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return errors.Wrap(err, "audiofile: wav: write")
	}
	return errors.Wrap(enc.Close(), "audiofile: wav: close")
}
