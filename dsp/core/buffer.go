package core

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	clear(buf)
}

// Deinterleave splits frame-interleaved samples into one slice per channel.
// A trailing partial frame is dropped.
func Deinterleave(data []float64, channels int) [][]float64 {
	if channels <= 0 {
		return nil
	}

	frames := len(data) / channels
	out := make([][]float64, channels)
	for ch := range out {
		out[ch] = make([]float64, frames)
	}
	for i := range frames {
		for ch := range channels {
			out[ch][i] = data[i*channels+ch]
		}
	}
	return out
}

// Interleave merges per-channel slices into frame-interleaved samples. The
// shortest channel determines the frame count.
func Interleave(channels [][]float64) []float64 {
	if len(channels) == 0 {
		return nil
	}

	frames := len(channels[0])
	for _, ch := range channels[1:] {
		frames = min(frames, len(ch))
	}

	out := make([]float64, frames*len(channels))
	for i := range frames {
		for ch, samples := range channels {
			out[i*len(channels)+ch] = samples[i]
		}
	}
	return out
}
