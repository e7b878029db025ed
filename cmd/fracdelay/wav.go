package main

import (
	"fmt"
	"os"

	"github.com/chewxy/math32"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/tphakala/go-fracdelay/internal/simdops"
)

const (
	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Full-scale values for each bit depth
	maxInt16 = 32767
	maxInt24 = 8388607
	maxInt32 = 2147483647

	wavFormatPCM = 1
)

// wavData is a fully decoded PCM WAV file.
type wavData struct {
	format   *audio.Format
	bitDepth int
	samples  []int // interleaved
}

func (w *wavData) frames() int {
	return len(w.samples) / w.format.NumChannels
}

// readWAV decodes a whole PCM WAV file into memory.
func readWAV(path string) (*wavData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	bitDepth := int(decoder.BitDepth)
	if _, err := fullScale(bitDepth); err != nil {
		return nil, err
	}
	if buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, fmt.Errorf("invalid channel layout in %s", path)
	}

	return &wavData{format: buf.Format, bitDepth: bitDepth, samples: buf.Data}, nil
}

// writeWAV encodes interleaved PCM samples to path.
func writeWAV(path string, data *wavData) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	encoder := wav.NewEncoder(f, data.format.SampleRate, data.bitDepth, data.format.NumChannels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         data.format,
		Data:           data.samples,
		SourceBitDepth: data.bitDepth,
	}
	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	// Close finalizes the RIFF header sizes.
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}

// fullScale returns the largest positive sample value for a PCM bit depth.
func fullScale(bitDepth int) (int, error) {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16, nil
	case bitsPerSample24:
		return maxInt24, nil
	case bitsPerSample32:
		return maxInt32, nil
	default:
		return 0, fmt.Errorf("unsupported bit depth: %d (supported: 16, 24, 32)", bitDepth)
	}
}

// deinterleave splits interleaved PCM into per-channel float32 buffers
// normalized to [-1, 1].
func deinterleave(samples []int, numChannels, maxVal int) [][]float32 {
	frames := len(samples) / numChannels
	channels := make([][]float32, numChannels)
	for ch := range numChannels {
		channels[ch] = make([]float32, frames)
	}

	for i := range frames {
		base := i * numChannels
		for ch := range numChannels {
			channels[ch][i] = float32(samples[base+ch])
		}
	}

	scale := simdops.Float32Ops().Scale
	invMaxVal := 1 / float32(maxVal)
	for _, buf := range channels {
		scale(buf, buf, invMaxVal)
	}
	return channels
}

// interleave quantizes normalized channels back to PCM, clipping to full
// scale. It returns the samples and the number of samples that clipped.
func interleave(channels [][]float32, maxVal int) ([]int, int) {
	if len(channels) == 0 {
		return nil, 0
	}

	numChannels := len(channels)
	frames := len(channels[0])
	out := make([]int, frames*numChannels)
	full := float32(maxVal)
	clipped := 0

	for ch, buf := range channels {
		for i, s := range buf {
			limited := math32.Max(-1, math32.Min(1, s))
			if limited != s {
				clipped++
			}
			// float32 cannot represent 2^31-1, so clamp again after rounding
			q := int(math32.Round(limited * full))
			out[i*numChannels+ch] = max(-maxVal, min(maxVal, q))
		}
	}
	return out, clipped
}
