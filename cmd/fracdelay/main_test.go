package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-fracdelay"
)

const testFrames = 64

// execute runs the command line with args and returns its standard output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	return out.String(), err
}

// writeTestWAV writes a 16-bit stereo file: channel 0 holds a half-scale
// impulse at frame 0, channel 1 a constant quarter-scale negative level.
func writeTestWAV(t *testing.T) string {
	t.Helper()

	samples := make([]int, testFrames*2)
	samples[0] = 16384
	for i := range testFrames {
		samples[2*i+1] = -8192
	}

	path := filepath.Join(t.TempDir(), "input.wav")
	require.NoError(t, writeWAV(path, &wavData{
		format:   &audio.Format{NumChannels: 2, SampleRate: 48000},
		bitDepth: 16,
		samples:  samples,
	}))
	return path
}

func channel(data *wavData, ch int) []int {
	n := data.format.NumChannels
	out := make([]int, 0, data.frames())
	for i := ch; i < len(data.samples); i += n {
		out = append(out, data.samples[i])
	}
	return out
}

func TestApply_IntegerDelay(t *testing.T) {
	input := writeTestWAV(t)
	output := filepath.Join(t.TempDir(), "output.wav")

	stdout, err := execute(t, "apply", "--delay", "3", "--kernel", "linear", input, output)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Delayed input.wav -> output.wav")
	assert.Contains(t, stdout, "48000 Hz, 2 channels, 16-bit, 64 frames")

	got, err := readWAV(output)
	require.NoError(t, err)
	assert.Equal(t, 48000, got.format.SampleRate)
	assert.Equal(t, 16, got.bitDepth)
	require.Equal(t, testFrames, got.frames())

	left := channel(got, 0)
	right := channel(got, 1)

	want := make([]int, testFrames)
	want[3] = 16384
	assert.Equal(t, want, left)

	for i := range 3 {
		assert.Zero(t, right[i], "frame %d", i)
	}
	for i := 3; i < testFrames; i++ {
		assert.Equal(t, -8192, right[i], "frame %d", i)
	}
}

func TestApply_FractionalLinear(t *testing.T) {
	input := writeTestWAV(t)
	output := filepath.Join(t.TempDir(), "output.wav")

	_, err := execute(t, "apply", "-d", "2.5", "-k", "linear", "--parallel=false", input, output)
	require.NoError(t, err)

	got, err := readWAV(output)
	require.NoError(t, err)

	left := channel(got, 0)
	assert.Equal(t, []int{0, 0, 8192, 8192, 0}, left[:5])
}

func TestApply_SincMatchesLibrary(t *testing.T) {
	input := writeTestWAV(t)
	output := filepath.Join(t.TempDir(), "output.wav")

	_, err := execute(t, "apply", "--delay", "10.7", "--half-width", "8", "--window", "hann", input, output)
	require.NoError(t, err)

	got, err := readWAV(output)
	require.NoError(t, err)

	f, err := fracdelay.NewSincInterpDelay(10.7, &fracdelay.SincConfig{HalfWidth: 8, Window: fracdelay.WindowHann})
	require.NoError(t, err)

	impulse := make([]float32, testFrames)
	impulse[0] = float32(16384) / maxInt16
	want, _ := interleave([][]float32{f.ProcessFloat32(impulse)}, maxInt16)

	assert.InDeltaSlice(t, want, channel(got, 0), 1)
}

func TestApply_Environment(t *testing.T) {
	t.Setenv("FRACDELAY_KERNEL", "linear")
	t.Setenv("FRACDELAY_DELAY", "1.5")

	input := writeTestWAV(t)
	output := filepath.Join(t.TempDir(), "output.wav")

	stdout, err := execute(t, "apply", input, output)
	require.NoError(t, err)
	assert.Contains(t, stdout, "1.5 samples (linear, 2 taps)")

	got, err := readWAV(output)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 8192, 8192, 0}, channel(got, 0)[:4])
}

func TestApply_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "fracdelay.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("delay: 2\nkernel: sinc\n"), 0o644))

	input := writeTestWAV(t)
	output := filepath.Join(dir, "output.wav")

	stdout, err := execute(t, "--config", configPath, "apply", input, output)
	require.NoError(t, err)
	assert.Contains(t, stdout, "2 samples (windowed-sinc, 1 taps)")

	got, err := readWAV(output)
	require.NoError(t, err)
	assert.Equal(t, 16384, channel(got, 0)[2])
}

func TestApply_Errors(t *testing.T) {
	input := writeTestWAV(t)
	output := filepath.Join(t.TempDir(), "output.wav")

	tests := []struct {
		name string
		args []string
	}{
		{"missing_output", []string{"apply", "--delay", "1", input}},
		{"negative_delay", []string{"apply", "--delay", "-1", input, output}},
		{"unknown_kernel", []string{"apply", "--delay", "1", "--kernel", "cubic", input, output}},
		{"unknown_window", []string{"apply", "--delay", "1", "--window", "triangle", input, output}},
		{"missing_input", []string{"apply", "--delay", "1", "/nonexistent.wav", output}},
		{"missing_config", []string{"--config", "/nonexistent.yaml", "apply", input, output}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestResponse(t *testing.T) {
	stdout, err := execute(t, "response", "--delay", "3.3", "--kernel", "linear", "--points", "4")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Filter: linear, delay 3.3")
	assert.Contains(t, stdout, "Taps: 2 at offset 3")
	assert.Contains(t, stdout, "DC gain: 1.0000000000")
	assert.Contains(t, stdout, "phase delay")

	stdout, err = execute(t, "response", "--delay", "3.3", "--half-width", "10")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Window: hamming, half width 3 (clamped)")
	assert.Contains(t, stdout, "Taps: 7 at offset 0")

	stdout, err = execute(t, "response", "--delay", "10.7", "--window", "kaiser", "--kaiser-beta", "5")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Kaiser beta: 5.0000 (~54 dB stopband)")
}

func TestVersion(t *testing.T) {
	stdout, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "fracdelay Version: dev")
}

func TestDelayChannels_ParallelMatchesSequential(t *testing.T) {
	f, err := fracdelay.NewSincInterpDelay(5.25, nil)
	require.NoError(t, err)

	channels := deinterleave([]int{100, -200, 300, -400, 500, -600, 700, -800, 900, -1000, 1100, -1200}, 3, maxInt16)
	assert.Equal(t, delayChannels(f, channels, false), delayChannels(f, channels, true))
}
