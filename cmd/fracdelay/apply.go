package main

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tphakala/go-fracdelay"
)

const applyArgs = 2

func newApplyCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply [flags] input.wav output.wav",
		Short: "Delay every channel of a WAV file",
		Long: `Delay every channel of a PCM WAV file (16, 24 or 32 bit) by a
fractional number of samples. The output keeps the input length, sample
rate and bit depth; samples shifted past the end are dropped.`,
		Example: `  fracdelay apply --delay 3.3 in.wav out.wav
  fracdelay apply --delay 10.7 --half-width 16 --window hann in.wav out.wav
  FRACDELAY_KERNEL=linear fracdelay apply -d 0.5 in.wav out.wav`,
		Args:    cobra.ExactArgs(applyArgs),
		PreRunE: bindFlags(v),
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := runApply(v, args[0], args[1])
			if err != nil {
				return err
			}
			stats.print(cmd, args[0], args[1])
			return nil
		},
	}

	addFilterFlags(cmd)
	cmd.Flags().Bool(keyParallel, true, "process channels concurrently")

	return cmd
}

type applyStats struct {
	info       fracdelay.Info
	sampleRate int
	channels   int
	bitDepth   int
	frames     int
	clipped    int
	elapsed    time.Duration
}

func (s *applyStats) print(cmd *cobra.Command, inputPath, outputPath string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Delayed %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Fprintf(out, "  %.6g samples (%s, %d taps)\n", s.info.Delay, s.info.Algorithm, s.info.FilterLength)
	fmt.Fprintf(out, "  %d Hz, %d channels, %d-bit, %d frames\n", s.sampleRate, s.channels, s.bitDepth, s.frames)
	if s.elapsed > 0 && s.sampleRate > 0 {
		fmt.Fprintf(out, "  Duration: %.2fs, Speed: %.1fx realtime\n",
			s.elapsed.Seconds(), float64(s.frames)/float64(s.sampleRate)/s.elapsed.Seconds())
	}
	if s.clipped > 0 {
		fmt.Fprintf(out, "  Clipped: %d samples\n", s.clipped)
	}
}

func runApply(v *viper.Viper, inputPath, outputPath string) (*applyStats, error) {
	verbose := v.GetBool(keyVerbose)

	config, err := filterConfig(v)
	if err != nil {
		return nil, err
	}

	f, err := fracdelay.New(config)
	if err != nil {
		return nil, err
	}

	info := fracdelay.GetInfo(f)
	if info.Clamped {
		log.Printf("warning: half width %d exceeds the delay, using %d", config.Sinc.HalfWidth, info.HalfWidth)
	}
	if verbose {
		log.Printf("Input: %s", inputPath)
		log.Printf("Output: %s", outputPath)
		log.Printf("Filter: %s, delay %g, %d taps at offset %d", info.Algorithm, info.Delay, info.FilterLength, info.Offset)
		if info.Window != "" {
			log.Printf("Window: %s, half width %d", info.Window, info.HalfWidth)
		}
	}

	start := time.Now()

	input, err := readWAV(inputPath)
	if err != nil {
		return nil, err
	}
	maxVal, err := fullScale(input.bitDepth)
	if err != nil {
		return nil, err
	}
	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit, %d frames",
			input.format.SampleRate, input.format.NumChannels, input.bitDepth, input.frames())
	}

	channels := deinterleave(input.samples, input.format.NumChannels, maxVal)
	delayed := delayChannels(f, channels, v.GetBool(keyParallel))
	samples, clipped := interleave(delayed, maxVal)

	if clipped > 0 {
		log.Printf("warning: %d samples clipped", clipped)
	}

	output := &wavData{format: input.format, bitDepth: input.bitDepth, samples: samples}
	if err := writeWAV(outputPath, output); err != nil {
		return nil, err
	}

	return &applyStats{
		info:       info,
		sampleRate: input.format.SampleRate,
		channels:   input.format.NumChannels,
		bitDepth:   input.bitDepth,
		frames:     input.frames(),
		clipped:    clipped,
		elapsed:    time.Since(start),
	}, nil
}

// delayChannels runs the filter over each channel. The filter is immutable,
// so one instance serves all channels.
func delayChannels(f fracdelay.DelayFilter, channels [][]float32, parallel bool) [][]float32 {
	delayed := make([][]float32, len(channels))

	if !parallel || len(channels) < 2 {
		for ch, buf := range channels {
			delayed[ch] = f.ProcessFloat32(buf)
		}
		return delayed
	}

	var wg sync.WaitGroup
	for ch, buf := range channels {
		wg.Add(1)
		go func() {
			defer wg.Done()
			delayed[ch] = f.ProcessFloat32(buf)
		}()
	}
	wg.Wait()

	return delayed
}
