package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tphakala/go-fracdelay"
	"github.com/tphakala/go-fracdelay/internal/mathutil"
	"github.com/tphakala/go-fracdelay/internal/simdops"
)

const defaultPoints = 16

func newResponseCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "response",
		Short: "Print the frequency response of a delay filter",
		Long: `Print the taps, DC gain, magnitude and phase delay of a delay filter at
evenly spaced frequencies between DC and Nyquist.`,
		Example: `  fracdelay response --delay 3.3 --kernel linear
  fracdelay response --delay 10.7 --kernel sinc --window kaiser --points 32`,
		Args:    cobra.NoArgs,
		PreRunE: bindFlags(v),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := filterConfig(v)
			if err != nil {
				return err
			}
			f, err := fracdelay.New(config)
			if err != nil {
				return err
			}
			printResponse(cmd.OutOrStdout(), f, v.GetInt(keyPoints))
			return nil
		},
	}

	addFilterFlags(cmd)
	cmd.Flags().IntP(keyPoints, "n", defaultPoints, "number of frequencies")

	return cmd
}

func printResponse(w io.Writer, f fracdelay.DelayFilter, points int) {
	info := fracdelay.GetInfo(f)
	taps := f.Taps()

	fmt.Fprintf(w, "Filter: %s, delay %g\n", info.Algorithm, info.Delay)
	if info.Window != "" {
		fmt.Fprintf(w, "  Window: %s, half width %d", info.Window, info.HalfWidth)
		if info.Clamped {
			fmt.Fprint(w, " (clamped)")
		}
		fmt.Fprintln(w)
	}
	if info.KaiserBeta > 0 {
		fmt.Fprintf(w, "  Kaiser beta: %.4f (~%.0f dB stopband)\n", info.KaiserBeta, mathutil.KaiserAttenuation(info.KaiserBeta))
	}
	fmt.Fprintf(w, "  Taps: %d at offset %d\n", len(taps), f.Offset())
	fmt.Fprintf(w, "  DC gain: %.10f\n\n", simdops.Float64Ops().Sum(taps))

	r := fracdelay.FrequencyResponse(f, points)
	fmt.Fprintf(w, "%10s %12s %12s %14s\n", "freq", "magnitude", "dB", "phase delay")
	for i, freq := range r.Frequencies {
		fmt.Fprintf(w, "%10.5f %12.6f %12.4f %14.6f\n", freq, r.Magnitude[i], r.MagnitudeDB[i], r.PhaseDelay[i])
	}
}
