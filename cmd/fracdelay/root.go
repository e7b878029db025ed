package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tphakala/go-fracdelay"
)

const envPrefix = "FRACDELAY"

// Configuration keys shared by the flags, the environment and config files.
const (
	keyConfig     = "config"
	keyVerbose    = "verbose"
	keyDelay      = "delay"
	keyKernel     = "kernel"
	keyHalfWidth  = "half-width"
	keyWindow     = "window"
	keyKaiserBeta = "kaiser-beta"
	keyCutoff     = "cutoff"
	keyParallel   = "parallel"
	keyPoints     = "points"
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "fracdelay",
		Short: "Delay audio by a fractional number of samples",
		Long: `fracdelay shifts audio by a non-integer number of samples using
linear or windowed-sinc interpolation.

Flags may also be given as FRACDELAY_* environment variables or in a
config file (--config).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v)
		},
	}

	rootCmd.PersistentFlags().String(keyConfig, "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().BoolP(keyVerbose, "v", false, "verbose output")
	_ = v.BindPFlag(keyConfig, rootCmd.PersistentFlags().Lookup(keyConfig))
	_ = v.BindPFlag(keyVerbose, rootCmd.PersistentFlags().Lookup(keyVerbose))

	rootCmd.AddCommand(newApplyCmd(v))
	rootCmd.AddCommand(newResponseCmd(v))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func initConfig(v *viper.Viper) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	file := v.GetString(keyConfig)
	if file == "" {
		return nil
	}

	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", file, err)
	}
	return nil
}

// bindFlags binds the running command's flags to v. Subcommands share keys,
// so only the command being executed may be bound.
func bindFlags(v *viper.Viper) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return v.BindPFlags(cmd.Flags())
	}
}

// addFilterFlags registers the flags describing a delay filter.
func addFilterFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Float64P(keyDelay, "d", 0, "delay in samples (non-negative, may be fractional)")
	flags.StringP(keyKernel, "k", "sinc", "interpolation kernel: linear, sinc")
	flags.Int(keyHalfWidth, 0, "sinc half width M (2M+1 taps); 0 selects min(round(delay), 32)")
	flags.String(keyWindow, "hamming", "sinc window: hamming, hann, blackman-harris, kaiser")
	flags.Float64(keyKaiserBeta, 0, "Kaiser window beta; 0 derives it for 80 dB attenuation")
	flags.Float64(keyCutoff, 0, "sinc cutoff relative to Nyquist, in (0, 1]; 0 selects 1")
}

// filterConfig builds the library configuration from the bound settings.
func filterConfig(v *viper.Viper) (*fracdelay.Config, error) {
	kind, err := fracdelay.ParseKind(v.GetString(keyKernel))
	if err != nil {
		return nil, err
	}

	window, err := fracdelay.ParseWindow(v.GetString(keyWindow))
	if err != nil {
		return nil, err
	}

	config := &fracdelay.Config{
		Delay: v.GetFloat64(keyDelay),
		Kind:  kind,
		Sinc: fracdelay.SincConfig{
			HalfWidth:  v.GetInt(keyHalfWidth),
			Window:     window,
			KaiserBeta: v.GetFloat64(keyKaiserBeta),
			Cutoff:     v.GetFloat64(keyCutoff),
		},
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
