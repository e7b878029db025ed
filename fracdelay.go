package fracdelay

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tphakala/go-fracdelay/internal/filter"
)

// DelayFilter is the common interface of the fractional delay filters.
//
// Filters are immutable once constructed. Each call processes a complete
// buffer and carries no history into the next call, so a single filter may
// be shared between goroutines.
type DelayFilter interface {
	// Process delays signal and returns a new float32 buffer of the same
	// length. signal may be any type accepted by Coerce. Samples before the
	// start of the buffer are taken as zero, and output samples whose source
	// lies past the end of the buffer are dropped.
	Process(signal any) ([]float32, error)

	// ProcessFloat32 is Process for float32 input without the type dispatch.
	ProcessFloat32(input []float32) []float32

	// ProcessFloat64 is Process for float64 input and keeps float64 output
	// for analysis.
	ProcessFloat64(input []float64) []float64

	// Delay returns the requested delay in samples.
	Delay() float64

	// Taps returns a copy of the non-zero part of the impulse response.
	Taps() []float64

	// Offset returns the index of the first tap in the impulse response. The
	// first Offset output samples of every call are zero.
	Offset() int
}

// Kind selects the interpolation strategy used by New.
type Kind int

const (
	// KindLinear uses two-tap linear interpolation. Cheapest, but it rolls
	// off high frequencies and its phase delay varies with frequency.
	KindLinear Kind = iota

	// KindSinc uses a windowed-sinc kernel of 2M+1 taps.
	KindSinc
)

var kindNames = map[Kind]string{
	KindLinear: "linear",
	KindSinc:   "sinc",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind returns the Kind named by s ("linear" or "sinc", case insensitive).
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown filter kind %q", ErrValue, s)
}

// Window is the apodization window applied to the truncated sinc.
type Window = filter.WindowType

// Supported windows.
const (
	WindowHamming        = filter.WindowHamming
	WindowHann           = filter.WindowHann
	WindowBlackmanHarris = filter.WindowBlackmanHarris
	WindowKaiser         = filter.WindowKaiser
)

// ParseWindow returns the Window named by s, e.g. "hamming" or "kaiser".
func ParseWindow(s string) (Window, error) {
	w, err := filter.ParseWindow(strings.ToLower(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrValue, err)
	}
	return w, nil
}

// Config selects and parameterizes a delay filter for New.
type Config struct {
	// Delay in samples. Must be finite and non-negative.
	Delay float64

	// Kind is the interpolation strategy.
	Kind Kind

	// Sinc holds the windowed-sinc parameters. Ignored for KindLinear.
	Sinc SincConfig
}

// SincConfig holds the windowed-sinc kernel parameters. The zero value
// selects the defaults: automatic half width, Hamming window, full band.
type SincConfig struct {
	// HalfWidth is M; the kernel has 2M+1 taps. Zero selects
	// min(round(delay), DefaultMaxHalfWidth). A requested M larger than
	// round(delay) is reduced to it so the filter stays causal.
	HalfWidth int

	// Window is the apodization window.
	Window Window

	// KaiserBeta is the Kaiser window β. Zero derives β for 80 dB of
	// stopband attenuation. Only used with WindowKaiser.
	KaiserBeta float64

	// Cutoff is the passband edge as a fraction of Nyquist, in (0, 1].
	// Zero selects 1. Lower values trade bandwidth for less ripple.
	Cutoff float64
}

// Common errors returned by the package.
var (
	// ErrType indicates an input whose shape is not a supported 1-D sequence.
	ErrType = errors.New("unsupported input type")

	// ErrValue indicates an invalid delay, configuration or sample value.
	ErrValue = errors.New("invalid value")
)

// Validate checks the configuration.
func (c *Config) Validate() error {
	if _, err := NewDelay(c.Delay); err != nil {
		return err
	}

	switch c.Kind {
	case KindLinear:
		return nil
	case KindSinc:
		return c.Sinc.Validate()
	default:
		return fmt.Errorf("%w: unknown filter kind %d", ErrValue, int(c.Kind))
	}
}

// Validate checks the sinc parameters.
func (c *SincConfig) Validate() error {
	params := c.params()
	if err := params.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrValue, err)
	}
	return nil
}

func (c *SincConfig) params() filter.SincParams {
	return filter.SincParams{
		HalfWidth:  c.HalfWidth,
		Window:     c.Window,
		KaiserBeta: c.KaiserBeta,
		Cutoff:     c.Cutoff,
	}
}

// New creates the delay filter described by config.
func New(config *Config) (DelayFilter, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrValue)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Kind {
	case KindSinc:
		sincConfig := config.Sinc
		return NewSincInterpDelay(config.Delay, &sincConfig)
	default:
		return NewLinearInterpDelay(config.Delay)
	}
}

// Info describes a constructed delay filter.
type Info struct {
	// Algorithm is "linear" or "windowed-sinc".
	Algorithm string

	// Delay is the requested delay in samples.
	Delay float64

	// FilterLength is the number of non-zero-region taps.
	FilterLength int

	// Offset is the index of the first tap.
	Offset int

	// HalfWidth is the effective sinc half width M. Zero for the linear
	// kernel and for sinc filters that reduced to an integer delay or fell
	// back to linear interpolation.
	HalfWidth int

	// Window names the sinc window, empty for the linear kernel.
	Window string

	// Clamped reports that the requested sinc half width was reduced.
	Clamped bool

	// KaiserBeta is the Kaiser window β in use, zero for other windows.
	KaiserBeta float64
}

// infoProvider is implemented by filters that can describe themselves in detail.
type infoProvider interface {
	GetInfo() Info
}

// GetInfo returns information about a delay filter.
func GetInfo(f DelayFilter) Info {
	if provider, ok := f.(infoProvider); ok {
		return provider.GetInfo()
	}

	return Info{
		Algorithm:    algorithmUnknown,
		Delay:        f.Delay(),
		FilterLength: len(f.Taps()),
		Offset:       f.Offset(),
	}
}
