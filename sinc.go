package fracdelay

import (
	"fmt"

	"github.com/tphakala/go-fracdelay/internal/filter"
)

// SincInterpDelay delays a signal with a windowed-sinc interpolation kernel.
//
// The delay D is split around its nearest integer N with residual μ in
// [-0.5, 0.5]; the filter's 2M+1 taps are
//
//	h[k] = sinc(k - μ) · w[k + M],  k = -M..M
//
// applied as y[n] = Σ h[k]·x[n - N - k]. The kernel reaches M samples
// ahead of the nominal delay, so M never exceeds N and the first N - M
// outputs are zero. Compared with linear interpolation it keeps a flat
// magnitude and constant phase delay much closer to Nyquist.
type SincInterpDelay struct {
	kernelFilter

	window    Window
	halfWidth int
	clamped   bool
	beta      float64
}

var _ DelayFilter = (*SincInterpDelay)(nil)

// NewSincInterpDelay creates a windowed-sinc delay of delay samples. A nil
// config selects the defaults (see SincConfig).
//
// Special cases: a delay below DelayEpsilon is the identity, a delay within
// DelayEpsilon of an integer is a single unit tap, and a delay below 0.5
// (where no causal sinc span exists) falls back to linear interpolation.
func NewSincInterpDelay(delay float64, config *SincConfig) (*SincInterpDelay, error) {
	d, err := NewDelay(delay)
	if err != nil {
		return nil, err
	}

	if config == nil {
		config = &SincConfig{}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	design, err := filter.SincInterpolation(d.Integer(), d.Fraction(), config.params())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValue, err)
	}

	return &SincInterpDelay{
		kernelFilter: kernelFilter{delay: d, kernel: design.Kernel},
		window:       config.Window,
		halfWidth:    design.HalfWidth,
		clamped:      design.Clamped,
		beta:         design.KaiserBeta,
	}, nil
}

// HalfWidth returns the effective half width M after defaulting and clamping.
func (s *SincInterpDelay) HalfWidth() int {
	return s.halfWidth
}

// Clamped reports whether the requested half width was reduced to keep the
// filter causal.
func (s *SincInterpDelay) Clamped() bool {
	return s.clamped
}

// GetInfo returns information about the filter.
func (s *SincInterpDelay) GetInfo() Info {
	return Info{
		Algorithm:    algorithmSinc,
		Delay:        s.delay.Value(),
		FilterLength: len(s.kernel.Taps),
		Offset:       s.kernel.Offset,
		HalfWidth:    s.halfWidth,
		Window:       s.window.String(),
		Clamped:      s.clamped,
		KaiserBeta:   s.beta,
	}
}
