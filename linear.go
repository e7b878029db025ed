package fracdelay

import (
	"github.com/tphakala/go-fracdelay/internal/filter"
)

// LinearInterpDelay delays a signal by linear interpolation between the two
// samples that bracket the delayed position:
//
//	y[n] = (1 - f)·x[n - n0] + f·x[n - n0 - 1]
//
// where n0 and f are the integer and fractional parts of the delay. It is
// causal and costs two multiplies per sample, but it attenuates high
// frequencies (the response at Nyquist is |1 - 2f|) and its phase delay
// drifts from the requested delay as frequency rises.
type LinearInterpDelay struct {
	kernelFilter
}

var _ DelayFilter = (*LinearInterpDelay)(nil)

// NewLinearInterpDelay creates a linear interpolation delay of delay samples.
// Delays below DelayEpsilon produce the identity filter.
func NewLinearInterpDelay(delay float64) (*LinearInterpDelay, error) {
	d, err := NewDelay(delay)
	if err != nil {
		return nil, err
	}

	return &LinearInterpDelay{
		kernelFilter: kernelFilter{
			delay:  d,
			kernel: filter.LinearInterpolation(d.Integer(), d.Fraction()),
		},
	}, nil
}

// GetInfo returns information about the filter.
func (l *LinearInterpDelay) GetInfo() Info {
	return Info{
		Algorithm:    algorithmLinear,
		Delay:        l.delay.Value(),
		FilterLength: len(l.kernel.Taps),
		Offset:       l.kernel.Offset,
	}
}
