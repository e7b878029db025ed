package fracdelay

import (
	"fmt"
	"math"
)

// Delay is a validated, non-negative delay in samples, split into its
// integer and fractional parts.
//
// The zero value is a delay of zero samples.
type Delay struct {
	value    float64
	integer  int
	fraction float64
}

// NewDelay validates d and decomposes it as d = Integer + Fraction with
// Fraction in [0, 1). Negative, NaN and infinite delays, and delays above
// MaxDelay, are rejected with ErrValue.
func NewDelay(d float64) (Delay, error) {
	switch {
	case math.IsNaN(d):
		return Delay{}, fmt.Errorf("%w: delay is NaN", ErrValue)
	case math.IsInf(d, 0):
		return Delay{}, fmt.Errorf("%w: delay is infinite", ErrValue)
	case d < 0:
		return Delay{}, fmt.Errorf("%w: delay must not be negative: %v", ErrValue, d)
	case d > MaxDelay:
		return Delay{}, fmt.Errorf("%w: delay too large: %v (maximum %d)", ErrValue, d, MaxDelay)
	}

	whole := math.Floor(d)
	integer := int(whole)
	fraction := d - whole
	if fraction >= 1 {
		integer++
		fraction = 0
	}

	return Delay{value: d, integer: integer, fraction: fraction}, nil
}

// Value returns the delay in samples.
func (d Delay) Value() float64 { return d.value }

// Integer returns floor(Value).
func (d Delay) Integer() int { return d.integer }

// Fraction returns Value - Integer, in [0, 1).
func (d Delay) Fraction() float64 { return d.fraction }

// IsZero reports whether the delay is below DelayEpsilon.
func (d Delay) IsZero() bool { return d.value < DelayEpsilon }

func (d Delay) String() string {
	return fmt.Sprintf("%g (%d + %g)", d.value, d.integer, d.fraction)
}
