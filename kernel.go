package fracdelay

import (
	"slices"

	"github.com/tphakala/go-fracdelay/internal/filter"
)

// kernelFilter holds what every delay filter shares: the validated delay
// and the designed kernel. It is never modified after construction.
type kernelFilter struct {
	delay  Delay
	kernel filter.Kernel
}

// Process implements DelayFilter.
func (k *kernelFilter) Process(signal any) ([]float32, error) {
	x, err := Coerce(signal)
	if err != nil {
		return nil, err
	}
	return narrow(k.kernel.Apply(x)), nil
}

// ProcessFloat32 implements DelayFilter.
func (k *kernelFilter) ProcessFloat32(input []float32) []float32 {
	return narrow(k.kernel.Apply(widen(input)))
}

// ProcessFloat64 implements DelayFilter.
func (k *kernelFilter) ProcessFloat64(input []float64) []float64 {
	return k.kernel.Apply(input)
}

// Delay implements DelayFilter.
func (k *kernelFilter) Delay() float64 {
	return k.delay.Value()
}

// Taps implements DelayFilter.
func (k *kernelFilter) Taps() []float64 {
	return slices.Clone(k.kernel.Taps)
}

// Offset implements DelayFilter.
func (k *kernelFilter) Offset() int {
	return k.kernel.Offset
}

// ImpulseResponse returns the full impulse response from index 0, including
// the Offset leading zeros.
func (k *kernelFilter) ImpulseResponse() []float64 {
	return k.kernel.Dense()
}
