// Package filter designs and applies the FIR kernels behind the
// fractional-delay filters: symmetric apodizing windows, the linear and
// windowed-sinc interpolation kernels, direct and FFT convolution, and
// frequency-response analysis.
package filter

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/window"

	"github.com/tphakala/go-fracdelay/internal/mathutil"
)

// WindowType identifies an apodizing window.
type WindowType int

const (
	// WindowHamming is the default window (0.54 - 0.46·cos).
	WindowHamming WindowType = iota
	// WindowHann is the raised-cosine window; its end points are zero.
	WindowHann
	// WindowBlackmanHarris is the 4-term Blackman-Harris window (~92 dB sidelobes).
	WindowBlackmanHarris
	// WindowKaiser is the Kaiser-Bessel window with adjustable β.
	WindowKaiser
)

var windowNames = map[WindowType]string{
	WindowHamming:        "hamming",
	WindowHann:           "hann",
	WindowBlackmanHarris: "blackman-harris",
	WindowKaiser:         "kaiser",
}

// String returns the lower-case window name.
func (w WindowType) String() string {
	if name, ok := windowNames[w]; ok {
		return name
	}
	return fmt.Sprintf("window(%d)", int(w))
}

// ParseWindow maps a window name to its WindowType.
func ParseWindow(name string) (WindowType, error) {
	for w, n := range windowNames {
		if n == name {
			return w, nil
		}
	}
	return 0, fmt.Errorf("unknown window function: %q", name)
}

// GenerateWindow returns the symmetric window of the given type and length.
// beta is only used by WindowKaiser.
func GenerateWindow(w WindowType, length int, beta float64) ([]float64, error) {
	if length < 1 {
		return nil, fmt.Errorf("window length must be > 0: %d", length)
	}
	switch w {
	case WindowHamming:
		return symmetricWindow(length, window.Hamming), nil
	case WindowHann:
		return symmetricWindow(length, window.Hann), nil
	case WindowBlackmanHarris:
		return symmetricWindow(length, window.BlackmanHarris), nil
	case WindowKaiser:
		if beta < 0 {
			return nil, fmt.Errorf("kaiser beta must be >= 0: %f", beta)
		}
		return KaiserWindow(length, beta), nil
	default:
		return nil, fmt.Errorf("unknown window function: %d", int(w))
	}
}

// symmetricWindow applies one of gonum's symmetric (N-1 denominator)
// windows to a sequence of ones.
func symmetricWindow(length int, apply func([]float64) []float64) []float64 {
	seq := make([]float64, length)
	for i := range seq {
		seq[i] = 1
	}
	if length == 1 {
		return seq
	}
	return apply(seq)
}

// KaiserWindow generates a Kaiser window of the specified length and β parameter.
//
// The Kaiser window provides control over the trade-off between
// main lobe width and sidelobe level in frequency domain:
//
//	w[n] = I₀(β · sqrt(1 - ((n - α)/α)²)) / I₀(β),  α = (N-1)/2
//
// The window peaks at 1.0 in the middle and is symmetric.
func KaiserWindow(length int, beta float64) []float64 {
	if length < 1 {
		return []float64{}
	}

	coeffs := make([]float64, length)
	if length == 1 {
		coeffs[0] = 1
		return coeffs
	}

	alpha := float64(length-1) / windowNormalizationFactor
	i0Beta := mathutil.BesselI0(beta)

	for n := range length {
		x := (float64(n) - alpha) / alpha
		// clamp rounding noise at the end points
		arg := beta * math.Sqrt(math.Max(0, 1.0-x*x))
		coeffs[n] = mathutil.BesselI0(arg) / i0Beta
	}

	return coeffs
}
