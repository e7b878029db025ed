package filter

import (
	"fmt"
	"math"

	"github.com/tphakala/go-fracdelay/internal/mathutil"
)

// LinearInterpolation designs the two-tap linear interpolation kernel for
// a delay of integer + fraction samples:
//
//	y[n] = (1 - f)·x[n - n0] + f·x[n - n0 - 1]
//
// Linear interpolation attenuates high frequencies and its group delay is
// not constant, but it costs O(1) per sample. A fraction below
// DelayEpsilon reduces to a pure integer delay.
func LinearInterpolation(integer int, fraction float64) Kernel {
	if fraction < DelayEpsilon {
		return Kernel{Offset: integer, Taps: []float64{1}}
	}
	return Kernel{Offset: integer, Taps: []float64{1 - fraction, fraction}}
}

// SincParams configures the windowed-sinc kernel.
type SincParams struct {
	// HalfWidth is M, giving 2M+1 taps. Zero selects min(N, DefaultMaxSincHalfWidth)
	// where N is the delay rounded to the nearest integer.
	HalfWidth int

	// Window apodizes the truncated sinc.
	Window WindowType

	// KaiserBeta is the Kaiser β. Zero derives β from DefaultKaiserAttenuation.
	KaiserBeta float64

	// Cutoff is the passband edge relative to Nyquist, in (0, 1].
	// Zero selects 1 (full band).
	Cutoff float64
}

// Validate checks the sinc parameters.
func (p *SincParams) Validate() error {
	if p.HalfWidth < 0 {
		return fmt.Errorf("sinc half width must not be negative: %d", p.HalfWidth)
	}
	if p.HalfWidth > MaxSincHalfWidth {
		return fmt.Errorf("sinc half width too large: %d (maximum %d)", p.HalfWidth, MaxSincHalfWidth)
	}
	if _, ok := windowNames[p.Window]; !ok {
		return fmt.Errorf("unknown window function: %d", int(p.Window))
	}
	if p.KaiserBeta < 0 || math.IsNaN(p.KaiserBeta) {
		return fmt.Errorf("kaiser beta must be >= 0: %f", p.KaiserBeta)
	}
	if p.Cutoff < 0 || p.Cutoff > fullBandCutoff || math.IsNaN(p.Cutoff) {
		return fmt.Errorf("invalid cutoff: %f (must be in (0, 1])", p.Cutoff)
	}
	return nil
}

// SincDesign is a designed windowed-sinc kernel together with the values
// actually used to build it.
type SincDesign struct {
	Kernel Kernel

	// HalfWidth is the effective M after defaulting and clamping. It is zero
	// when the kernel degenerated to an integer delay or to linear interpolation.
	HalfWidth int

	// Clamped reports that a requested half width exceeded the delay and was reduced.
	Clamped bool

	// KaiserBeta is the β actually used, zero unless the Kaiser window was applied.
	KaiserBeta float64
}

// SincInterpolation designs a windowed-sinc fractional delay kernel.
//
// The delay is split around its nearest integer N with residual μ in
// [-0.5, 0.5]. The 2M+1 taps
//
//	h[k] = c·sinc(c·(k - μ)) · w[k + M],  k ∈ [-M, M]
//
// are placed so the kernel's centre sits at N, i.e. Offset = N - M. M is
// clamped to N, which keeps the kernel causal. When N is zero no causal
// sinc span exists and the linear kernel is returned instead.
func SincInterpolation(integer int, fraction float64, params SincParams) (SincDesign, error) {
	if err := params.Validate(); err != nil {
		return SincDesign{}, err
	}

	nearest := integer
	mu := fraction
	if fraction >= roundingThreshold {
		nearest++
		mu = fraction - 1
	}

	if math.Abs(mu) < DelayEpsilon {
		return SincDesign{Kernel: Kernel{Offset: nearest, Taps: []float64{1}}}, nil
	}

	halfWidth := params.HalfWidth
	clamped := false
	if halfWidth == 0 {
		halfWidth = min(nearest, DefaultMaxSincHalfWidth)
	} else if halfWidth > nearest {
		halfWidth = nearest
		clamped = true
	}

	if halfWidth == 0 {
		return SincDesign{Kernel: LinearInterpolation(integer, fraction), Clamped: clamped}, nil
	}

	beta := params.KaiserBeta
	if beta == 0 {
		beta = mathutil.KaiserBeta(DefaultKaiserAttenuation)
	}
	width := 2*halfWidth + 1
	window, err := GenerateWindow(params.Window, width, beta)
	if err != nil {
		return SincDesign{}, err
	}

	cutoff := params.Cutoff
	if cutoff == 0 {
		cutoff = fullBandCutoff
	}

	taps := make([]float64, width)
	for i := range width {
		x := float64(i-halfWidth) - mu
		taps[i] = cutoff * mathutil.Sinc(cutoff*x) * window[i]
	}

	design := SincDesign{
		Kernel:    Kernel{Offset: nearest - halfWidth, Taps: taps},
		HalfWidth: halfWidth,
		Clamped:   clamped,
	}
	if params.Window == WindowKaiser {
		design.KaiserBeta = beta
	}
	return design, nil
}
