package filter

import (
	"github.com/tphakala/go-fracdelay/internal/simdops"
)

// Kernel is a causal FIR filter stored sparsely: Offset leading zero taps
// followed by Taps. The equivalent dense coefficient vector b satisfies
// b[Offset+j] = Taps[j], and the filter output is
//
//	y[n] = Σ_j Taps[j] · x[n - Offset - j]
//
// Storing the integer part of a delay as Offset keeps long delays cheap.
type Kernel struct {
	Offset int
	Taps   []float64
}

// Len returns the length of the dense coefficient vector.
func (k Kernel) Len() int {
	return k.Offset + len(k.Taps)
}

// Dense expands the kernel into its full coefficient vector.
func (k Kernel) Dense() []float64 {
	b := make([]float64, k.Len())
	copy(b[k.Offset:], k.Taps)
	return b
}

// Apply filters x with the kernel and returns a newly allocated output of
// the same length. Samples before the start of x are taken as zero, so the
// first Offset outputs are always zero. x is never modified.
//
// Kernels shorter than minKernelForFFT taps use direct SIMD dot products,
// longer ones use overlap-save FFT convolution.
func (k Kernel) Apply(x []float64) []float64 {
	n := len(x)
	y := make([]float64, n)
	numTaps := len(k.Taps)
	if n == 0 || numTaps == 0 || k.Offset >= n {
		return y
	}

	// Only y[Offset:] can be non-zero and it depends on x[:valid] only.
	valid := n - k.Offset

	// padded[i] = x[i - (numTaps-1)], zero for negative indices
	padded := make([]float64, valid+numTaps-1)
	copy(padded[numTaps-1:], x[:valid])

	reversed := make([]float64, numTaps)
	for i, h := range k.Taps {
		reversed[numTaps-1-i] = h
	}

	dst := y[k.Offset:]
	if numTaps >= minKernelForFFT {
		NewFFTConvolver(reversed).Convolve(dst, padded)
		return y
	}

	dot := simdops.For[float64]().DotProductUnsafe
	for m := range valid {
		dst[m] = dot(padded[m:m+numTaps], reversed)
	}
	return y
}
