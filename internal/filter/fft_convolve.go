package filter

import (
	"github.com/tphakala/simd/c128"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
)

// FFT convolution constants.
const (
	// Minimum kernel length to use FFT convolution (below this, direct is faster).
	// The crossover for gonum's FFT sits around 400-500 taps.
	minKernelForFFT = 400

	// Default FFT block size (power of 2 for efficiency)
	defaultFFTBlockSize = 512

	// A real FFT of size N has N/2 + 1 unique complex coefficients.
	fftHermitianDivisor = 2
)

// FFTConvolver performs overlap-save FFT convolution for long kernels.
// This is O(N log N) vs O(N×M) for direct convolution.
//
// Overlap-save method:
//  1. Process input in blocks of fftSize samples (with kernelLen-1 overlap)
//  2. Each block produces blockSize = fftSize - kernelLen + 1 valid output samples
//  3. The first kernelLen-1 output samples of each block are discarded (circular wrap)
//
// An FFTConvolver owns working buffers and must not be shared between
// goroutines; Kernel.Apply builds one per call.
type FFTConvolver struct {
	fft       *fourier.FFT
	fftSize   int
	blockSize int

	kernelFFT []complex128
	kernelLen int
	scale     float64 // 1/fftSize, gonum's inverse transform is unnormalized

	signalBlock []float64
	signalFFT   []complex128
	productFFT  []complex128
	ifftResult  []float64
}

// NewFFTConvolver creates a convolver computing the "valid" correlation
//
//	dst[n] = Σ_k signal[n+k] · kernel[k]
//
// The kernel is transformed once and reused for every block.
func NewFFTConvolver(kernel []float64) *FFTConvolver {
	kernelLen := len(kernel)
	if kernelLen == 0 {
		return nil
	}

	fftSize := defaultFFTBlockSize
	for fftSize < 2*kernelLen {
		fftSize *= 2
	}

	fft := fourier.NewFFT(fftSize)

	// Circular convolution computes Σ x[(n-k) mod N]·h[k]; reversing the
	// kernel turns it into the correlation above.
	kernelPadded := make([]float64, fftSize)
	for i := range kernelLen {
		kernelPadded[i] = kernel[kernelLen-1-i]
	}
	kernelFFT := fft.Coefficients(nil, kernelPadded)

	fftLen := fftSize/fftHermitianDivisor + 1

	return &FFTConvolver{
		fft:         fft,
		fftSize:     fftSize,
		blockSize:   fftSize - kernelLen + 1,
		kernelFFT:   kernelFFT,
		kernelLen:   kernelLen,
		scale:       1.0 / float64(fftSize),
		signalBlock: make([]float64, fftSize),
		signalFFT:   make([]complex128, fftLen),
		productFFT:  make([]complex128, fftLen),
		ifftResult:  make([]float64, fftSize),
	}
}

// Convolve performs overlap-save convolution.
// dst must have length >= len(signal) - kernelLen + 1.
func (c *FFTConvolver) Convolve(dst, signal []float64) {
	signalLen := len(signal)
	outputLen := signalLen - c.kernelLen + 1
	if outputLen <= 0 || len(dst) < outputLen {
		return
	}

	outIdx := 0
	overlap := c.kernelLen - 1

	for outIdx < outputLen {
		for i := range c.signalBlock {
			c.signalBlock[i] = 0
		}

		copyLen := min(c.fftSize, signalLen-outIdx)
		if copyLen > 0 {
			copy(c.signalBlock, signal[outIdx:outIdx+copyLen])
		}

		c.signalFFT = c.fft.Coefficients(c.signalFFT, c.signalBlock)
		c128.Mul(c.productFFT, c.signalFFT, c.kernelFFT)
		c.ifftResult = c.fft.Sequence(c.ifftResult, c.productFFT)
		f64.Scale(c.ifftResult, c.ifftResult, c.scale)

		validSamples := min(c.blockSize, outputLen-outIdx)
		copy(dst[outIdx:outIdx+validSamples], c.ifftResult[overlap:overlap+validSamples])

		outIdx += validSamples
	}
}
