// Package fracdelay provides fractional-delay filters in pure Go.
//
// A fractional-delay filter shifts a sampled signal by a non-integer number
// of samples, reconstructing the values between samples by interpolation.
// Two kernels are provided:
//
//   - [LinearInterpDelay]: two taps, y[n] = (1-f)·x[n-n0] + f·x[n-n0-1].
//     Cheap and causal, but it attenuates high frequencies and its phase
//     delay is only exact at DC.
//   - [SincInterpDelay]: a windowed sinc of 2M+1 taps (Hamming window and
//     M = min(round(D), 32) by default). Flat magnitude and near-constant
//     phase delay over most of the band.
//
// # Quick Start
//
//	out, err := fracdelay.DelaySinc(samples, 3.3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For repeated use, construct a filter once and share it. Filters are
// immutable, so Process may be called from several goroutines:
//
//	f, err := fracdelay.NewSincInterpDelay(10.7, &fracdelay.SincConfig{
//	    HalfWidth: 16,
//	    Window:    fracdelay.WindowBlackmanHarris,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := f.Process(samples)
//
// # Input and Output
//
// Process accepts []float32, []float64, []int32, []int64, []int, mono
// go-audio buffers and []any of numeric values (see [Coerce]). It always
// returns a new []float32 of the same length as the input; the input is
// never modified. Samples before the start of the buffer are zero, so the
// first samples of the output are zero for delays of one sample or more.
// Each call is independent: no state is carried between calls.
//
// Unsupported input shapes return [ErrType]. Non-numeric elements, negative
// or non-finite delays and invalid configurations return [ErrValue].
//
// # Performance
//
// Kernels are applied with SIMD dot products from github.com/tphakala/simd.
// Kernels of 400 taps or more switch to FFT overlap-save convolution
// (gonum.org/v1/gonum/dsp/fourier).
package fracdelay
