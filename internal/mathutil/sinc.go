package mathutil

import "math"

// Sinc returns the normalized sinc function sin(πx)/(πx), with Sinc(0) = 1.
//
// Near zero the quotient loses precision, so a second-order Taylor
// expansion 1 - (πx)²/6 is used instead.
func Sinc(x float64) float64 {
	px := math.Pi * x
	if math.Abs(x) < sincTaylorThreshold {
		return 1.0 - px*px/6.0
	}
	return math.Sin(px) / px
}
