package filter

import (
	"math"
)

const (
	defaultResponsePoints = 512

	minMagnitude = 1e-10 // Avoid log(0)
	dbMultiplier = 20.0  // 20*log10 for magnitude
)

// Response holds the frequency response of a delay kernel.
type Response struct {
	// Frequencies at which the response was evaluated (normalized, 0 to 0.5)
	Frequencies []float64

	// Magnitude response at each frequency (linear scale)
	Magnitude []float64

	// PhaseDelay is -φ(ω)/ω in samples. For an ideal fractional delay it
	// equals the delay at every frequency.
	PhaseDelay []float64
}

// ComputeResponse evaluates the DTFT of the kernel at numPoints frequencies
// from 0 up to (but excluding) Nyquist.
//
// The phase is measured relative to the centre of the tap block so it stays
// inside (-π, π] and never needs unwrapping, however large the Offset:
//
//	H(ω) = e^{-jω(Offset+c)} · Σ_j h[j]·e^{-jω(j-c)},  c = (len(h)-1)/2
func ComputeResponse(k Kernel, numPoints int) Response {
	if numPoints <= 0 {
		numPoints = defaultResponsePoints
	}

	response := Response{
		Frequencies: make([]float64, numPoints),
		Magnitude:   make([]float64, numPoints),
		PhaseDelay:  make([]float64, numPoints),
	}

	center := float64(len(k.Taps)-1) / windowNormalizationFactor
	base := float64(k.Offset) + center

	for i := range numPoints {
		freq := float64(i) / float64(windowNormalizationFactor*float64(numPoints))
		response.Frequencies[i] = freq
		omega := windowNormalizationFactor * math.Pi * freq

		var realPart, imagPart float64
		for j, h := range k.Taps {
			angle := omega * (float64(j) - center)
			realPart += h * math.Cos(angle)
			imagPart -= h * math.Sin(angle)
		}

		response.Magnitude[i] = math.Hypot(realPart, imagPart)
		if i == 0 {
			response.PhaseDelay[i] = dcDelay(k)
			continue
		}
		response.PhaseDelay[i] = base - math.Atan2(imagPart, realPart)/omega
	}

	return response
}

// dcDelay is the ω→0 limit of the phase delay: the tap centroid.
func dcDelay(k Kernel) float64 {
	var sum, moment float64
	for j, h := range k.Taps {
		sum += h
		moment += float64(j) * h
	}
	if math.Abs(sum) < minMagnitude {
		return float64(k.Offset)
	}
	return float64(k.Offset) + moment/sum
}

// MagnitudeDB converts linear magnitude to decibels.
func MagnitudeDB(magnitude float64) float64 {
	if magnitude < minMagnitude {
		magnitude = minMagnitude
	}
	return dbMultiplier * math.Log10(magnitude)
}
