package fracdelay

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-fracdelay/internal/filter"
)

// Response is the frequency response of a delay filter.
type Response struct {
	// Delay is the filter's requested delay in samples.
	Delay float64

	// Frequencies in cycles per sample, from 0 up to but excluding 0.5.
	Frequencies []float64

	// Magnitude is the linear gain at each frequency.
	Magnitude []float64

	// MagnitudeDB is Magnitude in decibels.
	MagnitudeDB []float64

	// PhaseDelay is the delay in samples seen by a tone at each frequency.
	// An ideal fractional delay has PhaseDelay == Delay everywhere.
	PhaseDelay []float64
}

// FrequencyResponse evaluates the filter's frequency response at numPoints
// evenly spaced frequencies. numPoints <= 0 selects DefaultResponsePoints.
func FrequencyResponse(f DelayFilter, numPoints int) Response {
	if numPoints <= 0 {
		numPoints = DefaultResponsePoints
	}

	r := filter.ComputeResponse(filter.Kernel{Offset: f.Offset(), Taps: f.Taps()}, numPoints)

	db := make([]float64, len(r.Magnitude))
	for i, m := range r.Magnitude {
		db[i] = filter.MagnitudeDB(m)
	}

	return Response{
		Delay:       f.Delay(),
		Frequencies: r.Frequencies,
		Magnitude:   r.Magnitude,
		MagnitudeDB: db,
		PhaseDelay:  r.PhaseDelay,
	}
}

// band returns the number of leading frequencies at or below maxFreq.
func (r Response) band(maxFreq float64) int {
	n := 0
	for n < len(r.Frequencies) && r.Frequencies[n] <= maxFreq {
		n++
	}
	return n
}

// MagnitudeError returns the largest |Magnitude - 1| at frequencies up to
// maxFreq cycles per sample.
func (r Response) MagnitudeError(maxFreq float64) float64 {
	return maxDeviation(r.Magnitude[:r.band(maxFreq)], 1)
}

// DelayError returns the largest |PhaseDelay - Delay| at frequencies up to
// maxFreq cycles per sample.
func (r Response) DelayError(maxFreq float64) float64 {
	return maxDeviation(r.PhaseDelay[:r.band(maxFreq)], r.Delay)
}

func maxDeviation(values []float64, target float64) float64 {
	if len(values) == 0 {
		return 0
	}
	ideal := make([]float64, len(values))
	floats.AddConst(target, ideal)
	return floats.Distance(values, ideal, math.Inf(1))
}
