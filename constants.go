package fracdelay

import "github.com/tphakala/go-fracdelay/internal/filter"

// Delay limits
const (
	// DelayEpsilon is the smallest delay, in samples, that is not treated as zero.
	DelayEpsilon = filter.DelayEpsilon

	// MaxDelay is the largest accepted delay in samples.
	MaxDelay = 1 << 30
)

// Sinc kernel limits
const (
	// DefaultMaxHalfWidth caps the automatically chosen sinc half width.
	DefaultMaxHalfWidth = filter.DefaultMaxSincHalfWidth

	// MaxHalfWidth is the largest half width a caller may request.
	MaxHalfWidth = filter.MaxSincHalfWidth
)

// Algorithm names reported by GetInfo
const (
	algorithmLinear  = "linear"
	algorithmSinc    = "windowed-sinc"
	algorithmUnknown = "unknown"
)

// DefaultResponsePoints is the number of frequencies FrequencyResponse
// evaluates when numPoints is not positive.
const DefaultResponsePoints = 512
