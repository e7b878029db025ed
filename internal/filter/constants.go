package filter

const (
	// DelayEpsilon is the time resolution of a delay in samples. Delays, or
	// fractional parts of delays, smaller than this are treated as zero.
	DelayEpsilon = 1e-6

	// DefaultMaxSincHalfWidth caps the automatically chosen sinc half width.
	DefaultMaxSincHalfWidth = 32

	// MaxSincHalfWidth is the largest half width accepted from a caller.
	MaxSincHalfWidth = 1024

	// DefaultKaiserAttenuation is the stopband attenuation (dB) used to derive
	// the Kaiser β when none is given.
	DefaultKaiserAttenuation = 80.0

	// Window normalization
	windowNormalizationFactor = 2.0

	// fractional offsets at or above this value round up to the next integer
	roundingThreshold = 0.5

	// full-band cutoff, normalized so that 1.0 is Nyquist
	fullBandCutoff = 1.0
)
