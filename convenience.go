package fracdelay

// DelayLinear delays signal by delay samples using linear interpolation.
// It is shorthand for NewLinearInterpDelay followed by Process.
func DelayLinear(signal any, delay float64) ([]float32, error) {
	f, err := NewLinearInterpDelay(delay)
	if err != nil {
		return nil, err
	}
	return f.Process(signal)
}

// DelaySinc delays signal by delay samples using the default windowed-sinc
// kernel (Hamming window, half width min(round(delay), 32)).
func DelaySinc(signal any, delay float64) ([]float32, error) {
	f, err := NewSincInterpDelay(delay, nil)
	if err != nil {
		return nil, err
	}
	return f.Process(signal)
}

// DelayFloat32 delays a float32 buffer with the filter described by config.
func DelayFloat32(input []float32, config *Config) ([]float32, error) {
	f, err := New(config)
	if err != nil {
		return nil, err
	}
	return f.ProcessFloat32(input), nil
}
