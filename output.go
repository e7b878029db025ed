package fracdelay

// narrow converts the float64 working buffer to the float32 output format.
func narrow(src []float64) []float32 {
	dst := make([]float32, len(src))
	for i, v := range src {
		dst[i] = float32(v)
	}
	return dst
}
