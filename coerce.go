package fracdelay

import (
	"fmt"

	"github.com/go-audio/audio"
)

// Coerce converts a supported 1-D input into a newly allocated []float64.
//
// Accepted inputs:
//
//   - []float32, []float64, []int32, []int64, []int
//   - mono *audio.FloatBuffer, *audio.Float32Buffer and *audio.IntBuffer
//   - []any whose elements are Go integer or floating-point values
//
// Scalars, nil, multi-channel buffers and other types fail with ErrType. A
// []any holding a non-numeric element fails with ErrValue naming the
// element's index, as does a []string. Integer samples are converted by
// value without rescaling. The result never aliases signal.
func Coerce(signal any) ([]float64, error) {
	switch s := signal.(type) {
	case []float64:
		return widen(s), nil
	case []float32:
		return widen(s), nil
	case []int32:
		return widen(s), nil
	case []int64:
		return widen(s), nil
	case []int:
		return widen(s), nil
	case *audio.FloatBuffer:
		if s == nil {
			return nil, fmt.Errorf("%w: nil *audio.FloatBuffer", ErrType)
		}
		if err := checkMono(s.Format); err != nil {
			return nil, err
		}
		return widen(s.Data), nil
	case *audio.Float32Buffer:
		if s == nil {
			return nil, fmt.Errorf("%w: nil *audio.Float32Buffer", ErrType)
		}
		if err := checkMono(s.Format); err != nil {
			return nil, err
		}
		return widen(s.Data), nil
	case *audio.IntBuffer:
		if s == nil {
			return nil, fmt.Errorf("%w: nil *audio.IntBuffer", ErrType)
		}
		if err := checkMono(s.Format); err != nil {
			return nil, err
		}
		return widen(s.Data), nil
	case []any:
		return coerceSequence(s)
	case []string:
		if len(s) > 0 {
			return nil, fmt.Errorf("%w: non-numeric element at index 0: %q", ErrValue, s[0])
		}
		return []float64{}, nil
	case nil:
		return nil, fmt.Errorf("%w: nil signal", ErrType)
	default:
		return nil, fmt.Errorf("%w: %T", ErrType, signal)
	}
}

type sample interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

func widen[T sample](src []T) []float64 {
	dst := make([]float64, len(src))
	for i, v := range src {
		dst[i] = float64(v)
	}
	return dst
}

func checkMono(format *audio.Format) error {
	if format != nil && format.NumChannels > 1 {
		return fmt.Errorf("%w: %d-channel buffer, filters process one channel", ErrType, format.NumChannels)
	}
	return nil
}

func coerceSequence(seq []any) ([]float64, error) {
	dst := make([]float64, len(seq))
	for i, v := range seq {
		x, ok := numericValue(v)
		if !ok {
			return nil, fmt.Errorf("%w: non-numeric element at index %d: %T", ErrValue, i, v)
		}
		dst[i] = x
	}
	return dst, nil
}

func numericValue(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}
