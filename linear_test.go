package fracdelay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-fracdelay/internal/testutil"
)

const impulseLength = 10

// Every supported numeric input type must give the same float32 result.
func impulseInputs(n int) map[string]any {
	seq := make([]any, n)
	for i := range seq {
		seq[i] = 0
	}
	seq[0] = 1

	f64 := testutil.Impulse(n)
	f32 := make([]float32, n)
	i32 := make([]int32, n)
	i64 := make([]int64, n)
	ints := make([]int, n)
	f32[0], i32[0], i64[0], ints[0] = 1, 1, 1, 1

	return map[string]any{
		"float64": f64,
		"float32": f32,
		"int32":   i32,
		"int64":   i64,
		"int":     ints,
		"any":     seq,
	}
}

func TestLinearInterpDelay_Impulse(t *testing.T) {
	f, err := NewLinearInterpDelay(3.3)
	require.NoError(t, err)

	want := make([]float64, impulseLength)
	want[3] = 0.7
	want[4] = 0.3

	for name, input := range impulseInputs(impulseLength) {
		t.Run(name, func(t *testing.T) {
			out, err := f.Process(input)
			require.NoError(t, err)
			require.Len(t, out, impulseLength)
			testutil.AssertSamplesNear(t, want, out, testutil.Float32Tolerance)
		})
	}
}

func TestLinearInterpDelay_Causal(t *testing.T) {
	for _, delay := range []float64{0.5, 1.25, 3.3, 7.99, 12.0} {
		f, err := NewLinearInterpDelay(delay)
		require.NoError(t, err)

		input := make([]float64, 32)
		for i := range input {
			input[i] = 1
		}

		out, err := f.Process(input)
		require.NoError(t, err)

		d, _ := NewDelay(delay)
		for i := range d.Integer() {
			assert.Zero(t, out[i], "delay %v: sample %d precedes the delay", delay, i)
		}
		assert.NotZero(t, out[d.Integer()], "delay %v", delay)
	}
}

func TestLinearInterpDelay_IdentityAndInteger(t *testing.T) {
	input := []float64{0.5, -1, 0.25, 2, -0.75}

	for _, delay := range []float64{0, DelayEpsilon / 2} {
		f, err := NewLinearInterpDelay(delay)
		require.NoError(t, err)
		assert.Equal(t, input, f.ProcessFloat64(input), "delay %v", delay)
	}

	f, err := NewLinearInterpDelay(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0.5, -1, 0.25}, f.ProcessFloat64(input))
	assert.Equal(t, []float64{1}, f.Taps())
	assert.Equal(t, 2, f.Offset())
}

func TestLinearInterpDelay_Accessors(t *testing.T) {
	f, err := NewLinearInterpDelay(3.3)
	require.NoError(t, err)

	assert.Equal(t, 3.3, f.Delay())
	assert.Equal(t, 3, f.Offset())
	assert.InDeltaSlice(t, []float64{0.7, 0.3}, f.Taps(), 1e-12)
	assert.InDeltaSlice(t, []float64{0, 0, 0, 0.7, 0.3}, f.ImpulseResponse(), 1e-12)

	// Taps returns a copy
	taps := f.Taps()
	taps[0] = 42
	assert.InDelta(t, 0.7, f.Taps()[0], 1e-12)
}

func TestLinearInterpDelay_LengthPreserved(t *testing.T) {
	f, err := NewLinearInterpDelay(10.5)
	require.NoError(t, err)

	for _, n := range []int{0, 1, 5, 10, 11, 100} {
		out, err := f.Process(make([]int64, n))
		require.NoError(t, err)
		assert.Len(t, out, n)
	}

	// Input shorter than the delay yields silence
	out, err := f.Process([]float32{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0}, out)
}

func TestLinearInterpDelay_DoesNotModifyInput(t *testing.T) {
	f, err := NewLinearInterpDelay(1.5)
	require.NoError(t, err)

	input := []float32{1, 2, 3, 4}
	_, err = f.Process(input)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 4}, input)

	_ = f.ProcessFloat32(input)
	assert.Equal(t, []float32{1, 2, 3, 4}, input)
}

func TestLinearInterpDelay_Errors(t *testing.T) {
	_, err := NewLinearInterpDelay(-1)
	require.ErrorIs(t, err, ErrValue)

	f, err := NewLinearInterpDelay(3.3)
	require.NoError(t, err)

	_, err = f.Process(42)
	require.ErrorIs(t, err, ErrType)

	out, err := f.Process([]any{"a", "b", "c"})
	require.ErrorIs(t, err, ErrValue)
	assert.Nil(t, out)
}

func TestLinearInterpDelay_Float32MatchesProcess(t *testing.T) {
	f, err := NewLinearInterpDelay(2.75)
	require.NoError(t, err)

	input := make([]float32, 64)
	for i := range input {
		input[i] = float32(i%7) - 3
	}

	viaProcess, err := f.Process(input)
	require.NoError(t, err)
	assert.Equal(t, viaProcess, f.ProcessFloat32(input))
}
