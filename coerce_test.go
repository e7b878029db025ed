package fracdelay

import (
	"testing"

	"github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce_Supported(t *testing.T) {
	want := []float64{1, -2, 3}

	tests := []struct {
		name   string
		signal any
		want   []float64
	}{
		{"float64", []float64{1, -2, 3}, want},
		{"float32", []float32{1, -2, 3}, want},
		{"int32", []int32{1, -2, 3}, want},
		{"int64", []int64{1, -2, 3}, want},
		{"int", []int{1, -2, 3}, want},
		{"any_ints", []any{1, -2, 3}, want},
		{"any_mixed", []any{int8(1), int16(-2), uint32(3)}, want},
		{"any_floats", []any{float32(1.5), 2.25, uint64(7)}, []float64{1.5, 2.25, 7}},
		{"float_buffer", &audio.FloatBuffer{Data: []float64{1, -2, 3}, Format: &audio.Format{NumChannels: 1, SampleRate: 48000}}, want},
		{"float32_buffer", &audio.Float32Buffer{Data: []float32{1, -2, 3}, Format: &audio.Format{NumChannels: 1}}, want},
		{"int_buffer", &audio.IntBuffer{Data: []int{1, -2, 3}, Format: &audio.Format{NumChannels: 1}, SourceBitDepth: 16}, want},
		{"buffer_without_format", &audio.FloatBuffer{Data: []float64{1, -2, 3}}, want},
		{"empty_float64", []float64{}, []float64{}},
		{"empty_any", []any{}, []float64{}},
		{"empty_strings", []string{}, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Coerce(tt.signal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerce_TypeErrors(t *testing.T) {
	tests := []struct {
		name   string
		signal any
	}{
		{"nil", nil},
		{"int_scalar", 42},
		{"float_scalar", 3.14},
		{"string", "abc"},
		{"map", map[int]float64{0: 1}},
		{"struct", struct{ X float64 }{1}},
		{"nested", [][]float64{{1, 2}, {3, 4}}},
		{"unsupported_slice", []bool{true}},
		{"nil_float_buffer", (*audio.FloatBuffer)(nil)},
		{"nil_int_buffer", (*audio.IntBuffer)(nil)},
		{"stereo_buffer", &audio.FloatBuffer{Data: []float64{1, 2}, Format: &audio.Format{NumChannels: 2}}},
		{"stereo_int_buffer", &audio.IntBuffer{Data: []int{1, 2}, Format: &audio.Format{NumChannels: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Coerce(tt.signal)
			require.ErrorIs(t, err, ErrType)
			assert.NotErrorIs(t, err, ErrValue)
		})
	}
}

func TestCoerce_ValueErrors(t *testing.T) {
	tests := []struct {
		name   string
		signal any
		index  string
	}{
		{"string_first", []any{"a", 1, 2}, "index 0"},
		{"string_later", []any{1.0, 2.0, "x"}, "index 2"},
		{"nil_element", []any{1, nil}, "index 1"},
		{"bool_element", []any{true}, "index 0"},
		{"nested_slice", []any{[]float64{1}}, "index 0"},
		{"string_slice", []string{"a", "b", "c"}, "index 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Coerce(tt.signal)
			require.ErrorIs(t, err, ErrValue)
			assert.Contains(t, err.Error(), tt.index)
		})
	}
}

func TestCoerce_DoesNotAlias(t *testing.T) {
	input := []float64{1, 2, 3}
	got, err := Coerce(input)
	require.NoError(t, err)

	got[0] = 100
	assert.Equal(t, []float64{1, 2, 3}, input)

	buf := &audio.FloatBuffer{Data: []float64{4, 5}}
	got, err = Coerce(buf)
	require.NoError(t, err)

	got[1] = -1
	assert.Equal(t, []float64{4, 5}, buf.Data)
}
