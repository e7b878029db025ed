package fracdelay

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProcessConcurrent verifies that one filter shared between goroutines
// returns the same output as a sequential call.
func TestProcessConcurrent(t *testing.T) {
	const (
		workers    = 8
		iterations = 20
		numSamples = 4800
		freq       = 0.03
	)

	input := make([]float64, numSamples)
	for i := range input {
		input[i] = math.Sin(2 * math.Pi * freq * float64(i))
	}

	filters := map[string]DelayFilter{}
	linear, err := NewLinearInterpDelay(3.3)
	require.NoError(t, err)
	filters["linear"] = linear

	sinc, err := NewSincInterpDelay(10.7, nil)
	require.NoError(t, err)
	filters["sinc"] = sinc

	// Long enough for the FFT path
	long, err := NewSincInterpDelay(600.25, &SincConfig{HalfWidth: 300})
	require.NoError(t, err)
	filters["sinc_fft"] = long

	for name, f := range filters {
		t.Run(name, func(t *testing.T) {
			want, err := f.Process(input)
			require.NoError(t, err)

			results := make([][][]float32, workers)
			errs := make([]error, workers)

			var wg sync.WaitGroup
			for w := range workers {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for range iterations {
						out, err := f.Process(input)
						if err != nil {
							errs[w] = err
							return
						}
						results[w] = append(results[w], out)
					}
				}()
			}
			wg.Wait()

			for w := range workers {
				require.NoError(t, errs[w], "worker %d", w)
				require.Len(t, results[w], iterations)
				for _, got := range results[w] {
					// bit-exact
					assert.Equal(t, want, got, "worker %d", w)
				}
			}
		})
	}
}

// TestProcessConcurrentInputs checks that concurrent calls on different
// inputs do not interfere.
func TestProcessConcurrentInputs(t *testing.T) {
	const channels = 4

	f, err := NewSincInterpDelay(5.5, nil)
	require.NoError(t, err)

	inputs := make([][]float32, channels)
	for ch := range channels {
		inputs[ch] = make([]float32, 256)
		for i := range inputs[ch] {
			inputs[ch][i] = float32(math.Sin(2*math.Pi*0.02*float64(i) + float64(ch)*math.Pi/4))
		}
	}

	outputs := make([][]float32, channels)
	var wg sync.WaitGroup
	for ch := range channels {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outputs[ch] = f.ProcessFloat32(inputs[ch])
		}()
	}
	wg.Wait()

	for ch := range channels {
		assert.Equal(t, f.ProcessFloat32(inputs[ch]), outputs[ch], "channel %d", ch)
	}
}
