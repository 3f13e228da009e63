package floatutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
)

func TestArgmaxFirstOccurrence(t *testing.T) {
	assert.Equal(t, 1, Argmax([]float64{0, 3, 1, 3}))
	assert.Equal(t, 0, Argmax([]float64{2, 2, 2}))
	assert.Equal(t, 2, Argmax([]float64{-5, -4, -1}))
}

func TestSoftmax(t *testing.T) {
	tests := []struct {
		name        string
		values      []float64
		temperature float64
	}{
		{"small", []float64{1, 5, 2, 1.5, 3}, 1},
		{"hot", []float64{1, 5, 2, 1.5, 3}, 10},
		{"cold", []float64{1, 5, 2, 1.5, 3}, 0.01},
		{"large", []float64{1000, 1001, 999}, 0.5},
		{"negative", []float64{-300, -10, -2}, 2},
		{"single", []float64{4}, 3},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			probs := Softmax(nil, test.values, test.temperature)
			assert.InDelta(t, 1.0, floats.Sum(probs), 1e-9)
			assert.Equal(t, Argmax(test.values), Argmax(probs))
			for _, p := range probs {
				assert.GreaterOrEqual(t, p, 0.0)
			}
		})
	}
}

func TestSoftmaxUniformForEqualValues(t *testing.T) {
	probs := Softmax(nil, []float64{2, 2, 2, 2}, 0.3)
	for _, p := range probs {
		assert.InDelta(t, 0.25, p, 1e-12)
	}
}

func TestClip(t *testing.T) {
	assert.Equal(t, 0.1, Clip(0.05, 0.1, 1))
	assert.Equal(t, 1.0, Clip(3, 0.1, 1))
	assert.Equal(t, 0.5, Clip(0.5, 0.1, 1))
}
