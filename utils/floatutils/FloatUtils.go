// Package floatutils provides utilities for working with floats
package floatutils

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Clip clips a floating point to within a minimum and maximum value.
// If the floating point exceeds max, then the function returns the max
// If min exceeds the floating point, then the function returns the min
func Clip(value, min, max float64) float64 {
	clipped := math.Min(value, max)
	return math.Max(clipped, min)
}

// Argmax returns the index of the maximum value in a slice of float64.
// If multiple equal max values exist, only the first one is returned.
func Argmax(values []float64) int {
	return floats.MaxIdx(values)
}

// Softmax calculates the Boltzmann distribution of values at some
// temperature and stores the result in dst. If dst is nil, a new slice
// is allocated. The maximum value is subtracted before exponentiation
// so that large values do not overflow.
func Softmax(dst, values []float64, temperature float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(values))
	}
	if len(dst) != len(values) {
		panic("softmax: slice lengths do not match")
	}

	max := floats.Max(values)
	for i, v := range values {
		dst[i] = math.Exp((v - max) / temperature)
	}
	floats.Scale(1/floats.Sum(dst), dst)

	return dst
}

// Uniform returns a slice of n probabilities that are all 1/n
func Uniform(n int) []float64 {
	probs := make([]float64, n)
	for i := range probs {
		probs[i] = 1.0 / float64(n)
	}
	return probs
}
