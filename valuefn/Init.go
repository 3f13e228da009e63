package valuefn

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/rlagents/rlerr"
)

// InitMethod determines how entries of a Store are filled before they
// are first written
type InitMethod string

const (
	Zeros  InitMethod = "zeros"
	Ones   InitMethod = "ones"
	Random InitMethod = "random" // independent samples from U[0, 1)
)

// constant implements the distuv.Rander interface, always returning
// the same value
type constant float64

// Rand returns the constant value
func (c constant) Rand() float64 {
	return float64(c)
}

// newRander returns the distuv.Rander which draws initial values for
// the argument InitMethod. An unknown method results in an error
// wrapping rlerr.ErrInvalidConfig.
func newRander(method InitMethod, src rand.Source) (distuv.Rander, error) {
	switch method {
	case Zeros:
		return constant(0.0), nil

	case Ones:
		return constant(1.0), nil

	case Random:
		if src == nil {
			return nil, rlerr.InvalidConfig("newRander",
				"random initialization requires a source")
		}
		return distuv.Uniform{Min: 0, Max: 1, Src: src}, nil
	}

	return nil, rlerr.InvalidConfig("newRander",
		"unknown init method %q, options: %q, %q, or %q", method, Zeros,
		Ones, Random)
}

// fill fills values with samples from rand
func fill(values []float64, rand distuv.Rander) {
	for i := range values {
		values[i] = rand.Rand()
	}
}
