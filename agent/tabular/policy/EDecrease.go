package policy

import (
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/rlagents/rlerr"
	"github.com/samuelfneumann/rlagents/utils/floatutils"
)

// EDecrease implements an ε-greedy policy where ε decays
// multiplicatively on each call to Update, and never drops below a
// minimum value.
type EDecrease struct {
	*EGreedy
	minEpsilon float64
	decay      float64
}

// NewEDecrease returns a new EDecrease policy starting with ε = e.
// After each Update, ε becomes max(minE, ε*decay).
func NewEDecrease(e, minE, decay float64, src rand.Source) (*EDecrease,
	error) {
	eGreedy, err := NewEGreedy(e, src)
	if err != nil {
		return nil, err
	}

	if !(minE >= 0 && minE <= e) {
		return nil, rlerr.InvalidConfig("newEDecrease", "minimum epsilon "+
			"must be in [0, %v] (minimum epsilon = %v)", e, minE)
	}
	if !(decay > 0 && decay <= 1) {
		return nil, rlerr.InvalidConfig("newEDecrease", "decay must be in "+
			"(0, 1] (decay = %v)", decay)
	}

	return &EDecrease{
		EGreedy:    eGreedy,
		minEpsilon: minE,
		decay:      decay,
	}, nil
}

// MinEpsilon returns the floor of ε
func (e *EDecrease) MinEpsilon() float64 {
	return e.minEpsilon
}

// Update decays ε, clamping it to the configured floor
func (e *EDecrease) Update() {
	e.epsilon = floatutils.Clip(e.epsilon*e.decay, e.minEpsilon, e.epsilon)
}
