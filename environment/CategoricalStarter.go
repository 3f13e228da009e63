package environment

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/rlagents/rlerr"
)

// CategoricalStarter returns starting states sampled from a categorical
// distribution over a fixed set of states
type CategoricalStarter struct {
	states []int
	rand   distuv.Categorical
}

// NewCategoricalStarter returns a new CategoricalStarter, sampling
// states[i] with probability proportional to weights[i]. If weights is
// nil, states are sampled uniformly.
func NewCategoricalStarter(states []int, weights []float64,
	seed uint64) (*CategoricalStarter, error) {
	if len(states) == 0 {
		return nil, rlerr.InvalidConfig("newCategoricalStarter",
			"no starting states")
	}

	if weights == nil {
		weights = make([]float64, len(states))
		for i := range weights {
			weights[i] = 1.0 / float64(len(weights))
		}
	} else if len(weights) != len(states) {
		return nil, rlerr.InvalidConfig("newCategoricalStarter",
			"%d weights for %d states", len(weights), len(states))
	}

	var total float64
	for _, w := range weights {
		if !(w >= 0) {
			return nil, rlerr.InvalidConfig("newCategoricalStarter",
				"negative weight %v", w)
		}
		total += w
	}
	if total <= 0 {
		return nil, rlerr.InvalidConfig("newCategoricalStarter",
			"weights sum to %v", total)
	}

	source := rand.NewSource(seed)
	s := make([]int, len(states))
	copy(s, states)

	return &CategoricalStarter{s, distuv.NewCategorical(weights, source)}, nil
}

// Start returns a starting state
func (c *CategoricalStarter) Start() int {
	return c.states[int(c.rand.Rand())]
}

// SingleStart always starts episodes in the same state
type SingleStart int

// Start returns the starting state
func (s SingleStart) Start() int {
	return int(s)
}
