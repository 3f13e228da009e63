package policy

import (
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/rlagents/rlerr"
)

// EGreedy implements an ε-greedy policy. With probability ε a uniform
// random action is chosen, otherwise the greedy action is chosen.
type EGreedy struct {
	epsilon float64
	rng     *rand.Rand
}

// NewEGreedy returns a new EGreedy policy, where e=epsilon is the
// probability with which a random action is selected. Epsilon must lie
// in the open interval (0, 1).
func NewEGreedy(e float64, src rand.Source) (*EGreedy, error) {
	if err := validateEpsilon("newEGreedy", e); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, rlerr.InvalidConfig("newEGreedy", "nil source")
	}

	return &EGreedy{epsilon: e, rng: rand.New(src)}, nil
}

// Epsilon returns the current probability of a random action
func (e *EGreedy) Epsilon() float64 {
	return e.epsilon
}

// Choose selects an action from the ε-greedy policy
func (e *EGreedy) Choose(values []float64) int {
	if e.rng.Float64() < e.epsilon {
		return e.rng.Intn(len(values))
	}
	return Greedy(values)
}

// Probabilities returns the ε-greedy distribution over actions: each
// action has probability ε/N and the greedy action additionally has
// probability 1-ε.
func (e *EGreedy) Probabilities(values []float64) []float64 {
	numActions := len(values)
	prob := e.epsilon / float64(numActions)

	actionProbabilities := make([]float64, numActions)
	for i := range actionProbabilities {
		actionProbabilities[i] = prob
	}
	actionProbabilities[Greedy(values)] += 1.0 - e.epsilon

	return actionProbabilities
}

// Update does nothing, ε is constant
func (e *EGreedy) Update() {}

func validateEpsilon(op string, e float64) error {
	if !(e > 0 && e < 1) {
		return rlerr.InvalidConfig(op, "epsilon must be in (0, 1) "+
			"(epsilon = %v)", e)
	}
	return nil
}
