package mab

import (
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/rlagents/rlerr"
)

// EpsilonGreedy selects a uniform random arm with probability ε and the
// arm with the best mean reward otherwise.
type EpsilonGreedy struct {
	estimates
	epsilon float64
	rng     *rand.Rand
}

// NewEpsilonGreedy returns a new EpsilonGreedy agent. Epsilon must be in
// the open interval (0, 1).
func NewEpsilonGreedy(arms int, e float64,
	src rand.Source) (*EpsilonGreedy, error) {
	if err := validateArms("newEpsilonGreedy", arms); err != nil {
		return nil, err
	}
	if err := validateEpsilon("newEpsilonGreedy", e); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, rlerr.InvalidConfig("newEpsilonGreedy", "nil source")
	}

	return &EpsilonGreedy{
		estimates: newEstimates(arms),
		epsilon:   e,
		rng:       rand.New(src),
	}, nil
}

// Epsilon returns the probability of pulling a random arm
func (e *EpsilonGreedy) Epsilon() float64 {
	return e.epsilon
}

// Predict returns the next arm to pull
func (e *EpsilonGreedy) Predict() int {
	if e.rng.Float64() < e.epsilon {
		return e.rng.Intn(e.Arms())
	}
	return e.greedy()
}

// Learn records the reward received from pulling arm
func (e *EpsilonGreedy) Learn(arm int, reward float64) {
	e.learn(arm, reward)
}
