package mab

import (
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/rlagents/rlerr"
)

// DecayEpsilon is an ε-greedy agent where ε is multiplied by a decay
// factor after every prediction. Unlike the tabular EDecrease policy, ε
// has no floor and decays towards zero.
type DecayEpsilon struct {
	estimates
	epsilon float64
	decay   float64
	rng     *rand.Rand
}

// NewDecayEpsilon returns a new DecayEpsilon agent with initial ε = e
func NewDecayEpsilon(arms int, e, decay float64,
	src rand.Source) (*DecayEpsilon, error) {
	if err := validateArms("newDecayEpsilon", arms); err != nil {
		return nil, err
	}
	if err := validateEpsilon("newDecayEpsilon", e); err != nil {
		return nil, err
	}
	if err := validateUnit("newDecayEpsilon", "decay", decay); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, rlerr.InvalidConfig("newDecayEpsilon", "nil source")
	}

	return &DecayEpsilon{
		estimates: newEstimates(arms),
		epsilon:   e,
		decay:     decay,
		rng:       rand.New(src),
	}, nil
}

// Epsilon returns the current probability of pulling a random arm
func (d *DecayEpsilon) Epsilon() float64 {
	return d.epsilon
}

// Predict returns the next arm to pull and decays ε
func (d *DecayEpsilon) Predict() int {
	var arm int
	if d.rng.Float64() < d.epsilon {
		arm = d.rng.Intn(d.Arms())
	} else {
		arm = d.greedy()
	}

	d.epsilon *= d.decay
	return arm
}

// Learn records the reward received from pulling arm
func (d *DecayEpsilon) Learn(arm int, reward float64) {
	d.learn(arm, reward)
}
