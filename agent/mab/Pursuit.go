package mab

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/rlagents/rlerr"
	"github.com/samuelfneumann/rlagents/utils/floatutils"
)

// Pursuit maintains a probability of selecting each arm, initially
// uniform. After each pull, the probability of the arm with the best
// mean moves towards 1 and all others move towards 0 at rate β.
type Pursuit struct {
	estimates
	beta  float64
	probs []float64
	src   rand.Source
}

// NewPursuit returns a new Pursuit agent with learning rate β in (0, 1]
func NewPursuit(arms int, beta float64, src rand.Source) (*Pursuit,
	error) {
	if err := validateArms("newPursuit", arms); err != nil {
		return nil, err
	}
	if err := validateUnit("newPursuit", "beta", beta); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, rlerr.InvalidConfig("newPursuit", "nil source")
	}

	return &Pursuit{
		estimates: newEstimates(arms),
		beta:      beta,
		probs:     floatutils.Uniform(arms),
		src:       src,
	}, nil
}

// Probabilities returns a copy of the selection probability of each arm
func (p *Pursuit) Probabilities() []float64 {
	probs := make([]float64, len(p.probs))
	copy(probs, p.probs)
	return probs
}

// Predict samples the next arm to pull
func (p *Pursuit) Predict() int {
	dist := distuv.NewCategorical(p.probs, p.src)
	return int(dist.Rand())
}

// Learn records the reward received from pulling arm and pursues the
// arm with the best mean
func (p *Pursuit) Learn(arm int, reward float64) {
	p.learn(arm, reward)

	best := p.greedy()
	pBest := p.probs[best]
	floats.Scale(1-p.beta, p.probs)
	p.probs[best] = pBest + p.beta*(1-pBest)
}
