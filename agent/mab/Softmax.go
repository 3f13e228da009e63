package mab

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/rlagents/rlerr"
	"github.com/samuelfneumann/rlagents/utils/floatutils"
)

// Softmax samples arms from the Boltzmann distribution over mean
// rewards. Arms which have not been pulled have a mean of zero and take
// part in the distribution from the start.
type Softmax struct {
	estimates
	temperature float64
	probs       []float64
	src         rand.Source
}

// NewSoftmax returns a new Softmax agent. The temperature must be
// strictly positive.
func NewSoftmax(arms int, temperature float64,
	src rand.Source) (*Softmax, error) {
	if err := validateArms("newSoftmax", arms); err != nil {
		return nil, err
	}
	if !(temperature > 0) {
		return nil, rlerr.InvalidConfig("newSoftmax", "temperature must "+
			"be positive (temperature = %v)", temperature)
	}
	if src == nil {
		return nil, rlerr.InvalidConfig("newSoftmax", "nil source")
	}

	return &Softmax{
		estimates:   newEstimates(arms),
		temperature: temperature,
		probs:       floatutils.Uniform(arms),
		src:         src,
	}, nil
}

// Probabilities returns a copy of the distribution used by the most
// recent prediction
func (s *Softmax) Probabilities() []float64 {
	probs := make([]float64, len(s.probs))
	copy(probs, s.probs)
	return probs
}

// Predict samples the next arm to pull
func (s *Softmax) Predict() int {
	floatutils.Softmax(s.probs, s.means, s.temperature)
	dist := distuv.NewCategorical(s.probs, s.src)
	return int(dist.Rand())
}

// Learn records the reward received from pulling arm
func (s *Softmax) Learn(arm int, reward float64) {
	s.learn(arm, reward)
}
