package policy

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/rlagents/rlerr"
	"github.com/samuelfneumann/rlagents/utils/floatutils"
)

// Boltzmann implements a softmax policy:
//
//	π(a) = exp(Q(a) / T) / Σ_b exp(Q(b) / T)
//
// where T is the temperature.
type Boltzmann struct {
	temperature float64
	src         rand.Source
}

// NewBoltzmann returns a new Boltzmann policy. The temperature must be
// strictly positive.
func NewBoltzmann(temperature float64, src rand.Source) (*Boltzmann,
	error) {
	if !(temperature > 0) {
		return nil, rlerr.InvalidConfig("newBoltzmann", "temperature must "+
			"be positive (temperature = %v)", temperature)
	}
	if src == nil {
		return nil, rlerr.InvalidConfig("newBoltzmann", "nil source")
	}

	return &Boltzmann{temperature: temperature, src: src}, nil
}

// Temperature returns the temperature of the policy
func (b *Boltzmann) Temperature() float64 {
	return b.temperature
}

// Choose samples an action from the softmax distribution
func (b *Boltzmann) Choose(values []float64) int {
	dist := distuv.NewCategorical(b.Probabilities(values), b.src)
	return int(dist.Rand())
}

// Probabilities returns the softmax distribution over actions
func (b *Boltzmann) Probabilities(values []float64) []float64 {
	return floatutils.Softmax(nil, values, b.temperature)
}

// Update does nothing, the temperature is constant
func (b *Boltzmann) Update() {}
