package policy

import (
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/rlagents/rlerr"
)

// Type represents a type of Policy
type Type string

const (
	EGreedyType   Type = "EGreedy"
	EDecreaseType Type = "EDecrease"
	BoltzmannType Type = "Boltzmann"
)

// Config is a JSON serializable description of a Policy. Only the
// fields relevant to the Type are used.
type Config struct {
	Type        Type
	Epsilon     float64 `json:",omitempty"`
	MinEpsilon  float64 `json:",omitempty"`
	Decay       float64 `json:",omitempty"`
	Temperature float64 `json:",omitempty"`
}

// Default returns the Config of the policy used when none is given:
// ε-greedy with ε = 0.1
func Default() Config {
	return Config{Type: EGreedyType, Epsilon: 0.1}
}

// Create returns a new Policy described by the Config. Each call
// returns a new instance, so that policies are never shared between
// agents.
func (c Config) Create(src rand.Source) (Policy, error) {
	switch c.Type {
	case EGreedyType:
		p, err := NewEGreedy(c.Epsilon, src)
		if err != nil {
			return nil, err
		}
		return p, nil

	case EDecreaseType:
		p, err := NewEDecrease(c.Epsilon, c.MinEpsilon, c.Decay, src)
		if err != nil {
			return nil, err
		}
		return p, nil

	case BoltzmannType:
		p, err := NewBoltzmann(c.Temperature, src)
		if err != nil {
			return nil, err
		}
		return p, nil
	}

	return nil, rlerr.InvalidConfig("create", "unknown policy type %q",
		c.Type)
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	_, err := c.Create(rand.NewSource(0))
	return err
}
