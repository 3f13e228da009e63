package tabular

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/rlagents/agent"
	"github.com/samuelfneumann/rlagents/agent/tabular/policy"
	"github.com/samuelfneumann/rlagents/rlerr"
	"github.com/samuelfneumann/rlagents/valuefn"
)

func init() {
	// Register Config types so that they can be typed using
	// agent.TypedConfig to help with serialization/deserialization.
	agent.Register(agent.QLearningTabular, QLearningConfig{})
	agent.Register(agent.SarsaTabular, SarsaConfig{})
	agent.Register(agent.ExpectedSarsaTabular, ExpectedSarsaConfig{})
}

// Config represents the hyperparameters shared by all temporal-
// difference agents. A zero Policy uses policy.Default() and a zero
// Store uses a dense, zero-initialized value store.
type Config struct {
	LearningRate float64
	Discount     float64
	Policy       policy.Config
	Store        valuefn.Config
}

func (c Config) policyConfig() policy.Config {
	if c.Policy.Type == "" {
		return policy.Default()
	}
	return c.Policy
}

func (c Config) storeConfig() valuefn.Config {
	store := c.Store
	if store.Backing == "" {
		store.Backing = valuefn.DenseBacking
	}
	if store.Init == "" {
		store.Init = valuefn.Zeros
	}
	return store
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if !(c.LearningRate > 0 && c.LearningRate <= 1) {
		return rlerr.InvalidConfig("validate", "learning rate must be in "+
			"(0, 1] (learning rate = %v)", c.LearningRate)
	}
	if !(c.Discount >= 0 && c.Discount <= 1) {
		return rlerr.InvalidConfig("validate", "discount must be in "+
			"[0, 1] (discount = %v)", c.Discount)
	}
	if err := c.policyConfig().Validate(); err != nil {
		return err
	}
	return c.storeConfig().Validate()
}

// components creates a new value store and policy described by the
// Config
func (c Config) components(states, actions int,
	seed uint64) (valuefn.Store[int], policy.Policy, error) {
	store, err := c.storeConfig().Create(states, actions, seed)
	if err != nil {
		return nil, nil, fmt.Errorf("createAgent: could not create "+
			"value store: %w", err)
	}

	p, err := c.policyConfig().Create(rand.NewSource(policySeed(seed)))
	if err != nil {
		return nil, nil, fmt.Errorf("createAgent: could not create "+
			"policy: %w", err)
	}

	return store, p, nil
}

// policySeed returns the seed of the policy of an agent created with
// seed. It differs from the seed of the store.
func policySeed(seed uint64) uint64 {
	return seed + 1
}

// QLearningConfig represents a configuration for the QLearning agent
type QLearningConfig struct {
	Config
}

// CreateAgent creates the agent from the Config
func (c QLearningConfig) CreateAgent(states, actions int,
	seed uint64) (agent.Tabular[int], error) {
	store, p, err := c.components(states, actions, seed)
	if err != nil {
		return nil, err
	}

	q, err := NewQLearning(store, p, c.LearningRate, c.Discount)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// Type returns the type of the agent constructed by the Config
func (c QLearningConfig) Type() agent.Type {
	return agent.QLearningTabular
}

// SarsaConfig represents a configuration for the Sarsa agent
type SarsaConfig struct {
	Config
}

// CreateAgent creates the agent from the Config
func (c SarsaConfig) CreateAgent(states, actions int,
	seed uint64) (agent.Tabular[int], error) {
	store, p, err := c.components(states, actions, seed)
	if err != nil {
		return nil, err
	}

	s, err := NewSarsa(store, p, c.LearningRate, c.Discount)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Type returns the type of the agent constructed by the Config
func (c SarsaConfig) Type() agent.Type {
	return agent.SarsaTabular
}

// ExpectedSarsaConfig represents a configuration for the ExpectedSarsa
// agent
type ExpectedSarsaConfig struct {
	Config
}

// CreateAgent creates the agent from the Config
func (c ExpectedSarsaConfig) CreateAgent(states, actions int,
	seed uint64) (agent.Tabular[int], error) {
	store, p, err := c.components(states, actions, seed)
	if err != nil {
		return nil, err
	}

	e, err := NewExpectedSarsa(store, p, c.LearningRate, c.Discount)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Type returns the type of the agent constructed by the Config
func (c ExpectedSarsaConfig) Type() agent.Type {
	return agent.ExpectedSarsaTabular
}
