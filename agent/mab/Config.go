package mab

import (
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/rlagents/agent"
)

func init() {
	// Register Config types so that they can be typed using
	// agent.TypedConfig to help with serialization/deserialization.
	agent.Register(agent.EpsilonGreedyMAB, EpsilonGreedyConfig{})
	agent.Register(agent.DecayEpsilonMAB, DecayEpsilonConfig{})
	agent.Register(agent.UCBMAB, UCBConfig{})
	agent.Register(agent.UCB1MAB, UCB1Config{})
	agent.Register(agent.UCB2MAB, UCB2Config{})
	agent.Register(agent.SoftmaxMAB, SoftmaxConfig{})
	agent.Register(agent.PursuitMAB, PursuitConfig{})
}

// EpsilonGreedyConfig represents a configuration for the EpsilonGreedy
// agent
type EpsilonGreedyConfig struct {
	Epsilon float64
}

// CreateAgent creates the agent from the Config
func (c EpsilonGreedyConfig) CreateAgent(arms int,
	seed uint64) (agent.Bandit, error) {
	a, err := NewEpsilonGreedy(arms, c.Epsilon, rand.NewSource(seed))
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Validate ensures that the Config is valid
func (c EpsilonGreedyConfig) Validate() error {
	return validateEpsilon("validate", c.Epsilon)
}

// Type returns the type of the agent constructed by the Config
func (c EpsilonGreedyConfig) Type() agent.Type {
	return agent.EpsilonGreedyMAB
}

// DecayEpsilonConfig represents a configuration for the DecayEpsilon
// agent
type DecayEpsilonConfig struct {
	Epsilon float64 // initial epsilon
	Decay   float64
}

// CreateAgent creates the agent from the Config
func (c DecayEpsilonConfig) CreateAgent(arms int,
	seed uint64) (agent.Bandit, error) {
	a, err := NewDecayEpsilon(arms, c.Epsilon, c.Decay, rand.NewSource(seed))
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Validate ensures that the Config is valid
func (c DecayEpsilonConfig) Validate() error {
	if err := validateEpsilon("validate", c.Epsilon); err != nil {
		return err
	}
	return validateUnit("validate", "decay", c.Decay)
}

// Type returns the type of the agent constructed by the Config
func (c DecayEpsilonConfig) Type() agent.Type {
	return agent.DecayEpsilonMAB
}

// UCBConfig represents a configuration for the UCB agent
type UCBConfig struct {
	P float64
}

// CreateAgent creates the agent from the Config. The seed is unused,
// UCB is deterministic.
func (c UCBConfig) CreateAgent(arms int, _ uint64) (agent.Bandit, error) {
	a, err := NewUCB(arms, c.P)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Validate ensures that the Config is valid
func (c UCBConfig) Validate() error {
	_, err := NewUCB(1, c.P)
	return err
}

// Type returns the type of the agent constructed by the Config
func (c UCBConfig) Type() agent.Type {
	return agent.UCBMAB
}

// UCB1Config represents a configuration for the UCB1 agent. A zero C
// uses DefaultUCB1C.
type UCB1Config struct {
	C float64 `json:",omitempty"`
}

func (c UCB1Config) c() float64 {
	if c.C == 0 {
		return DefaultUCB1C
	}
	return c.C
}

// CreateAgent creates the agent from the Config. The seed is unused,
// UCB1 is deterministic.
func (c UCB1Config) CreateAgent(arms int, _ uint64) (agent.Bandit, error) {
	a, err := NewUCB1(arms, c.c())
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Validate ensures that the Config is valid
func (c UCB1Config) Validate() error {
	_, err := NewUCB1(1, c.c())
	return err
}

// Type returns the type of the agent constructed by the Config
func (c UCB1Config) Type() agent.Type {
	return agent.UCB1MAB
}

// UCB2Config represents a configuration for the UCB2 agent
type UCB2Config struct {
	Alpha float64
}

// CreateAgent creates the agent from the Config. The seed is unused,
// UCB2 is deterministic.
func (c UCB2Config) CreateAgent(arms int, _ uint64) (agent.Bandit, error) {
	a, err := NewUCB2(arms, c.Alpha)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Validate ensures that the Config is valid
func (c UCB2Config) Validate() error {
	_, err := NewUCB2(1, c.Alpha)
	return err
}

// Type returns the type of the agent constructed by the Config
func (c UCB2Config) Type() agent.Type {
	return agent.UCB2MAB
}

// SoftmaxConfig represents a configuration for the Softmax agent
type SoftmaxConfig struct {
	Temperature float64
}

// CreateAgent creates the agent from the Config
func (c SoftmaxConfig) CreateAgent(arms int,
	seed uint64) (agent.Bandit, error) {
	a, err := NewSoftmax(arms, c.Temperature, rand.NewSource(seed))
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Validate ensures that the Config is valid
func (c SoftmaxConfig) Validate() error {
	_, err := NewSoftmax(1, c.Temperature, rand.NewSource(0))
	return err
}

// Type returns the type of the agent constructed by the Config
func (c SoftmaxConfig) Type() agent.Type {
	return agent.SoftmaxMAB
}

// PursuitConfig represents a configuration for the Pursuit agent
type PursuitConfig struct {
	Beta float64
}

// CreateAgent creates the agent from the Config
func (c PursuitConfig) CreateAgent(arms int,
	seed uint64) (agent.Bandit, error) {
	a, err := NewPursuit(arms, c.Beta, rand.NewSource(seed))
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Validate ensures that the Config is valid
func (c PursuitConfig) Validate() error {
	return validateUnit("validate", "beta", c.Beta)
}

// Type returns the type of the agent constructed by the Config
func (c PursuitConfig) Type() agent.Type {
	return agent.PursuitMAB
}
