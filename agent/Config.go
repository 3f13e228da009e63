package agent

// Config represents a configuration for creating an agent
type Config interface {
	// Validate returns an error describing whether or not the
	// configuration is valid or not.
	Validate() error

	// Type returns the type of agent the Config describes
	Type() Type
}

// BanditConfig is a Config which creates Bandit agents
type BanditConfig interface {
	Config

	// CreateAgent creates the agent that the config describes for a
	// bandit with the given number of arms
	CreateAgent(arms int, seed uint64) (Bandit, error)
}

// TabularConfig is a Config which creates Tabular agents over
// integer-enumerated states
type TabularConfig interface {
	Config

	// CreateAgent creates the agent that the config describes for an
	// environment with the given number of states and actions
	CreateAgent(states, actions int, seed uint64) (Tabular[int], error)
}
