package agent

import (
	"reflect"
)

// Type represents a specific type of an agent Config.
// Config's with this type can create Agents of the corresponding type.
type Type string

const (
	// Bandit methods
	EpsilonGreedyMAB Type = "EpsilonGreedy-MAB"
	DecayEpsilonMAB  Type = "DecayEpsilon-MAB"
	UCBMAB           Type = "UCB-MAB"
	UCB1MAB          Type = "UCB1-MAB"
	UCB2MAB          Type = "UCB2-MAB"
	SoftmaxMAB       Type = "Softmax-MAB"
	PursuitMAB       Type = "Pursuit-MAB"

	// Tabular methods
	QLearningTabular     Type = "QLearning-Tabular"
	SarsaTabular         Type = "Sarsa-Tabular"
	ExpectedSarsaTabular Type = "ExpectedSarsa-Tabular"
)

// Registered types with the package. Once a Type has been registered
// with this map, a TypedConfig with that type can be deserialized.
//
// No Type's are registered wtih this package upon initialization.
// Each separate package is in charge of registering its Type with
// the package separately to avoid circular imports.
var registeredTypes map[Type]reflect.Type

func init() {
	registeredTypes = make(map[Type]reflect.Type)
}

// Register registers an agent's Type with a concrete Config type so
// that upon deserialization of a TypedConfig, Configs of type agentType
// are deserialized into the concrete type of config.
func Register(agentType Type, config Config) {
	registeredTypes[agentType] = reflect.TypeOf(config)
}

// IsRegistered returns whether a Config has been registered for the
// argument Type
func IsRegistered(agentType Type) bool {
	_, ok := registeredTypes[agentType]
	return ok
}
