// Package valuefn implements tabular action-value functions which map
// (state, action) pairs to scalar estimates.
package valuefn

// Store is a tabular action-value function. States are identified by
// any comparable type and actions are enumerated as 0, 1, ... N-1
// where N is the number of actions declared at construction.
type Store[S comparable] interface {
	// Read returns the value of taking action in state
	Read(state S, action int) (float64, error)

	// Write sets the value of taking action in state
	Write(state S, action int, value float64) error

	// ValuesFor returns a copy of the values of all actions in state
	ValuesFor(state S) ([]float64, error)

	// Actions returns the number of actions in each state
	Actions() int
}
