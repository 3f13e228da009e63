// Package agent defines the interfaces of bandit and tabular agents
package agent

// Bandit is an agent for the stateless multi-armed bandit problem.
// Arms are enumerated as 0, 1, ... N-1.
//
// On each step, Predict selects the arm to pull and Learn records the
// reward that pulling some arm produced.
type Bandit interface {
	Predict() int
	Learn(arm int, reward float64)
}

// Tabular is an agent for problems with discrete states and actions,
// where states are identified by some comparable type S and actions are
// enumerated as 0, 1, ... N-1.
//
// Predict selects an action in some state. If eval is true, the greedy
// action is returned and no exploration is performed. Learn updates the
// agent using the transition (state, action, reward, next).
type Tabular[S comparable] interface {
	Predict(state S, eval bool) (int, error)
	Learn(state S, action int, reward float64, next S) error
}
