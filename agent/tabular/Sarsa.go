package tabular

import (
	"github.com/samuelfneumann/rlagents/agent/tabular/policy"
	"github.com/samuelfneumann/rlagents/valuefn"
)

// Sarsa implements the Sarsa algorithm, where
//
//	F(s') = Q(s', π(s'))
//
// and π(s') is the action the policy selects in s'. The selected action
// is remembered and returned by the next non-evaluation call to Predict
// in s', so that the agent follows the action it used for its update.
type Sarsa[S comparable] struct {
	*td[S]

	pending    bool
	nextState  S
	nextAction int
}

// NewSarsa returns a new Sarsa agent which learns the values in store
// and selects actions using p. If p is nil, an ε-greedy policy with
// ε = 0.1 seeded from the current time is created for the agent, so its
// actions are not reproducible; pass a seeded policy or use SarsaConfig
// for reproducible runs.
func NewSarsa[S comparable](store valuefn.Store[S], p policy.Policy,
	learningRate, discount float64) (*Sarsa[S], error) {
	t, err := newTD("newSarsa", store, p, learningRate, discount)
	if err != nil {
		return nil, err
	}

	s := &Sarsa[S]{td: t}
	t.nextValue = s.onPolicyValue
	return s, nil
}

// Predict returns the action to take in state. If eval is true, the
// greedy action is returned and any remembered action is left in
// place. Otherwise, if state is the next state of the most recent
// update, the action selected during that update is returned.
func (s *Sarsa[S]) Predict(state S, eval bool) (int, error) {
	if eval {
		return s.td.Predict(state, true)
	}

	if s.pending {
		s.pending = false
		if state == s.nextState {
			return s.nextAction, nil
		}
	}
	return s.td.Predict(state, false)
}

// NextAction returns the action remembered from the most recent update
// and whether one is remembered
func (s *Sarsa[S]) NextAction() (int, bool) {
	return s.nextAction, s.pending
}

func (s *Sarsa[S]) onPolicyValue(next S) (float64, error) {
	values, err := s.store.ValuesFor(next)
	if err != nil {
		return 0, err
	}

	action := s.policy.Choose(values)
	s.pending = true
	s.nextState = next
	s.nextAction = action

	return values[action], nil
}
