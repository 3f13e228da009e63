package tabular

import (
	"gonum.org/v1/gonum/floats"

	"github.com/samuelfneumann/rlagents/agent/tabular/policy"
	"github.com/samuelfneumann/rlagents/valuefn"
)

// ExpectedSarsa implements the Expected Sarsa algorithm, where
//
//	F(s') = Σ_a' π(s', a') Q(s', a')
//
// and π is the agent's policy.
type ExpectedSarsa[S comparable] struct {
	*td[S]
}

// NewExpectedSarsa returns a new ExpectedSarsa agent which learns the
// values in store and selects actions using p. If p is nil, an ε-greedy
// policy with ε = 0.1 seeded from the current time is created for the
// agent, so its actions are not reproducible; pass a seeded policy or
// use ExpectedSarsaConfig for reproducible runs.
func NewExpectedSarsa[S comparable](store valuefn.Store[S], p policy.Policy,
	learningRate, discount float64) (*ExpectedSarsa[S], error) {
	t, err := newTD("newExpectedSarsa", store, p, learningRate, discount)
	if err != nil {
		return nil, err
	}

	e := &ExpectedSarsa[S]{t}
	t.nextValue = e.expectedValue
	return e, nil
}

func (e *ExpectedSarsa[S]) expectedValue(next S) (float64, error) {
	values, err := e.store.ValuesFor(next)
	if err != nil {
		return 0, err
	}
	return floats.Dot(e.policy.Probabilities(values), values), nil
}
