package tabular

import (
	"gonum.org/v1/gonum/floats"

	"github.com/samuelfneumann/rlagents/agent/tabular/policy"
	"github.com/samuelfneumann/rlagents/valuefn"
)

// QLearning implements the Q-Learning algorithm, where
//
//	F(s') = max_a' Q(s', a')
type QLearning[S comparable] struct {
	*td[S]
}

// NewQLearning returns a new QLearning agent which learns the values in
// store and selects actions using p. If p is nil, an ε-greedy policy
// with ε = 0.1 seeded from the current time is created for the agent,
// so its actions are not reproducible; pass a seeded policy or use
// QLearningConfig for reproducible runs.
func NewQLearning[S comparable](store valuefn.Store[S], p policy.Policy,
	learningRate, discount float64) (*QLearning[S], error) {
	t, err := newTD("newQLearning", store, p, learningRate, discount)
	if err != nil {
		return nil, err
	}

	q := &QLearning[S]{t}
	t.nextValue = q.maxValue
	return q, nil
}

func (q *QLearning[S]) maxValue(next S) (float64, error) {
	values, err := q.store.ValuesFor(next)
	if err != nil {
		return 0, err
	}
	return floats.Max(values), nil
}
