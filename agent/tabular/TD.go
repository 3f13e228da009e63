// Package tabular implements temporal-difference control algorithms
// over tabular action-value functions.
//
// Each algorithm updates the value of a state-action pair as
//
//	Q(s, a) ← (1 - α) Q(s, a) + α (r + γ F(s'))
//
// and the algorithms differ only in F, the estimate of the value of the
// next state s'.
package tabular

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/rlagents/agent/tabular/policy"
	"github.com/samuelfneumann/rlagents/rlerr"
	"github.com/samuelfneumann/rlagents/valuefn"
)

// td implements the update and action selection shared by all
// temporal-difference algorithms in this package
type td[S comparable] struct {
	store  valuefn.Store[S]
	policy policy.Policy

	learningRate float64
	discount     float64

	// nextValue estimates the value of the next state
	nextValue func(next S) (float64, error)
}

// newTD returns a new td. If p is nil, a new ε-greedy policy seeded
// from the current time is created for this agent alone.
func newTD[S comparable](op string, store valuefn.Store[S], p policy.Policy,
	learningRate, discount float64) (*td[S], error) {
	if store == nil {
		return nil, rlerr.InvalidConfig(op, "nil value store")
	}
	if !(learningRate > 0 && learningRate <= 1) {
		return nil, rlerr.InvalidConfig(op, "learning rate must be in "+
			"(0, 1] (learning rate = %v)", learningRate)
	}
	if !(discount >= 0 && discount <= 1) {
		return nil, rlerr.InvalidConfig(op, "discount must be in [0, 1] "+
			"(discount = %v)", discount)
	}

	if p == nil {
		var err error
		seed := uint64(time.Now().UnixNano())
		p, err = policy.Default().Create(rand.NewSource(seed))
		if err != nil {
			return nil, fmt.Errorf("%v: could not create default policy: %w",
				op, err)
		}
	}

	return &td[S]{
		store:        store,
		policy:       p,
		learningRate: learningRate,
		discount:     discount,
	}, nil
}

// Store returns the action-value function of the agent
func (t *td[S]) Store() valuefn.Store[S] {
	return t.store
}

// Policy returns the behaviour policy of the agent
func (t *td[S]) Policy() policy.Policy {
	return t.policy
}

// Predict returns the action to take in state. If eval is true, the
// greedy action is returned, otherwise the action is chosen by the
// policy.
func (t *td[S]) Predict(state S, eval bool) (int, error) {
	values, err := t.store.ValuesFor(state)
	if err != nil {
		return 0, fmt.Errorf("predict: %w", err)
	}

	if eval {
		return policy.Greedy(values), nil
	}
	return t.policy.Choose(values), nil
}

// Learn performs the temporal-difference update on the transition
// (state, action, reward, next) and then updates the policy
func (t *td[S]) Learn(state S, action int, reward float64, next S) error {
	q, err := t.store.Read(state, action)
	if err != nil {
		return fmt.Errorf("learn: %w", err)
	}

	nextValue, err := t.nextValue(next)
	if err != nil {
		return fmt.Errorf("learn: %w", err)
	}

	update := t.learningRate * (reward + t.discount*nextValue)
	target := (1-t.learningRate)*q + update
	if err := t.store.Write(state, action, target); err != nil {
		return fmt.Errorf("learn: %w", err)
	}

	t.policy.Update()
	return nil
}
