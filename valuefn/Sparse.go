package valuefn

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/rlagents/rlerr"
)

// Sparse implements a Store keyed by arbitrary comparable state
// identifiers. The action values of a state are created the first time
// that state is read or written, using the init method the Store was
// constructed with.
type Sparse[S comparable] struct {
	values  map[S][]float64
	actions int
	init    distuv.Rander
}

// NewSparse returns a new, empty Sparse Store with the given number of
// actions in each state
func NewSparse[S comparable](actions int, method InitMethod,
	src rand.Source) (*Sparse[S], error) {
	if actions <= 0 {
		return nil, rlerr.InvalidConfig("newSparse",
			"actions must be positive (actions = %d)", actions)
	}

	rand, err := newRander(method, src)
	if err != nil {
		return nil, err
	}

	return &Sparse[S]{
		values:  make(map[S][]float64),
		actions: actions,
		init:    rand,
	}, nil
}

// getOrInsert returns the action values of state, creating and
// initializing them if the state has not been seen before
func (s *Sparse[S]) getOrInsert(state S) []float64 {
	values, ok := s.values[state]
	if !ok {
		values = make([]float64, s.actions)
		fill(values, s.init)
		s.values[state] = values
	}
	return values
}

// Read returns the value of action in state
func (s *Sparse[S]) Read(state S, action int) (float64, error) {
	if action < 0 || action >= s.actions {
		return 0, rlerr.OutOfRange("read", action, s.actions)
	}
	return s.getOrInsert(state)[action], nil
}

// Write sets the value of action in state
func (s *Sparse[S]) Write(state S, action int, value float64) error {
	if action < 0 || action >= s.actions {
		return rlerr.OutOfRange("write", action, s.actions)
	}
	s.getOrInsert(state)[action] = value
	return nil
}

// ValuesFor returns a copy of the action values in state
func (s *Sparse[S]) ValuesFor(state S) ([]float64, error) {
	values := s.getOrInsert(state)
	out := make([]float64, len(values))
	copy(out, values)
	return out, nil
}

// Actions returns the number of actions in each state
func (s *Sparse[S]) Actions() int {
	return s.actions
}

// Len returns the number of states which have been materialized
func (s *Sparse[S]) Len() int {
	return len(s.values)
}
