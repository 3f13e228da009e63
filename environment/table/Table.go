// Package table implements deterministic tabular environments defined
// by a transition table and a reward table
package table

import (
	"fmt"

	"github.com/samuelfneumann/rlagents/environment"
	"github.com/samuelfneumann/rlagents/rlerr"
	ts "github.com/samuelfneumann/rlagents/timestep"
)

// Table is a deterministic environment over states 0, 1, ..., S-1 and
// actions 0, 1, ..., A-1. Taking action a in state s moves the
// environment to state next[s][a] and pays out reward[s][a]. An episode
// ends when a terminal state is entered, or when the optional Ender
// ends it.
type Table struct {
	environment.Starter
	ender    environment.Ender
	next     [][]int
	reward   [][]float64
	terminal []bool
	state    int
	current  ts.TimeStep
}

// New returns a new Table environment. The terminal argument lists the
// terminal states, and ender may be nil, in which case episodes end
// only on entering a terminal state. The returned environment is reset
// and ready to use.
func New(next [][]int, reward [][]float64, terminal []int,
	starter environment.Starter, ender environment.Ender) (*Table, error) {
	states := len(next)
	if states == 0 {
		return nil, rlerr.InvalidConfig("newTable", "no states")
	}
	if len(reward) != states {
		return nil, rlerr.InvalidConfig("newTable",
			"%d reward rows for %d states", len(reward), states)
	}
	if starter == nil {
		return nil, rlerr.InvalidConfig("newTable", "nil starter")
	}

	actions := len(next[0])
	if actions == 0 {
		return nil, rlerr.InvalidConfig("newTable", "no actions")
	}

	n := make([][]int, states)
	r := make([][]float64, states)
	for s := range next {
		if len(next[s]) != actions || len(reward[s]) != actions {
			return nil, rlerr.InvalidConfig("newTable",
				"state %d does not have %d actions", s, actions)
		}
		for a, sPrime := range next[s] {
			if sPrime < 0 || sPrime >= states {
				return nil, rlerr.InvalidConfig("newTable",
					"next[%d][%d] = %d not a state", s, a, sPrime)
			}
		}

		n[s] = append([]int(nil), next[s]...)
		r[s] = append([]float64(nil), reward[s]...)
	}

	term := make([]bool, states)
	for _, s := range terminal {
		if s < 0 || s >= states {
			return nil, rlerr.InvalidConfig("newTable",
				"terminal state %d not a state", s)
		}
		term[s] = true
	}

	t := &Table{
		Starter:  starter,
		ender:    ender,
		next:     n,
		reward:   r,
		terminal: term,
	}
	t.Reset()

	return t, nil
}

// Reset samples a starting state and returns the first TimeStep. Reset
// panics if the Starter returns a state outside the table.
func (t *Table) Reset() ts.TimeStep {
	start := t.Start()
	if start < 0 || start >= len(t.next) {
		panic(rlerr.OutOfRange("reset", start, len(t.next)))
	}

	t.state = start
	t.current = ts.New(ts.First, 0, start, 0, ts.Info{})
	return t.current
}

// Step takes an action in the environment, returning the next
// TimeStep and whether or not the episode has ended
func (t *Table) Step(action int) (ts.TimeStep, bool, error) {
	if action < 0 || action >= t.Actions() {
		return ts.TimeStep{}, false, rlerr.OutOfRange("step", action,
			t.Actions())
	}

	reward := t.reward[t.state][action]
	t.state = t.next[t.state][action]
	step := ts.New(ts.Mid, reward, t.state, t.current.Number+1, ts.Info{})

	done := t.terminal[t.state]
	if done {
		step.SetLast()
	} else if t.ender != nil {
		done = t.ender.End(&step)
	}

	t.current = step
	return step, done, nil
}

// States returns the number of states
func (t *Table) States() int {
	return len(t.next)
}

// Actions returns the number of actions
func (t *Table) Actions() int {
	return len(t.next[0])
}

// Terminal returns whether or not a state is terminal
func (t *Table) Terminal(state int) bool {
	return t.terminal[state]
}

// LastTimeStep returns the most recent TimeStep
func (t *Table) LastTimeStep() ts.TimeStep {
	return t.current
}

func (t *Table) String() string {
	return fmt.Sprintf("Table | State: %d  |  States: %d  |  Actions: %d",
		t.state, t.States(), t.Actions())
}
