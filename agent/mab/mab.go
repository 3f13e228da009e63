// Package mab implements agents for the stateless multi-armed bandit
// problem. Each agent tracks the running mean reward and the number of
// pulls of every arm, and differs only in how it selects the next arm
// to pull.
package mab

import (
	"github.com/samuelfneumann/rlagents/rlerr"
	"github.com/samuelfneumann/rlagents/utils/floatutils"
)

// estimates tracks the running mean reward and trial count of each arm
type estimates struct {
	means  []float64
	trials []int
}

func newEstimates(arms int) estimates {
	return estimates{
		means:  make([]float64, arms),
		trials: make([]int, arms),
	}
}

// learn incrementally updates the mean reward of arm
func (e *estimates) learn(arm int, reward float64) {
	if arm < 0 || arm >= len(e.means) {
		panic(rlerr.OutOfRange("learn", arm, len(e.means)))
	}

	n := float64(e.trials[arm])
	e.means[arm] = (e.means[arm]*n + reward) / (n + 1)
	e.trials[arm]++
}

// greedy returns the arm with the highest mean reward
func (e *estimates) greedy() int {
	return floatutils.Argmax(e.means)
}

// Arms returns the number of arms
func (e *estimates) Arms() int {
	return len(e.means)
}

// Means returns a copy of the mean reward of each arm
func (e *estimates) Means() []float64 {
	means := make([]float64, len(e.means))
	copy(means, e.means)
	return means
}

// Trials returns a copy of the number of times each arm was pulled
func (e *estimates) Trials() []int {
	trials := make([]int, len(e.trials))
	copy(trials, e.trials)
	return trials
}

func validateArms(op string, arms int) error {
	if arms <= 0 {
		return rlerr.InvalidConfig(op, "arms must be positive (arms = %d)",
			arms)
	}
	return nil
}

func validateEpsilon(op string, e float64) error {
	if !(e > 0 && e < 1) {
		return rlerr.InvalidConfig(op, "epsilon must be in (0, 1) "+
			"(epsilon = %v)", e)
	}
	return nil
}

func validateUnit(op, name string, v float64) error {
	if !(v > 0 && v <= 1) {
		return rlerr.InvalidConfig(op, "%v must be in (0, 1] (%v = %v)",
			name, name, v)
	}
	return nil
}
