// Package policy implements action-selection policies for tabular
// agents. A policy maps the values of each action in some state to a
// chosen action or to a distribution over actions.
package policy

import (
	"github.com/samuelfneumann/rlagents/utils/floatutils"
)

// Policy selects actions given the values of all actions in a state
type Policy interface {
	// Choose returns the index of the selected action
	Choose(values []float64) int

	// Probabilities returns the probability of selecting each action
	Probabilities(values []float64) []float64

	// Update is called once per decision step by the owning agent to
	// decay exploration parameters. Policies that do not decay
	// implement this as a no-op.
	Update()
}

// Greedy returns the index of the maximum value, breaking ties by first
// occurrence
func Greedy(values []float64) int {
	return floatutils.Argmax(values)
}
