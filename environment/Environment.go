// Package environment outlines the interfaces and structs needed to implement
// concrete environments that agents can be run on
package environment

import (
	"github.com/samuelfneumann/rlagents/timestep"
)

// Starter implements a distribution of starting states and samples starting
// states for environments
type Starter interface {
	Start() int
}

// Ender determines when an episode should end. If End returns true, it
// will have marked the argument TimeStep as the last in the episode.
type Ender interface {
	End(*timestep.TimeStep) bool
}

// Environment implements a simulated environment with integer
// observations and integer actions
type Environment interface {
	Reset() timestep.TimeStep // Resets between episodes

	// Step takes an action and returns the next TimeStep, as well as
	// whether or not the episode has ended. An error is returned if the
	// action is not valid.
	Step(action int) (timestep.TimeStep, bool, error)

	// Actions returns the number of actions available
	Actions() int

	// LastTimeStep returns the most recent TimeStep
	LastTimeStep() timestep.TimeStep
}
