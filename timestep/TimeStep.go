// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// Info holds auxiliary information about a transition. Bandit
// environments fill in whether the pulled arm was the best arm and the
// regret of pulling it; other environments may leave it zeroed.
type Info struct {
	Optimal bool
	Regret  float64
}

// TimeStep packages together a single timestep in an environment.
// Observations are integer states.
type TimeStep struct {
	stepType    StepType
	Reward      float64
	Observation int
	Number      int
	Info        Info
}

// New returns a new TimeStep
func New(t StepType, r float64, o, n int, info Info) TimeStep {
	return TimeStep{t, r, o, n, info}
}

// StepType returns the type of the TimeStep
func (t *TimeStep) StepType() StepType {
	return t.stepType
}

// SetLast marks the TimeStep as the last in its episode
func (t *TimeStep) SetLast() {
	t.stepType = Last
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.stepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.stepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.stepType == Last
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  Observation: %v  |  " +
		"Step Number:  %v"

	return fmt.Sprintf(str, t.stepType, t.Reward, t.Observation, t.Number)
}
