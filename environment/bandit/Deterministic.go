package bandit

import (
	"gonum.org/v1/gonum/floats"

	"github.com/samuelfneumann/rlagents/rlerr"
	ts "github.com/samuelfneumann/rlagents/timestep"
)

// Deterministic implements a k-armed bandit where each arm always pays
// out the same reward
type Deterministic struct {
	rewards []float64
	best    int
	current ts.TimeStep
}

// NewDeterministic returns a new Deterministic bandit where pulling
// arm i always pays out rewards[i]
func NewDeterministic(rewards []float64) (*Deterministic, error) {
	if len(rewards) == 0 {
		return nil, rlerr.InvalidConfig("newDeterministic", "no arms")
	}

	r := make([]float64, len(rewards))
	copy(r, rewards)

	d := &Deterministic{rewards: r, best: floats.MaxIdx(r)}
	d.Reset()
	return d, nil
}

// Reset returns the first TimeStep
func (d *Deterministic) Reset() ts.TimeStep {
	d.current = ts.New(ts.First, 0, 0, 0, ts.Info{})
	return d.current
}

// Step pulls an arm and returns the resulting TimeStep. The returned
// bool is always false.
func (d *Deterministic) Step(arm int) (ts.TimeStep, bool, error) {
	if arm < 0 || arm >= len(d.rewards) {
		return ts.TimeStep{}, false, rlerr.OutOfRange("step", arm,
			len(d.rewards))
	}

	info := ts.Info{
		Optimal: arm == d.best,
		Regret:  d.rewards[d.best] - d.rewards[arm],
	}
	d.current = ts.New(ts.Mid, d.rewards[arm], 0, d.current.Number+1, info)

	return d.current, false, nil
}

// Actions returns the number of arms
func (d *Deterministic) Actions() int {
	return len(d.rewards)
}

// LastTimeStep returns the most recent TimeStep
func (d *Deterministic) LastTimeStep() ts.TimeStep {
	return d.current
}
