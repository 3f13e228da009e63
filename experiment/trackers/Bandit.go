package trackers

import (
	"gonum.org/v1/gonum/stat"

	"github.com/samuelfneumann/rlagents/timestep"
)

// Regret tracks the regret of each arm pulled in a bandit experiment.
// The first TimeStep of an episode carries no pull and is ignored.
type Regret struct {
	regrets  []float64
	filename string
}

// NewRegret returns a new Regret Tracker which saves to filename
func NewRegret(filename string) *Regret {
	return &Regret{filename: filename}
}

// Track caches the regret of the TimeStep
func (r *Regret) Track(t timestep.TimeStep) {
	if !t.First() {
		r.regrets = append(r.regrets, t.Info.Regret)
	}
}

// Mean returns the mean regret per pull
func (r *Regret) Mean() float64 {
	return stat.Mean(r.regrets, nil)
}

// Data returns a copy of the regrets tracked so far
func (r *Regret) Data() []float64 {
	return append([]float64(nil), r.regrets...)
}

// Save saves the tracked regrets to disk
func (r *Regret) Save() {
	save(r.filename, r.regrets)
}

// Optimal tracks whether or not the best arm was pulled on each step of
// a bandit experiment, stored as 1 for the best arm and 0 otherwise
type Optimal struct {
	optimal  []float64
	filename string
}

// NewOptimal returns a new Optimal Tracker which saves to filename
func NewOptimal(filename string) *Optimal {
	return &Optimal{filename: filename}
}

// Track caches whether or not the TimeStep pulled the best arm
func (o *Optimal) Track(t timestep.TimeStep) {
	if t.First() {
		return
	}

	if t.Info.Optimal {
		o.optimal = append(o.optimal, 1)
	} else {
		o.optimal = append(o.optimal, 0)
	}
}

// Mean returns the fraction of pulls that chose the best arm
func (o *Optimal) Mean() float64 {
	return stat.Mean(o.optimal, nil)
}

// Data returns a copy of the tracked values
func (o *Optimal) Data() []float64 {
	return append([]float64(nil), o.optimal...)
}

// Save saves the tracked values to disk
func (o *Optimal) Save() {
	save(o.filename, o.optimal)
}
