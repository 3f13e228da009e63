// Package bandit implements multi-armed bandit environments. Bandit
// environments have a single state, observed as 0, and never end
// episodes.
package bandit

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/rlagents/rlerr"
	ts "github.com/samuelfneumann/rlagents/timestep"
)

// Gaussian implements a k-armed bandit whose arm means are drawn from
// a standard normal distribution each time the environment is reset.
// Pulling arm a pays out a reward drawn from N(means[a], 1).
//
// Each TimeStep returned by Step records whether the pulled arm was
// the best arm as well as the regret of pulling it, that is, the
// difference between the best mean and the mean of the pulled arm.
type Gaussian struct {
	means   []float64
	best    int
	src     rand.Source
	arm     distuv.Normal
	payout  distuv.Normal
	current ts.TimeStep
}

// NewGaussian returns a new k-armed Gaussian bandit. The returned
// environment is reset and ready to use.
func NewGaussian(arms int, seed uint64) (*Gaussian, error) {
	if arms < 1 {
		return nil, rlerr.InvalidConfig("newGaussian",
			"arms must be positive, got %d", arms)
	}

	src := rand.NewSource(seed)
	g := &Gaussian{
		means:  make([]float64, arms),
		src:    src,
		arm:    distuv.Normal{Mu: 0, Sigma: 1, Src: src},
		payout: distuv.Normal{Mu: 0, Sigma: 1, Src: src},
	}
	g.Reset()

	return g, nil
}

// Reset draws new arm means and returns the first TimeStep
func (g *Gaussian) Reset() ts.TimeStep {
	for i := range g.means {
		g.means[i] = g.arm.Rand()
	}
	g.best = floats.MaxIdx(g.means)

	g.current = ts.New(ts.First, 0, 0, 0, ts.Info{})
	return g.current
}

// Step pulls an arm and returns the resulting TimeStep. Bandit
// episodes never end, so the returned bool is always false.
func (g *Gaussian) Step(arm int) (ts.TimeStep, bool, error) {
	if arm < 0 || arm >= len(g.means) {
		return ts.TimeStep{}, false, rlerr.OutOfRange("step", arm,
			len(g.means))
	}

	g.payout.Mu = g.means[arm]
	info := ts.Info{
		Optimal: arm == g.best,
		Regret:  g.means[g.best] - g.means[arm],
	}
	g.current = ts.New(ts.Mid, g.payout.Rand(), 0, g.current.Number+1, info)

	return g.current, false, nil
}

// Actions returns the number of arms
func (g *Gaussian) Actions() int {
	return len(g.means)
}

// LastTimeStep returns the most recent TimeStep
func (g *Gaussian) LastTimeStep() ts.TimeStep {
	return g.current
}

// Means returns a copy of the current arm means
func (g *Gaussian) Means() []float64 {
	m := make([]float64, len(g.means))
	copy(m, g.means)
	return m
}

// Best returns the index of the arm with the largest mean
func (g *Gaussian) Best() int {
	return g.best
}

func (g *Gaussian) String() string {
	return fmt.Sprintf("Gaussian Bandit | Arms: %d  |  Best: %d", len(g.means),
		g.best)
}
