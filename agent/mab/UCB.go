package mab

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/samuelfneumann/rlagents/rlerr"
)

// DefaultUCB1C is the exploration constant used by UCB1 when none is
// given
const DefaultUCB1C float64 = 4

// ucb holds the state shared by the upper confidence bound agents,
// which pull each arm once in index order before using their bounds.
type ucb struct {
	estimates
	bounds []float64
	t      int // total pulls
}

func newUCB(arms int) ucb {
	return ucb{
		estimates: newEstimates(arms),
		bounds:    make([]float64, arms),
	}
}

// warmup returns the next arm to pull during the initial round and
// whether the initial round is still in progress
func (u *ucb) warmup() (int, bool) {
	if u.t < u.Arms() {
		return u.t, true
	}
	return 0, false
}

// upper returns the arm with the largest mean plus bound
func (u *ucb) upper() int {
	scores := make([]float64, u.Arms())
	floats.AddTo(scores, u.means, u.bounds)
	return floats.MaxIdx(scores)
}

// Bounds returns a copy of the confidence bound of each arm
func (u *ucb) Bounds() []float64 {
	bounds := make([]float64, len(u.bounds))
	copy(bounds, u.bounds)
	return bounds
}

// UCB selects the arm with the largest mean + U, where
//
//	U = sqrt(-ln(p) / (2 N))
//
// N is the number of pulls of the arm, and p is the probability of the
// true mean exceeding the estimate plus the bound.
type UCB struct {
	ucb
	p float64
}

// NewUCB returns a new UCB agent with confidence parameter p in (0, 1)
func NewUCB(arms int, p float64) (*UCB, error) {
	if err := validateArms("newUCB", arms); err != nil {
		return nil, err
	}
	if !(p > 0 && p < 1) {
		return nil, rlerr.InvalidConfig("newUCB", "p must be in (0, 1) "+
			"(p = %v)", p)
	}

	return &UCB{ucb: newUCB(arms), p: p}, nil
}

// Predict returns the next arm to pull
func (u *UCB) Predict() int {
	if arm, ok := u.warmup(); ok {
		return arm
	}
	return u.upper()
}

// Learn records the reward received from pulling arm and recomputes
// the bound of that arm
func (u *UCB) Learn(arm int, reward float64) {
	u.learn(arm, reward)
	u.bounds[arm] = math.Sqrt(-math.Log(u.p) / (2 * float64(u.trials[arm])))
	u.t++
}

// UCB1 selects the arm with the largest mean + U, where
//
//	U = c sqrt(ln(t) / N)
//
// t is the total number of pulls and N is the number of pulls of the
// arm.
type UCB1 struct {
	ucb
	c float64
}

// NewUCB1 returns a new UCB1 agent with exploration constant c > 0
func NewUCB1(arms int, c float64) (*UCB1, error) {
	if err := validateArms("newUCB1", arms); err != nil {
		return nil, err
	}
	if !(c > 0) {
		return nil, rlerr.InvalidConfig("newUCB1", "c must be positive "+
			"(c = %v)", c)
	}

	return &UCB1{ucb: newUCB(arms), c: c}, nil
}

// Predict returns the next arm to pull
func (u *UCB1) Predict() int {
	if arm, ok := u.warmup(); ok {
		return arm
	}
	return u.upper()
}

// Learn records the reward received from pulling arm and recomputes
// the bound of that arm
func (u *UCB1) Learn(arm int, reward float64) {
	u.learn(arm, reward)
	u.t++
	u.bounds[arm] = u.c * math.Sqrt(math.Log(float64(u.t))/
		float64(u.trials[arm]))
}
