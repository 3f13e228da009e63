package mab

import (
	"math"

	"github.com/samuelfneumann/rlagents/rlerr"
)

// UCB2 implements the UCB2 algorithm. Play is divided into epochs: when
// an arm j in epoch r_j is selected, it is pulled once and then
// committed to for τ(r_j+1) - τ(r_j) additional pulls, where
//
//	τ(r) = ceil((1+α)^r)
//
// Arms are selected by maximizing mean + a(t, r_j) with
//
//	a(t, r) = sqrt((1+α) ln(e t / τ(r)) / (2 τ(r)))
type UCB2 struct {
	ucb
	alpha float64

	epochs    []int
	current   int
	remaining int
}

// NewUCB2 returns a new UCB2 agent with α in (0, 1)
func NewUCB2(arms int, alpha float64) (*UCB2, error) {
	if err := validateArms("newUCB2", arms); err != nil {
		return nil, err
	}
	if !(alpha > 0 && alpha < 1) {
		return nil, rlerr.InvalidConfig("newUCB2", "alpha must be in "+
			"(0, 1) (alpha = %v)", alpha)
	}

	return &UCB2{
		ucb:    newUCB(arms),
		alpha:  alpha,
		epochs: make([]int, arms),
	}, nil
}

// Epochs returns a copy of the epoch counter of each arm
func (u *UCB2) Epochs() []int {
	epochs := make([]int, len(u.epochs))
	copy(epochs, u.epochs)
	return epochs
}

// Predict returns the next arm to pull. While committed to an arm, that
// arm is returned without recomputing any bounds.
func (u *UCB2) Predict() int {
	if arm, ok := u.warmup(); ok {
		return arm
	}

	if u.remaining > 0 {
		u.remaining--
		return u.current
	}

	for j := range u.bounds {
		u.bounds[j] = u.bonus(u.epochs[j])
	}
	arm := u.upper()

	r := u.epochs[arm]
	u.remaining = u.tau(r+1) - u.tau(r)
	u.epochs[arm]++
	u.current = arm

	return arm
}

// Learn records the reward received from pulling arm
func (u *UCB2) Learn(arm int, reward float64) {
	u.learn(arm, reward)
	u.t++
}

// tau returns the length of the first r epochs
func (u *UCB2) tau(r int) int {
	return int(math.Ceil(math.Pow(1+u.alpha, float64(r))))
}

// bonus returns the bound of an arm in epoch r at the current time
func (u *UCB2) bonus(r int) float64 {
	tau := float64(u.tau(r))
	log := math.Log(math.E * float64(u.t) / tau)
	return math.Sqrt(math.Max(0, (1+u.alpha)*log/(2*tau)))
}
