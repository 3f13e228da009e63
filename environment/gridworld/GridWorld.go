// Package gridworld implements 2D gridworld environments as tabular
// environments. Position (x, y) in a gridworld with c columns is
// state y*c + x.
package gridworld

import (
	"github.com/samuelfneumann/rlagents/environment"
	"github.com/samuelfneumann/rlagents/environment/table"
	"github.com/samuelfneumann/rlagents/rlerr"
)

// Actions in a gridworld
const (
	Left = iota
	Right
	Up
	Down
)

// NumActions is the number of actions in a gridworld
const NumActions = 4

// Goal represents the task of reaching any one of a number of goal
// positions in a GridWorld. Entering a goal pays out GoalReward and ends
// the episode, all other transitions pay out TimeStepReward.
type Goal struct {
	X, Y           []int
	TimeStepReward float64
	GoalReward     float64
}

// New creates a new gridworld with r rows and c columns. Moving into a
// wall leaves the position unchanged.
func New(r, c int, g Goal, s environment.Starter,
	e environment.Ender) (*table.Table, error) {
	if r < 1 || c < 1 {
		return nil, rlerr.InvalidConfig("newGridWorld",
			"dimensions must be positive, got (%d, %d)", r, c)
	}
	if len(g.X) != len(g.Y) {
		return nil, rlerr.InvalidConfig("newGridWorld",
			"x length (%d) != y length (%d)", len(g.X), len(g.Y))
	}

	goals := make([]int, len(g.X))
	isGoal := make(map[int]bool, len(g.X))
	for i := range g.X {
		if g.X[i] < 0 || g.X[i] >= c {
			return nil, rlerr.InvalidConfig("newGridWorld",
				"x[%d] = %d not in [0, %d)", i, g.X[i], c)
		} else if g.Y[i] < 0 || g.Y[i] >= r {
			return nil, rlerr.InvalidConfig("newGridWorld",
				"y[%d] = %d not in [0, %d)", i, g.Y[i], r)
		}
		goals[i] = Index(g.X[i], g.Y[i], c)
		isGoal[goals[i]] = true
	}

	next := make([][]int, r*c)
	reward := make([][]float64, r*c)
	for state := range next {
		next[state] = make([]int, NumActions)
		reward[state] = make([]float64, NumActions)

		x, y := Coordinates(state, c)
		for a := 0; a < NumActions; a++ {
			nextX, nextY := move(x, y, a, r, c)
			nextState := Index(nextX, nextY, c)

			next[state][a] = nextState
			if isGoal[nextState] {
				reward[state][a] = g.GoalReward
			} else {
				reward[state][a] = g.TimeStepReward
			}
		}
	}

	return table.New(next, reward, goals, s, e)
}

// move returns the position after taking action a at (x, y)
func move(x, y, a, r, c int) (int, int) {
	switch a {
	case Left:
		if x > 0 {
			x--
		}
	case Right:
		if x < c-1 {
			x++
		}
	case Up:
		if y < r-1 {
			y++
		}
	case Down:
		if y > 0 {
			y--
		}
	}
	return x, y
}

// Index converts coordinates (x, y) to a state index in a gridworld
// with c columns
func Index(x, y, c int) int {
	return y*c + x
}

// Coordinates converts a state index to (x, y) coordinates in a
// gridworld with c columns
func Coordinates(state, c int) (int, int) {
	y := state / c
	return state - y*c, y
}
