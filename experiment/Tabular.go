package experiment

import (
	"fmt"
	"io"

	"github.com/samuelfneumann/rlagents/agent"
	env "github.com/samuelfneumann/rlagents/environment"
	"github.com/samuelfneumann/rlagents/experiment/trackers"
	"github.com/samuelfneumann/rlagents/rlerr"
	"github.com/samuelfneumann/rlagents/utils/progressbar"
)

const barWidth = 40

// RunTabular runs a tabular agent online for some number of episodes
// and returns the total reward of each episode. Each episode resets the
// environment and continues until the environment ends it. The agent
// learns from every transition, including those into terminal states,
// and its policy is updated by the agent itself on each Learn.
//
// If progress is non-nil, a progress bar is printed to it after each
// episode.
func RunTabular(e env.Environment, a agent.Tabular[int], episodes int,
	progress io.Writer, t ...trackers.Tracker) ([]float64, error) {
	if episodes < 0 {
		return nil, rlerr.InvalidConfig("runTabular",
			"negative number of episodes %d", episodes)
	}

	var bar *progressbar.ManualProgressBar
	if progress != nil {
		bar = progressbar.NewManualProgressBar(progress, barWidth, episodes)
		defer bar.Close()
	}

	rewards := make([]float64, episodes)
	for i := range rewards {
		ret, err := runEpisode(e, a, false, t)
		if err != nil {
			return rewards, fmt.Errorf("runTabular: episode %d: %w", i, err)
		}
		rewards[i] = ret

		if bar != nil {
			bar.Increment()
			bar.Display()
		}
	}

	return rewards, nil
}

// EvaluateTabular runs the greedy policy of a tabular agent for some
// number of episodes without learning and returns the total reward of
// each episode. The environment should have an episode cutoff, since a
// greedy policy need not reach a terminal state.
func EvaluateTabular(e env.Environment, a agent.Tabular[int],
	episodes int, t ...trackers.Tracker) ([]float64, error) {
	if episodes < 0 {
		return nil, rlerr.InvalidConfig("evaluateTabular",
			"negative number of episodes %d", episodes)
	}

	rewards := make([]float64, episodes)
	for i := range rewards {
		ret, err := runEpisode(e, a, true, t)
		if err != nil {
			return rewards, fmt.Errorf("evaluateTabular: episode %d: %w", i,
				err)
		}
		rewards[i] = ret
	}

	return rewards, nil
}

// runEpisode runs a single episode, returning the episodic return. In
// evaluation mode actions are greedy and the agent does not learn.
func runEpisode(e env.Environment, a agent.Tabular[int], eval bool,
	t []trackers.Tracker) (float64, error) {
	step := e.Reset()
	track(t, step)

	var ret float64
	for done := false; !done; {
		state := step.Observation
		action, err := a.Predict(state, eval)
		if err != nil {
			return ret, err
		}

		step, done, err = e.Step(action)
		if err != nil {
			return ret, err
		}
		track(t, step)
		ret += step.Reward

		if !eval {
			if err := a.Learn(state, action, step.Reward,
				step.Observation); err != nil {
				return ret, err
			}
		}
	}

	return ret, nil
}
