package experiment

import (
	"fmt"

	"github.com/samuelfneumann/rlagents/agent"
	env "github.com/samuelfneumann/rlagents/environment"
	"github.com/samuelfneumann/rlagents/experiment/trackers"
	"github.com/samuelfneumann/rlagents/rlerr"
)

// BanditResult holds the running averages of a bandit experiment, one
// entry per trial. Optimal averages 1 for pulls of the best arm and 0
// otherwise.
type BanditResult struct {
	Rewards []float64
	Regrets []float64
	Optimal []float64
}

// RunBandit resets the environment and then runs a bandit agent online
// for some number of trials. On each trial the agent picks an arm,
// the environment is stepped with it, and the agent learns from the
// reward. Every TimeStep, including the first, is sent to the Trackers.
//
// The returned averages use the recurrence
//
//	avg[i] = (avg[0] + ... + avg[i-1] + x[i]) / (i+1)
//
// which averages each new value together with all previous averages.
func RunBandit(e env.Environment, a agent.Bandit, trials int,
	t ...trackers.Tracker) (BanditResult, error) {
	if trials < 0 {
		return BanditResult{}, rlerr.InvalidConfig("runBandit",
			"negative number of trials %d", trials)
	}

	result := BanditResult{
		Rewards: make([]float64, trials),
		Regrets: make([]float64, trials),
		Optimal: make([]float64, trials),
	}
	var rewards, regrets, optimal float64

	track(t, e.Reset())
	for i := 0; i < trials; i++ {
		arm := a.Predict()
		step, _, err := e.Step(arm)
		if err != nil {
			return result, fmt.Errorf("runBandit: trial %d: %w", i, err)
		}
		a.Learn(arm, step.Reward)
		track(t, step)

		var isOptimal float64
		if step.Info.Optimal {
			isOptimal = 1
		}

		result.Rewards[i] = runningAverage(&rewards, step.Reward, i)
		result.Regrets[i] = runningAverage(&regrets, step.Info.Regret, i)
		result.Optimal[i] = runningAverage(&optimal, isOptimal, i)
	}

	return result, nil
}
