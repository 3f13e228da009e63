package mab

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/samuelfneumann/rlagents/agent"
	"github.com/samuelfneumann/rlagents/rlerr"
)

type meanTracker interface {
	agent.Bandit
	Means() []float64
	Trials() []int
}

func newAgents(t *testing.T, arms int, seed uint64) map[string]meanTracker {
	t.Helper()

	eg, err := NewEpsilonGreedy(arms, 0.1, rand.NewSource(seed))
	require.NoError(t, err)
	de, err := NewDecayEpsilon(arms, 0.5, 0.99, rand.NewSource(seed))
	require.NoError(t, err)
	u, err := NewUCB(arms, 0.005)
	require.NoError(t, err)
	u1, err := NewUCB1(arms, DefaultUCB1C)
	require.NoError(t, err)
	u2, err := NewUCB2(arms, 0.01)
	require.NoError(t, err)
	sm, err := NewSoftmax(arms, 0.02, rand.NewSource(seed))
	require.NoError(t, err)
	p, err := NewPursuit(arms, 0.1, rand.NewSource(seed))
	require.NoError(t, err)

	return map[string]meanTracker{
		"EpsilonGreedy": eg,
		"DecayEpsilon":  de,
		"UCB":           u,
		"UCB1":          u1,
		"UCB2":          u2,
		"Softmax":       sm,
		"Pursuit":       p,
	}
}

func TestIncrementalMean(t *testing.T) {
	for _, arms := range []int{1, 2, 5, 10} {
		for name, a := range newAgents(t, arms, uint64(arms)) {
			t.Run(fmt.Sprintf("%v/arms=%d", name, arms), func(t *testing.T) {
				rng := rand.New(rand.NewSource(uint64(arms * 31)))
				rewards := make([][]float64, arms)

				for i := 0; i < 200; i++ {
					arm := a.Predict()
					require.GreaterOrEqual(t, arm, 0)
					require.Less(t, arm, arms)

					reward := rng.NormFloat64()*2 + float64(arm)
					rewards[arm] = append(rewards[arm], reward)
					a.Learn(arm, reward)
				}

				means, trials := a.Means(), a.Trials()
				for arm := range rewards {
					assert.Equal(t, len(rewards[arm]), trials[arm])
					if len(rewards[arm]) == 0 {
						assert.Equal(t, 0.0, means[arm])
						continue
					}
					assert.InDelta(t, stat.Mean(rewards[arm], nil),
						means[arm], 1e-9)
				}
			})
		}
	}
}

func TestLearnOutOfRangePanics(t *testing.T) {
	a, err := NewUCB1(3, 2)
	require.NoError(t, err)

	assert.Panics(t, func() { a.Learn(3, 1) })
	assert.Panics(t, func() { a.Learn(-1, 1) })
}

func TestUCBWarmup(t *testing.T) {
	const arms = 6
	u, err := NewUCB(arms, 0.05)
	require.NoError(t, err)
	u1, err := NewUCB1(arms, 2)
	require.NoError(t, err)
	u2, err := NewUCB2(arms, 0.3)
	require.NoError(t, err)

	for name, a := range map[string]agent.Bandit{"UCB": u, "UCB1": u1,
		"UCB2": u2} {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < arms; i++ {
				arm := a.Predict()
				assert.Equal(t, i, arm)

				// Rewards favour the last arm so that the bounds alone
				// never pick an arm out of order
				a.Learn(arm, float64(arms-i))
			}
		})
	}
}

func TestUCBBound(t *testing.T) {
	u, err := NewUCB(2, 0.05)
	require.NoError(t, err)

	u.Learn(0, 1)
	u.Learn(0, 1)
	u.Learn(1, 0)

	bounds := u.Bounds()
	assert.InDelta(t, math.Sqrt(-math.Log(0.05)/4), bounds[0], 1e-12)
	assert.InDelta(t, math.Sqrt(-math.Log(0.05)/2), bounds[1], 1e-12)
}

func TestUCB1Bound(t *testing.T) {
	u, err := NewUCB1(2, DefaultUCB1C)
	require.NoError(t, err)

	u.Learn(0, 1)
	u.Learn(1, 0)
	u.Learn(1, 0)

	bounds := u.Bounds()
	assert.InDelta(t, 4*math.Sqrt(math.Log(1)/1), bounds[0], 1e-12)
	assert.InDelta(t, 4*math.Sqrt(math.Log(3)/2), bounds[1], 1e-12)
}

func TestUCB2Commits(t *testing.T) {
	u, err := NewUCB2(2, 0.5)
	require.NoError(t, err)

	// τ(0) = 1, τ(1) = 2, τ(2) = 3, τ(3) = 4
	assert.Equal(t, []int{1, 2, 3, 4}, []int{u.tau(0), u.tau(1), u.tau(2),
		u.tau(3)})

	rewards := []float64{1, 0}
	var arms []int
	for i := 0; i < 4; i++ {
		arm := u.Predict()
		arms = append(arms, arm)
		u.Learn(arm, rewards[arm])
	}

	// Warmup, then arm 0 is selected and committed to for
	// τ(1) - τ(0) = 1 additional pull
	assert.Equal(t, []int{0, 1, 0, 0}, arms)
	assert.Equal(t, []int{1, 0}, u.Epochs())
}

func TestUCBFindsBestArm(t *testing.T) {
	means := []float64{0.1, 0.5, 0.9, 0.3}
	for name, a := range newAgents(t, len(means), 99) {
		if name == "Softmax" || name == "Pursuit" {
			continue
		}
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(5))
			for i := 0; i < 3000; i++ {
				arm := a.Predict()
				a.Learn(arm, means[arm]+rng.NormFloat64()*0.1)
			}

			trials := a.Trials()
			best := 0
			for i := range trials {
				if trials[i] > trials[best] {
					best = i
				}
			}
			assert.Equal(t, 2, best, "trials: %v", trials)
		})
	}
}

func TestEpsilonGreedyTwoArms(t *testing.T) {
	a, err := NewEpsilonGreedy(2, 0.01, rand.NewSource(2021))
	require.NoError(t, err)

	rewards := []float64{1, 0}
	pulls := 0
	for i := 0; i < 50; i++ {
		arm := a.Predict()
		if arm == 0 {
			pulls++
		}
		a.Learn(arm, rewards[arm])
	}

	assert.Greater(t, float64(pulls)/50, 0.9)
}

func TestDecayEpsilonUnbounded(t *testing.T) {
	a, err := NewDecayEpsilon(3, 0.5, 0.9, rand.NewSource(1))
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		a.Learn(a.Predict(), 1)
	}
	assert.InDelta(t, 0.5*math.Pow(0.9, 200), a.Epsilon(), 1e-15)
	assert.Less(t, a.Epsilon(), 1e-9)
}

func TestProbabilityAgents(t *testing.T) {
	s, err := NewSoftmax(4, 0.5, rand.NewSource(3))
	require.NoError(t, err)
	p, err := NewPursuit(4, 0.02, rand.NewSource(3))
	require.NoError(t, err)

	assert.Equal(t, []float64{0.25, 0.25, 0.25, 0.25}, p.Probabilities())

	means := []float64{0, 0, 2, 0}
	for i := 0; i < 500; i++ {
		arm := s.Predict()
		s.Learn(arm, means[arm])
		assert.InDelta(t, 1, floats.Sum(s.Probabilities()), 1e-9)

		arm = p.Predict()
		p.Learn(arm, means[arm])
		assert.InDelta(t, 1, floats.Sum(p.Probabilities()), 1e-9)
	}

	assert.Greater(t, s.Probabilities()[2], 0.9)
	assert.Greater(t, p.Probabilities()[2], 0.9)
}

func TestPursuitUpdate(t *testing.T) {
	p, err := NewPursuit(2, 0.5, rand.NewSource(0))
	require.NoError(t, err)

	p.Learn(1, 1)
	assert.InDeltaSlice(t, []float64{0.25, 0.75}, p.Probabilities(), 1e-12)

	p.Learn(1, 1)
	assert.InDeltaSlice(t, []float64{0.125, 0.875}, p.Probabilities(), 1e-12)
}

func TestInvalidConstruction(t *testing.T) {
	src := rand.NewSource(0)
	for _, e := range []float64{0, 1, -0.1} {
		_, err := NewEpsilonGreedy(2, e, src)
		assert.True(t, rlerr.IsInvalidConfig(err), "epsilon %v", e)
		_, err = NewDecayEpsilon(2, e, 0.9, src)
		assert.True(t, rlerr.IsInvalidConfig(err), "epsilon %v", e)
	}
	for _, temp := range []float64{0, -5} {
		_, err := NewSoftmax(2, temp, src)
		assert.True(t, rlerr.IsInvalidConfig(err), "temperature %v", temp)
	}

	_, err := NewEpsilonGreedy(0, 0.1, src)
	assert.True(t, rlerr.IsInvalidConfig(err))
	_, err = NewUCB(2, 1)
	assert.True(t, rlerr.IsInvalidConfig(err))
	_, err = NewUCB1(2, -1)
	assert.True(t, rlerr.IsInvalidConfig(err))
	_, err = NewUCB2(2, 0)
	assert.True(t, rlerr.IsInvalidConfig(err))
	_, err = NewPursuit(2, 0, src)
	assert.True(t, rlerr.IsInvalidConfig(err))
}

func TestTypedConfig(t *testing.T) {
	data := []byte(`{"Type": "UCB1-MAB", "Config": {}}`)

	var typed agent.TypedConfig
	require.NoError(t, typed.UnmarshalJSON(data))
	assert.Equal(t, agent.UCB1MAB, typed.Type)

	config, err := typed.Bandit()
	require.NoError(t, err)
	require.NoError(t, config.Validate())

	a, err := config.CreateAgent(3, 0)
	require.NoError(t, err)
	u, ok := a.(*UCB1)
	require.True(t, ok)
	assert.Equal(t, DefaultUCB1C, u.c)

	data = []byte(`{"Type": "Softmax-MAB", "Config": {"Temperature": -1}}`)
	require.NoError(t, typed.UnmarshalJSON(data))
	assert.True(t, rlerr.IsInvalidConfig(typed.Config.Validate()))

	_, err = typed.Tabular()
	assert.Error(t, err)
}
