package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/rlagents/environment"
	"github.com/samuelfneumann/rlagents/rlerr"
)

var _ environment.Environment = &Table{}

// chain returns a 3-state chain where action 1 moves right and action 0
// stays put. Entering state 2 pays out 1.
func chain(t *testing.T, ender environment.Ender) *Table {
	next := [][]int{{0, 1}, {1, 2}, {2, 2}}
	reward := [][]float64{{0, 0}, {0, 1}, {0, 0}}
	env, err := New(next, reward, []int{2}, environment.SingleStart(0), ender)
	require.NoError(t, err)
	return env
}

func TestEpisode(t *testing.T) {
	env := chain(t, nil)

	step := env.Reset()
	assert.True(t, step.First())
	assert.Equal(t, 0, step.Observation)

	step, done, err := env.Step(1)
	require.NoError(t, err)
	assert.False(t, done)
	assert.True(t, step.Mid())
	assert.Equal(t, 1, step.Observation)
	assert.Equal(t, 0.0, step.Reward)

	step, done, err = env.Step(1)
	require.NoError(t, err)
	assert.True(t, done)
	assert.True(t, step.Last())
	assert.Equal(t, 2, step.Observation)
	assert.Equal(t, 1.0, step.Reward)
	assert.Equal(t, 2, step.Number)
	assert.Equal(t, step, env.LastTimeStep())
	assert.True(t, env.Terminal(2))

	step = env.Reset()
	assert.Equal(t, 0, step.Observation)
	assert.Equal(t, 0, step.Number)
}

func TestStepLimit(t *testing.T) {
	env := chain(t, environment.NewStepLimit(3))

	var done bool
	steps := 0
	for !done {
		var err error
		_, done, err = env.Step(0)
		require.NoError(t, err)
		steps++
	}
	assert.Equal(t, 3, steps)
	last := env.LastTimeStep()
	assert.True(t, last.Last())
	assert.Equal(t, 3, last.Number)
}

func TestStarter(t *testing.T) {
	next := [][]int{{0}, {1}, {2}}
	reward := [][]float64{{0}, {0}, {0}}
	starter, err := environment.NewCategoricalStarter([]int{1, 2}, nil, 1)
	require.NoError(t, err)

	env, err := New(next, reward, nil, starter, nil)
	require.NoError(t, err)

	seen := map[int]int{}
	for i := 0; i < 1000; i++ {
		seen[env.Reset().Observation]++
	}
	assert.Equal(t, 0, seen[0])
	assert.Greater(t, seen[1], 400)
	assert.Greater(t, seen[2], 400)
}

func TestInvalid(t *testing.T) {
	start := environment.SingleStart(0)

	_, err := New(nil, nil, nil, start, nil)
	assert.True(t, rlerr.IsInvalidConfig(err))

	_, err = New([][]int{{0, 1}, {1}}, [][]float64{{0, 0}, {0}}, nil, start,
		nil)
	assert.True(t, rlerr.IsInvalidConfig(err))

	_, err = New([][]int{{0, 2}, {1, 1}}, [][]float64{{0, 0}, {0, 0}}, nil,
		start, nil)
	assert.True(t, rlerr.IsInvalidConfig(err))

	_, err = New([][]int{{0}}, [][]float64{{0}}, []int{1}, start, nil)
	assert.True(t, rlerr.IsInvalidConfig(err))

	_, err = New([][]int{{0}}, [][]float64{{0}}, nil, nil, nil)
	assert.True(t, rlerr.IsInvalidConfig(err))

	assert.Panics(t, func() {
		New([][]int{{0}}, [][]float64{{0}}, nil, environment.SingleStart(3),
			nil)
	})

	env := chain(t, nil)
	_, _, err = env.Step(2)
	assert.True(t, rlerr.IsOutOfRange(err))
}
