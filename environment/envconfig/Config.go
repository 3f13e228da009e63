// Package envconfig provides configuration structs for configuring
// environments. Environment configurations in this package are JSON
// serializable.
package envconfig

import (
	env "github.com/samuelfneumann/rlagents/environment"
	"github.com/samuelfneumann/rlagents/environment/bandit"
	"github.com/samuelfneumann/rlagents/environment/gridworld"
	"github.com/samuelfneumann/rlagents/environment/table"
	"github.com/samuelfneumann/rlagents/rlerr"
)

// EnvName stores the name of environments that can be configured with
// this package
type EnvName string

// Environments available for configuration
const (
	Gaussian      EnvName = "Gaussian"
	Deterministic EnvName = "Deterministic"
	GridWorld     EnvName = "GridWorld"
	Table         EnvName = "Table"
)

// Bandit returns whether or not the named environment is a bandit
func (e EnvName) Bandit() bool {
	return e == Gaussian || e == Deterministic
}

// Config implements a specific configuration of a specific environment.
// Only the fields relevant to the named environment are used:
//
//	Environment			Fields
//	Gaussian			Arms
//	Deterministic		Rewards
//	GridWorld			Rows, Cols, Goal, Start, EpisodeCutoff
//	Table				Next, Reward, Terminal, Start, EpisodeCutoff
//
// If Start lists more than one state, episodes start in one of them
// chosen uniformly at random. An EpisodeCutoff of 0 disables the cutoff.
type Config struct {
	Environment EnvName

	Arms    int       `json:",omitempty"`
	Rewards []float64 `json:",omitempty"`

	Rows int            `json:",omitempty"`
	Cols int            `json:",omitempty"`
	Goal gridworld.Goal `json:",omitempty"`

	Next     [][]int     `json:",omitempty"`
	Reward   [][]float64 `json:",omitempty"`
	Terminal []int       `json:",omitempty"`

	Start         []int `json:",omitempty"`
	EpisodeCutoff int   `json:",omitempty"`
}

// Create returns the environment described by the Config
func (c Config) Create(seed uint64) (env.Environment, error) {
	var (
		e   env.Environment
		err error
	)

	// Assign only on success so that a failed constructor never
	// produces a non-nil Environment holding a nil pointer
	switch c.Environment {
	case Gaussian:
		var g *bandit.Gaussian
		if g, err = bandit.NewGaussian(c.Arms, seed); err == nil {
			e = g
		}

	case Deterministic:
		var d *bandit.Deterministic
		if d, err = bandit.NewDeterministic(c.Rewards); err == nil {
			e = d
		}

	case GridWorld, Table:
		var t *table.Table
		if t, err = c.CreateTabular(seed); err == nil {
			e = t
		}

	default:
		err = rlerr.InvalidConfig("create", "no such environment %q",
			c.Environment)
	}

	return e, err
}

// CreateTabular returns the tabular environment described by the
// Config. An error is returned if the Config describes a bandit.
func (c Config) CreateTabular(seed uint64) (*table.Table, error) {
	if c.Environment != GridWorld && c.Environment != Table {
		return nil, rlerr.InvalidConfig("createTabular",
			"%q is not a tabular environment", c.Environment)
	}

	starter, err := c.starter(seed)
	if err != nil {
		return nil, err
	}

	var ender env.Ender
	if c.EpisodeCutoff > 0 {
		ender = env.NewStepLimit(c.EpisodeCutoff)
	} else if c.EpisodeCutoff < 0 {
		return nil, rlerr.InvalidConfig("createTabular",
			"negative episode cutoff %d", c.EpisodeCutoff)
	}

	if c.Environment == GridWorld {
		return gridworld.New(c.Rows, c.Cols, c.Goal, starter, ender)
	}
	return table.New(c.Next, c.Reward, c.Terminal, starter, ender)
}

func (c Config) starter(seed uint64) (env.Starter, error) {
	switch len(c.Start) {
	case 0:
		return env.SingleStart(0), nil
	case 1:
		return env.SingleStart(c.Start[0]), nil
	}
	return env.NewCategoricalStarter(c.Start, nil, seed)
}
