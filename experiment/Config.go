package experiment

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/samuelfneumann/rlagents/agent"
	"github.com/samuelfneumann/rlagents/environment/envconfig"
	"github.com/samuelfneumann/rlagents/experiment/trackers"
	"github.com/samuelfneumann/rlagents/rlerr"
)

// Config represents a configuration of an experiment. If the
// environment is a bandit, Steps is the number of trials, otherwise it
// is the number of episodes. If SaveDir is not empty, the data of each
// run is saved there with gob.
type Config struct {
	EnvConf   envconfig.Config
	AgentConf agent.TypedConfig
	Steps     int
	Seed      uint64
	Progress  bool   `json:",omitempty"`
	SaveDir   string `json:",omitempty"`
}

// LoadConfig reads a JSON Config from a file
func LoadConfig(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("loadConfig: %w", err)
	}

	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("loadConfig: %w", err)
	}
	return c, c.Validate()
}

// Validate returns an error if the Config is invalid
func (c Config) Validate() error {
	if c.Steps < 0 {
		return rlerr.InvalidConfig("validate", "negative steps %d", c.Steps)
	}
	if c.AgentConf.Config == nil {
		return rlerr.InvalidConfig("validate", "no agent config")
	}
	if err := c.AgentConf.Validate(); err != nil {
		return err
	}

	_, isBandit := c.AgentConf.Config.(agent.BanditConfig)
	if isBandit != c.EnvConf.Environment.Bandit() {
		return rlerr.InvalidConfig("validate", "agent %v cannot be run on "+
			"environment %v", c.AgentConf.Type, c.EnvConf.Environment)
	}
	return nil
}

// Result holds the outcome of running an experiment. Bandit is only set
// for bandit experiments and Returns only for tabular experiments.
type Result struct {
	Bandit  BanditResult
	Returns []float64
}

// Run creates the environment and agent of the Config and runs the
// experiment. Progress is written to progress when the Config asks for
// it.
func (c Config) Run(progress io.Writer) (Result, error) {
	if err := c.Validate(); err != nil {
		return Result{}, err
	}

	if c.EnvConf.Environment.Bandit() {
		return c.runBandit()
	}
	if !c.Progress {
		progress = nil
	}
	return c.runTabular(progress)
}

func (c Config) runBandit() (Result, error) {
	e, err := c.EnvConf.Create(c.Seed)
	if err != nil {
		return Result{}, err
	}
	conf, err := c.AgentConf.Bandit()
	if err != nil {
		return Result{}, err
	}
	a, err := conf.CreateAgent(e.Actions(), c.Seed)
	if err != nil {
		return Result{}, err
	}

	t := []trackers.Tracker{
		trackers.NewRegret(c.path("regret.bin")),
		trackers.NewOptimal(c.path("optimal.bin")),
	}

	result, err := RunBandit(e, a, c.Steps, t...)
	if err == nil && c.SaveDir != "" {
		Save(t...)
	}
	return Result{Bandit: result}, err
}

func (c Config) runTabular(progress io.Writer) (Result, error) {
	e, err := c.EnvConf.CreateTabular(c.Seed)
	if err != nil {
		return Result{}, err
	}
	conf, err := c.AgentConf.Tabular()
	if err != nil {
		return Result{}, err
	}
	a, err := conf.CreateAgent(e.States(), e.Actions(), c.Seed)
	if err != nil {
		return Result{}, err
	}

	t := []trackers.Tracker{
		trackers.NewReturn(c.path("return.bin")),
		trackers.NewEpisodeLength(c.path("length.bin")),
	}

	returns, err := RunTabular(e, a, c.Steps, progress, t...)
	if err == nil && c.SaveDir != "" {
		Save(t...)
	}
	return Result{Returns: returns}, err
}

func (c Config) path(name string) string {
	return filepath.Join(c.SaveDir, name)
}
