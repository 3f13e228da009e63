package main

import (
	"flag"
	"log"
	"os"

	"gonum.org/v1/gonum/stat"

	_ "github.com/samuelfneumann/rlagents/agent/mab"
	_ "github.com/samuelfneumann/rlagents/agent/tabular"
	"github.com/samuelfneumann/rlagents/experiment"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("rlagents: ")

	configFile := flag.String("config", "", "experiment configuration file")
	flag.Parse()

	if *configFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	c, err := experiment.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	result, err := c.Run(os.Stderr)
	if err != nil {
		log.Fatalf("could not run experiment: %v", err)
	}

	if c.EnvConf.Environment.Bandit() {
		if n := len(result.Bandit.Rewards); n > 0 {
			log.Printf("%v on %v | average reward: %.4f | average regret: "+
				"%.4f | optimal: %.4f", c.AgentConf.Type, c.EnvConf.Environment,
				result.Bandit.Rewards[n-1], result.Bandit.Regrets[n-1],
				result.Bandit.Optimal[n-1])
		}
		return
	}

	returns := result.Returns
	if len(returns) == 0 {
		return
	}
	n := len(returns) / 10
	if n == 0 {
		n = 1
	}
	last := returns[len(returns)-n:]
	log.Printf("%v on %v | mean return: %.4f | mean return (last %d "+
		"episodes): %.4f", c.AgentConf.Type, c.EnvConf.Environment,
		stat.Mean(returns, nil), len(last), stat.Mean(last, nil))
}
