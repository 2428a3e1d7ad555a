package config

import (
	"strings"

	"github.com/pingcap/errors"

	"montyhall/internal/montyhall"
)

type SimConfig struct {
	Iterations int      `yaml:"iterations"`
	Seed       int64    `yaml:"seed"` // 0 = derive from the clock
	Checkpoint int      `yaml:"checkpoint"`
	Strategies []string `yaml:"strategies"`
}

func Default() *SimConfig {
	cfg := &SimConfig{Iterations: montyhall.DefaultIterations}
	for _, s := range montyhall.Strategies() {
		cfg.Strategies = append(cfg.Strategies, s.String())
	}
	return cfg
}

func (c *SimConfig) normalize() {
	names := make([]string, 0, len(c.Strategies))
	for _, s := range c.Strategies {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			names = append(names, s)
		}
	}
	if len(names) == 0 {
		for _, s := range montyhall.Strategies() {
			names = append(names, s.String())
		}
	}
	c.Strategies = names
}

func (c *SimConfig) Validate() error {
	if c.Iterations <= 0 {
		return errors.Annotatef(montyhall.ErrInvalidIterations, "iterations=%d", c.Iterations)
	}
	if c.Checkpoint < 0 {
		return errors.Errorf("checkpoint must be >= 0: %d", c.Checkpoint)
	}
	_, err := c.StrategyList()
	return err
}

// StrategyList parses Strategies in order, rejecting unknown or repeated names.
func (c *SimConfig) StrategyList() ([]montyhall.Strategy, error) {
	if len(c.Strategies) == 0 {
		return nil, errors.New("sim config has no strategies")
	}
	seen := make(map[montyhall.Strategy]bool, len(c.Strategies))
	out := make([]montyhall.Strategy, 0, len(c.Strategies))
	for _, name := range c.Strategies {
		s, err := montyhall.ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		if seen[s] {
			return nil, errors.Errorf("duplicate strategy: %s", s)
		}
		seen[s] = true
		out = append(out, s)
	}
	return out, nil
}
