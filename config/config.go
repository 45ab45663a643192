package config

import (
	"fmt"
	"os"
	"splendor/experiments/metrics"
	"splendor/game"
	"splendor/meta"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the contents of an agents/experiment HCL file.
type Config struct {
	Agents     []AgentConfig     `hcl:"agent,block"`
	Experiment *ExperimentConfig `hcl:"experiment,block"`
}

// AgentConfig defines one named agent
type AgentConfig struct {
	Name               string    `hcl:"name,label"`
	Kind               string    `hcl:"kind,optional"`
	MaxPly             int       `hcl:"max_ply,optional"`
	StateSamplingRate  float64   `hcl:"state_sampling_rate,optional"`
	ReturnSamplingRate float64   `hcl:"return_sampling_rate,optional"`
	Goroutines         int       `hcl:"goroutines,optional"`
	TimeBudget         string    `hcl:"time_budget,optional"`
	Weights            []float64 `hcl:"weights,optional"`
}

// ExperimentConfig defines a series of matchups between named agents
type ExperimentConfig struct {
	Name     string          `hcl:"name,optional"`
	Games    int             `hcl:"games,optional"`
	Seed     int64           `hcl:"seed,optional"`
	Parallel int             `hcl:"parallel,optional"`
	Output   string          `hcl:"output,optional"`
	MatchUps []MatchUpConfig `hcl:"matchup,block"`
}

// MatchUpConfig seats agent First as player 1 and Second as player 2
type MatchUpConfig struct {
	First  string `hcl:"first"`
	Second string `hcl:"second"`
}

// Default returns a minimax agent and a random agent playing one batch.
func Default() *Config {
	config := &Config{
		Agents: []AgentConfig{
			{Name: "minimax", Kind: metrics.MinimaxAgent},
			{Name: "random", Kind: metrics.RandomAgent},
		},
		Experiment: &ExperimentConfig{
			MatchUps: []MatchUpConfig{{First: "minimax", Second: "random"}},
		},
	}
	config.applyDefaults()
	return config
}

// Load loads configuration from an HCL file. A missing file yields Default.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return &config, nil
}

func (c *Config) applyDefaults() {
	for i := range c.Agents {
		agent := &c.Agents[i]
		if agent.Kind == "" {
			agent.Kind = metrics.MinimaxAgent
		}
		if agent.Kind != metrics.MinimaxAgent {
			continue
		}
		if agent.MaxPly == 0 {
			agent.MaxPly = meta.MAX_PLY
		}
		if agent.StateSamplingRate == 0 {
			agent.StateSamplingRate = meta.STATE_SAMPLING_RATE
		}
		if agent.ReturnSamplingRate == 0 {
			agent.ReturnSamplingRate = meta.RETURN_SAMPLING_RATE
		}
		if agent.Goroutines == 0 {
			agent.Goroutines = meta.GO_ROUTINES
		}
	}

	if c.Experiment == nil {
		return
	}
	if c.Experiment.Name == "" {
		c.Experiment.Name = "custom"
	}
	if c.Experiment.Games == 0 {
		c.Experiment.Games = meta.NUM_GAMES
	}
	if c.Experiment.Parallel == 0 {
		c.Experiment.Parallel = 1
	}
	if c.Experiment.Output == "" {
		c.Experiment.Output = "."
	}
}

// Validate checks value ranges and that every matchup names a defined agent.
func (c *Config) Validate() error {
	names := make(map[string]bool, len(c.Agents))
	for _, agent := range c.Agents {
		if names[agent.Name] {
			return fmt.Errorf("agent %s: defined twice", agent.Name)
		}
		names[agent.Name] = true

		if _, err := agent.convert(0); err != nil {
			return err
		}
	}

	if c.Experiment == nil {
		return nil
	}
	if c.Experiment.Games < 1 {
		return fmt.Errorf("experiment %s: games must be positive", c.Experiment.Name)
	}
	if c.Experiment.Parallel < 1 {
		return fmt.Errorf("experiment %s: parallel must be positive", c.Experiment.Name)
	}
	for _, m := range c.Experiment.MatchUps {
		for _, name := range []string{m.First, m.Second} {
			if !names[name] {
				return fmt.Errorf("experiment %s: unknown agent %s", c.Experiment.Name, name)
			}
		}
	}
	return nil
}

// AgentConfigs converts every agent block, numbering them from 1 in file order.
func (c *Config) AgentConfigs() ([]metrics.AgentConfig, error) {
	configs := make([]metrics.AgentConfig, 0, len(c.Agents))
	for i, agent := range c.Agents {
		config, err := agent.convert(i + 1)
		if err != nil {
			return nil, err
		}
		configs = append(configs, config)
	}
	return configs, nil
}

// Agent returns the converted agent block called name.
func (c *Config) Agent(name string) (metrics.AgentConfig, error) {
	for i, agent := range c.Agents {
		if agent.Name == name {
			return agent.convert(i + 1)
		}
	}
	return metrics.AgentConfig{}, fmt.Errorf("unknown agent %s", name)
}

// MatchUps resolves the experiment's matchups to agent configs.
func (c *Config) MatchUps() ([][2]metrics.AgentConfig, error) {
	if c.Experiment == nil {
		return nil, nil
	}
	matchUps := make([][2]metrics.AgentConfig, 0, len(c.Experiment.MatchUps))
	for _, m := range c.Experiment.MatchUps {
		first, err := c.Agent(m.First)
		if err != nil {
			return nil, err
		}
		second, err := c.Agent(m.Second)
		if err != nil {
			return nil, err
		}
		matchUps = append(matchUps, [2]metrics.AgentConfig{first, second})
	}
	return matchUps, nil
}

func (a AgentConfig) convert(id int) (metrics.AgentConfig, error) {
	config := metrics.AgentConfig{
		ID:                 id,
		Name:               a.Name,
		Kind:               a.Kind,
		MaxPly:             a.MaxPly,
		StateSamplingRate:  a.StateSamplingRate,
		ReturnSamplingRate: a.ReturnSamplingRate,
		Goroutines:         a.Goroutines,
	}

	switch a.Kind {
	case metrics.RandomAgent:
		return config, nil
	case metrics.MinimaxAgent:
	default:
		return config, fmt.Errorf("agent %s: invalid kind %s", a.Name, a.Kind)
	}

	if a.MaxPly < 2 {
		return config, fmt.Errorf("agent %s: max_ply must be at least 2", a.Name)
	}
	if a.StateSamplingRate <= 0 || a.StateSamplingRate > 1 {
		return config, fmt.Errorf("agent %s: state_sampling_rate must be in (0, 1]", a.Name)
	}
	if a.ReturnSamplingRate <= 0 || a.ReturnSamplingRate > 1 {
		return config, fmt.Errorf("agent %s: return_sampling_rate must be in (0, 1]", a.Name)
	}
	if a.Goroutines < 1 {
		return config, fmt.Errorf("agent %s: goroutines must be positive", a.Name)
	}
	if a.TimeBudget != "" {
		budget, err := time.ParseDuration(a.TimeBudget)
		if err != nil {
			return config, fmt.Errorf("agent %s: %w", a.Name, err)
		}
		config.TimeBudget = budget
	}
	if len(a.Weights) > 0 {
		weights, err := game.ParseWeights(a.Weights)
		if err != nil {
			return config, fmt.Errorf("agent %s: %w", a.Name, err)
		}
		config.Weights = weights
	}
	return config, nil
}
