package main

import (
	"fmt"
	"io"
	"os"
	"splendor/config"
	"splendor/experiments"
	"splendor/gamemaster"
	"splendor/tui"
	"splendor/utils"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type PlayCmd struct {
	Agent   string `short:"a" help:"Opponent agent name from the config" default:"minimax"`
	Seat    int    `short:"s" help:"Your seat, 1 or 2" default:"1" enum:"1,2"`
	LogFile string `help:"Write logs here while the board is on screen"`
}

func (c *PlayCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	agentConfig, err := cfg.Agent(c.Agent)
	if err != nil {
		return err
	}

	// The board owns the terminal
	var out io.Writer = io.Discard
	if c.LogFile != "" {
		f, err := os.Create(c.LogFile)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()

	rng := utils.NewRand(cli.Seed)
	opponent := experiments.NewAgent(agentConfig, utils.Split(rng))
	model := tui.NewModel(gamemaster.NewLocalEngine(rng), opponent, c.Seat-1)

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

type BatchCmd struct {
	First    string `help:"Agent in seat 1" default:"minimax"`
	Second   string `help:"Agent in seat 2" default:"random"`
	Games    int    `short:"n" help:"Number of games" default:"100"`
	Parallel int    `short:"p" help:"Games played at once" default:"1"`
}

func (c *BatchCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	first, err := cfg.Agent(c.First)
	if err != nil {
		return err
	}
	second, err := cfg.Agent(c.Second)
	if err != nil {
		return err
	}

	log.Info().Msgf("starting %d games between %s and %s...", c.Games, first.Name, second.Name)
	stats, _ := experiments.Batch(first, second, experiments.Settings{
		Games:    c.Games,
		Seed:     cli.Seed,
		Parallel: c.Parallel,
	})
	log.Info().Msgf("completed batch: %v", stats)
	fmt.Println(stats)
	return nil
}

type ExperimentCmd struct {
	Name     string `arg:"" help:"Experiment to run" enum:"depth,sampling,throughput,config" default:"config" optional:""`
	Games    int    `short:"n" help:"Games per matchup (0 uses the config)"`
	Parallel int    `short:"p" help:"Games played at once (0 uses the config)"`
	Output   string `short:"o" help:"Directory receiving the experiments folder (empty uses the config)" type:"path"`
}

func (c *ExperimentCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}

	settings := experiments.Settings{Seed: cli.Seed}
	if cfg.Experiment != nil {
		settings.Games = cfg.Experiment.Games
		settings.Parallel = cfg.Experiment.Parallel
		settings.Root = cfg.Experiment.Output
		if cfg.Experiment.Seed != 0 {
			settings.Seed = cfg.Experiment.Seed
		}
	}
	if c.Games > 0 {
		settings.Games = c.Games
	}
	if c.Parallel > 0 {
		settings.Parallel = c.Parallel
	}
	if c.Output != "" {
		settings.Root = c.Output
	}

	switch c.Name {
	case "depth":
		return experiments.RunDepthExperiment(settings)
	case "sampling":
		return experiments.RunSamplingExperiment(settings)
	case "throughput":
		return experiments.RunThroughputExperiment(settings)
	}

	if cfg.Experiment == nil {
		return fmt.Errorf("%s defines no experiment block", cli.Config)
	}
	configs, err := cfg.AgentConfigs()
	if err != nil {
		return err
	}
	matchUps, err := cfg.MatchUps()
	if err != nil {
		return err
	}
	return experiments.RunMatchUps(cfg.Experiment.Name, configs, matchUps, settings)
}
