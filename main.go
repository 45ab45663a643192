package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type CLI struct {
	Verbose    bool          `short:"v" help:"Log search and game details"`
	Config     string        `short:"c" help:"HCL file defining agents and experiments" default:"splendor.hcl" type:"path"`
	Seed       int64         `help:"Seed for dealing and search" default:"1"`
	Play       PlayCmd       `cmd:"" help:"Play against an agent in the terminal"`
	Batch      BatchCmd      `cmd:"" help:"Play a batch of games between two agents"`
	Experiment ExperimentCmd `cmd:"" help:"Run an experiment and store CSV records"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("splendor"),
		kong.Description("Two-player Splendor with a sampled minimax agent"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cli.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
