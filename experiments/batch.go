package experiments

import (
	"fmt"
	"math/rand/v2"
	"splendor/engine"
	"splendor/experiments/metrics"
	"splendor/game"
	"splendor/searcher"
	"splendor/searcher/agent"
	"splendor/utils"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Stats summarises a batch of games between the same two agents. Seat 0 is
// "player 1".
type Stats struct {
	Games      int
	Wins       [game.NumPlayers]int
	Draws      int
	Unfinished int // Cut short by the turn cap
	// AvgTurns[i] is the mean game length of the games seat i won.
	AvgTurns     [game.NumPlayers]float64
	AvgDrawTurns float64
	Duration     time.Duration
}

func (s Stats) String() string {
	return fmt.Sprintf("player 1 won %d (avg %.1f turns), player 2 won %d (avg %.1f turns), %d draws, %d unfinished, %d games in %v",
		s.Wins[0], s.AvgTurns[0], s.Wins[1], s.AvgTurns[1], s.Draws, s.Unfinished, s.Games, s.Duration.Round(time.Millisecond))
}

type Settings struct {
	Games    int
	Seed     int64
	Parallel int    // Games played at once
	Root     string // Directory receiving experiments/<name>/<run id>
}

func (s Settings) withDefaults() Settings {
	if s.Games <= 0 {
		s.Games = 1
	}
	if s.Parallel <= 0 {
		s.Parallel = 1
	}
	if s.Root == "" {
		s.Root = "."
	}
	return s
}

// Result is the outcome of one game of a batch.
type Result struct {
	Winner      int
	GameMetric  metrics.GameMetric
	MoveMetrics []metrics.MoveMetric
}

// Batch plays settings.Games games of config1 in seat 0 against config2 in
// seat 1. Game i is dealt from seed+i, so a batch is reproducible whatever
// the parallelism.
func Batch(config1, config2 metrics.AgentConfig, settings Settings) (Stats, []Result) {
	settings = settings.withDefaults()
	start := time.Now()

	results := make([]Result, settings.Games)
	var g errgroup.Group
	g.SetLimit(settings.Parallel)
	for i := range results {
		g.Go(func() error {
			rng := utils.NewRand(settings.Seed + int64(i))
			winner, gameMetric, moveMetrics := runGame(config1, config2, rng)
			results[i] = Result{winner, gameMetric, moveMetrics}
			log.Debug().Msgf("completed game %d of %d with winner: %d", i+1, settings.Games, winner)
			return nil
		})
	}
	_ = g.Wait()

	stats := summarise(results)
	stats.Duration = time.Since(start)
	return stats, results
}

func summarise(results []Result) Stats {
	var stats Stats
	var turns [game.NumPlayers][]int
	var drawTurns []int
	for _, r := range results {
		stats.Games++
		switch r.Winner {
		case 0, 1:
			stats.Wins[r.Winner]++
			turns[r.Winner] = append(turns[r.Winner], r.GameMetric.TotalMoves)
		case game.Draw:
			stats.Draws++
			drawTurns = append(drawTurns, r.GameMetric.TotalMoves)
		default:
			stats.Unfinished++
		}
	}
	for i := range turns {
		stats.AvgTurns[i] = utils.Mean(turns[i])
	}
	stats.AvgDrawTurns = utils.Mean(drawTurns)
	return stats
}

// runGame deals a position from rng and plays config1 in seat 0 against
// config2 in seat 1.
func runGame(config1, config2 metrics.AgentConfig, rng *rand.Rand) (int, metrics.GameMetric, []metrics.MoveMetric) {
	p := game.NewPosition(rng)
	agents := [game.NumPlayers]agent.Agent{
		NewAgent(config1, utils.Split(rng)),
		NewAgent(config2, utils.Split(rng)),
	}
	e := engine.LocalEngine(p, agents)
	return e.Run()
}

// NewAgent builds the agent described by config. Minimax agents draw their
// randomness from rng.
func NewAgent(config metrics.AgentConfig, rng *rand.Rand) agent.Agent {
	if config.Kind == metrics.RandomAgent {
		return agent.NewRandomAgent(rng)
	}
	return agent.NewMinimaxAgent(createMinimax(config, rng))
}

func createMinimax(config metrics.AgentConfig, rng *rand.Rand) *searcher.Minimax {
	options := []searcher.Option{searcher.WithRand(rng)}

	if config.MaxPly > 0 {
		options = append(options, searcher.WithMaxPly(config.MaxPly))
	}
	if config.StateSamplingRate > 0 {
		options = append(options, searcher.WithStateSamplingRate(config.StateSamplingRate))
	}
	if config.ReturnSamplingRate > 0 {
		options = append(options, searcher.WithReturnSamplingRate(config.ReturnSamplingRate))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.TimeBudget > 0 {
		options = append(options, searcher.WithTimeBudget(config.TimeBudget))
	}
	if config.Weights != (game.Weights{}) {
		options = append(options, searcher.WithWeights(config.Weights))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMinimax(options...)
}
