package engine

import (
	"splendor/experiments/metrics"
	"splendor/game"
	"splendor/searcher"
	"splendor/searcher/agent"
	"splendor/utils"
	"testing"

	"github.com/stretchr/testify/require"
)

type passAgent struct{}

func (passAgent) FindMove(p *game.Position) (game.Action, metrics.SearchMetric) {
	return game.Pass(), metrics.SearchMetric{}
}

func TestLocalEngine(t *testing.T) {
	t.Run("random agents play to the end or the cap", func(t *testing.T) {
		p := game.NewPosition(utils.NewRand(7))
		e := LocalEngine(p, [game.NumPlayers]agent.Agent{
			agent.NewRandomAgent(utils.NewRand(8)),
			agent.NewRandomAgent(utils.NewRand(9)),
		})

		winner, gameMetric, moveMetrics := e.Run()

		require.Equal(t, e.State.Winner(), winner)
		require.Equal(t, winner, gameMetric.Winner)
		require.Equal(t, e.State.Turn, len(moveMetrics))
		require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
		require.Equal(t, p.Starting, gameMetric.StartingPlayer)
		require.True(t, e.State.IsOver() || e.State.Turn == e.MaxTurns)
		for i, m := range moveMetrics {
			require.Equal(t, i+1, m.Step)
			require.NotEmpty(t, m.Action)
		}
	})

	t.Run("invalid actions fall back to the first legal action", func(t *testing.T) {
		p := game.NewPosition(utils.NewRand(10))
		first := game.LegalActions(p)[0]
		e := LocalEngine(p, [game.NumPlayers]agent.Agent{passAgent{}, passAgent{}})
		e.MaxTurns = 1

		_, _, moveMetrics := e.Run()

		require.Len(t, moveMetrics, 1)
		require.Equal(t, first.String(), moveMetrics[0].Action)

		next, err := game.Apply(p, first)
		require.NoError(t, err)
		require.Equal(t, next.Hash(), moveMetrics[0].Hash)
		require.Equal(t, e.State.Hash(), moveMetrics[0].Hash)
	})

	t.Run("minimax against random", func(t *testing.T) {
		p := game.NewPosition(utils.NewRand(11))
		minimax := searcher.NewMinimax(
			searcher.WithMaxPly(2),
			searcher.WithRand(utils.NewRand(12)),
		)
		e := LocalEngine(p, [game.NumPlayers]agent.Agent{
			agent.NewMinimaxAgent(minimax),
			agent.NewRandomAgent(utils.NewRand(13)),
		})
		e.MaxTurns = 20

		_, _, moveMetrics := e.Run()

		require.Len(t, moveMetrics, 20)
		for _, m := range moveMetrics {
			_, err := game.ParseAction(m.Action)
			require.NoError(t, err)
		}
	})

	t.Run("missing agent panics", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(game.NewPosition(utils.NewRand(14)), [game.NumPlayers]agent.Agent{passAgent{}, nil})
		})
	})
}
