package searcher

import (
	"fmt"
	"math"
	"slices"
	"splendor/game"
	"splendor/utils"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/require"
)

func containsAction(actions []game.Action, action game.Action) bool {
	return slices.ContainsFunc(actions, func(a game.Action) bool {
		return a.String() == action.String()
	})
}

func TestNewMinimax(t *testing.T) {
	t.Run("malformed configs panic", func(t *testing.T) {
		require.Panics(t, func() { NewMinimax(WithMaxPly(1)) })
		require.Panics(t, func() { NewMinimax(WithStateSamplingRate(0)) })
		require.Panics(t, func() { NewMinimax(WithStateSamplingRate(1.5)) })
		require.Panics(t, func() { NewMinimax(WithReturnSamplingRate(-0.1)) })
		require.Panics(t, func() { NewMinimax(WithGoroutines(0)) })
	})

	t.Run("defaults are accepted", func(t *testing.T) {
		require.NotPanics(t, func() { NewMinimax() })
		require.Equal(t, 4, NewMinimax(WithMaxPly(4)).MaxPly())
	})
}

func TestSearch(t *testing.T) {
	t.Run("returns a legal action", func(t *testing.T) {
		p := game.NewPosition(utils.NewRand(1))
		m := NewMinimax(
			WithMaxPly(2),
			WithStateSamplingRate(1),
			WithReturnSamplingRate(1),
			WithRand(utils.NewRand(2)),
			WithMetrics(),
		)

		action, metric := m.Search(p)

		require.NotNil(t, action)
		require.True(t, containsAction(game.LegalActions(p), action))
		require.Equal(t, len(game.LegalActions(p)), metric.Candidates)
		require.Positive(t, metric.Leaves)
		require.False(t, metric.TimedOut)
	})

	t.Run("does not modify the position", func(t *testing.T) {
		p := game.NewPosition(utils.NewRand(3))
		before := p.Copy()

		NewMinimax(WithRand(utils.NewRand(4))).Search(p)

		require.Equal(t, before, p)
	})

	t.Run("same seed same action", func(t *testing.T) {
		p := game.NewPosition(utils.NewRand(5))
		first, _ := NewMinimax(WithRand(utils.NewRand(6))).Search(p)
		second, _ := NewMinimax(WithRand(utils.NewRand(6))).Search(p)

		require.Equal(t, first.String(), second.String())
	})

	t.Run("parallel search is deterministic", func(t *testing.T) {
		p := game.NewPosition(utils.NewRand(7))
		search := func() game.Action {
			action, _ := NewMinimax(
				WithGoroutines(4),
				WithRand(utils.NewRand(8)),
			).Search(p)
			return action
		}

		first := search()
		require.True(t, containsAction(game.LegalActions(p), first))
		require.Equal(t, first.String(), search().String())
	})

	t.Run("over position yields no action", func(t *testing.T) {
		p := game.NewPosition(utils.NewRand(9))
		p.Stage = game.Over

		action, _ := NewMinimax().Search(p)

		require.Nil(t, action)
	})

	t.Run("stopped clock never times out", func(t *testing.T) {
		p := game.NewPosition(utils.NewRand(10))
		clock := quartz.NewMock(t)

		bounded, metric := NewMinimax(
			WithTimeBudget(time.Millisecond),
			WithClock(clock),
			WithRand(utils.NewRand(11)),
			WithMetrics(),
		).Search(p)
		unbounded, _ := NewMinimax(WithRand(utils.NewRand(11))).Search(p)

		require.False(t, metric.TimedOut)
		require.Equal(t, unbounded.String(), bounded.String())
	})

	t.Run("expired budget still answers", func(t *testing.T) {
		p := game.NewPosition(utils.NewRand(12))
		clock := quartz.NewMock(t)
		evaluate := func(p *game.Position, player int) float64 {
			clock.Advance(time.Second)
			return 0
		}

		action, metric := NewMinimax(
			WithMaxPly(2),
			WithTimeBudget(time.Second),
			WithClock(clock),
			WithEvaluationFn(evaluate),
			WithMetrics(),
		).Search(p)

		require.True(t, metric.TimedOut)
		require.Equal(t, 1, metric.Leaves)
		require.True(t, containsAction(game.LegalActions(p), action))
	})

	t.Run("prefers an immediate win", func(t *testing.T) {
		p := game.NewPosition(utils.NewRand(13))
		mover := p.ToMove
		p.Stage = game.FinalRound
		p.Starting = game.Opponent(mover)
		p.Score[mover] = 14
		p.Score[game.Opponent(mover)] = 14
		card := p.Market[0][0]
		card.Points = 1
		p.Market[0][0] = card
		p.Tokens[mover] = game.Tokens{game.Gold: 5}
		p.Supply[game.Gold] = 0
		// Nobody else can be attracted, so the purchase carries no noble
		p.Nobles = nil

		action, _ := NewMinimax(
			WithMaxPly(2),
			WithStateSamplingRate(1),
			WithReturnSamplingRate(1),
			WithRand(utils.NewRand(14)),
		).Search(p)

		next, err := game.Apply(p, action)
		require.NoError(t, err)
		require.True(t, next.IsOver())
		require.Equal(t, mover, next.Winner())
	})
}

func TestMoveValue(t *testing.T) {
	t.Run("deterministic move value is the child value", func(t *testing.T) {
		p := game.NewPosition(utils.NewRand(15))
		m := NewMinimax(WithMaxPly(2), WithEvaluationFn(func(p *game.Position, player int) float64 {
			return float64(p.Tokens[player].Total())
		}))
		s := &search{Minimax: m, rng: utils.NewRand(16), root: p.ToMove}

		take := game.TakeTokens{Take: game.Tokens{1, 1, 1, 0, 0, 0}}
		require.Equal(t, 3.0, s.moveValue(p, take, 1, math.Inf(-1), math.Inf(1)))
	})
}

// fullValue is plain minimax over every legal action and every successor,
// without a window.
func fullValue(s *search, p *game.Position, ply int) float64 {
	if ply >= s.maxPly || p.IsOver() {
		return s.evaluate(p, s.root)
	}
	maximizing := isMaximizing(ply)
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	for _, action := range game.LegalActions(p) {
		successors := s.successors(p, action)
		values := make([]float64, len(successors))
		for i, next := range successors {
			values[i] = fullValue(s, next, ply+1)
		}
		v := utils.Mean(values)
		if maximizing {
			best = max(best, v)
		} else {
			best = min(best, v)
		}
	}
	return best
}

// trimmed shortens every deck so that chance moves have few outcomes.
func trimmed(seed int64, deckSize int) *game.Position {
	p := game.NewPosition(utils.NewRand(seed))
	for t := range p.Decks {
		p.Decks[t] = p.Decks[t][:deckSize]
	}
	return p
}

func TestAlphaBeta(t *testing.T) {
	cutoffs := 0
	for seed := int64(20); seed < 23; seed++ {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			p := trimmed(seed, 2)
			m := NewMinimax(
				WithMaxPly(3),
				WithStateSamplingRate(1),
				WithReturnSamplingRate(1),
				WithMetrics(),
			)
			s := &search{Minimax: m, rng: utils.NewRand(seed), root: p.ToMove}

			m.metrics.Start(m.maxPly, 1)
			_, pruned := s.bestMove(p, 1, math.Inf(-1), math.Inf(1), game.LegalActions(p))
			metric := m.metrics.Complete()

			require.InDelta(t, fullValue(s, p, 1), pruned, 1e-6)
			cutoffs += metric.Cutoffs
		})
	}
	require.Positive(t, cutoffs)
}

func TestChanceMoveValue(t *testing.T) {
	t.Run("market reservation is the mean over the deck", func(t *testing.T) {
		p := trimmed(17, 5)
		// Scores the card that refilled the first tier-1 slot
		m := NewMinimax(
			WithMaxPly(2),
			WithStateSamplingRate(1),
			WithEvaluationFn(func(p *game.Position, player int) float64 {
				return float64(p.Market[0][0].ID)
			}),
		)
		s := &search{Minimax: m, rng: utils.NewRand(18), root: p.ToMove}

		ids := make([]float64, 0, len(p.Decks[0]))
		for _, card := range p.Decks[0] {
			ids = append(ids, float64(card.ID))
		}

		reserve := game.NewReserve(1, 0)
		require.Len(t, s.successors(p, reserve), len(ids))
		require.InDelta(t, utils.Mean(ids), s.moveValue(p, reserve, 1, math.Inf(-1), math.Inf(1)), 1e-9)
	})

	t.Run("sampled successors keep the deck intact", func(t *testing.T) {
		p := trimmed(19, 5)
		m := NewMinimax(WithMaxPly(2), WithStateSamplingRate(1))
		s := &search{Minimax: m, rng: utils.NewRand(20), root: p.ToMove}

		for _, next := range s.successors(p, game.NewReserve(2, 1)) {
			tier := append([]game.Card{next.Market[1][1]}, next.Decks[1]...)
			require.ElementsMatch(t, p.Decks[1], tier)
		}
	})
}
