package engine

import (
	"splendor/experiments/metrics"
	"splendor/game"
	"splendor/meta"
	"splendor/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

type Local struct {
	State    *game.Position
	Agents   [game.NumPlayers]agent.Agent
	MaxTurns int
}

// LocalEngine plays agents[0] in seat 0 against agents[1] in seat 1 from p.
func LocalEngine(p *game.Position, agents [game.NumPlayers]agent.Agent) *Local {
	for _, a := range agents {
		if a == nil {
			panic("need an agent for each seat")
		}
	}
	return &Local{
		State:    p,
		Agents:   agents,
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run executes the entire game loop until the game is over.
func (e *Local) Run() (int, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Starting,
		StartTime:      time.Now(),
	}
	log.Debug().Msgf("player %d is starting", e.State.Starting)

	var moveMetrics []metrics.MoveMetric
	for !e.State.IsOver() && e.State.Turn < e.MaxTurns {
		player := e.State.ToMove
		action, searchMetric := e.Agents[player].FindMove(e.State)
		action = e.checked(action)

		next, err := game.Apply(e.State, action)
		if err != nil {
			// checked only returns valid actions
			panic(err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         e.State.Turn + 1,
			Player:       player,
			Action:       action.String(),
			Hash:         next.Hash(),
			SearchMetric: searchMetric,
		})
		log.Trace().Int("turn", e.State.Turn).Int("player", player).Stringer("action", action).Msg("move played")
		e.State = next
	}

	if !e.State.IsOver() {
		log.Warn().Msgf("stopped after %d turns (no winner yet)", e.State.Turn)
	}

	winner := e.State.Winner()
	gameMetric.Winner = winner
	gameMetric.Scores = e.State.Score
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	return winner, gameMetric, moveMetrics
}

// checked replaces an invalid agent action with the first legal one.
func (e *Local) checked(action game.Action) game.Action {
	if action != nil {
		err := game.Validate(e.State, action)
		if err == nil {
			return action
		}
		log.Warn().Err(err).Int("player", e.State.ToMove).Msg("agent returned an invalid action, falling back")
	} else {
		log.Warn().Int("player", e.State.ToMove).Msg("agent returned no action, falling back")
	}
	return game.LegalActions(e.State)[0]
}
