package player

import (
	"splendor/experiments/metrics"
	"splendor/game"
	"splendor/gamemaster"
	"splendor/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Controller seats an agent at a gamemaster engine. Deciding and submitting
// are separate so a caller can search off its own goroutine.
type Controller struct {
	seat   int
	agent  agent.Agent
	engine gamemaster.Engine
}

func NewController(seat int, a agent.Agent, engine gamemaster.Engine) *Controller {
	return &Controller{
		seat:   seat,
		agent:  a,
		engine: engine,
	}
}

func (c *Controller) Seat() int {
	return c.seat
}

// Think asks the agent for its action in p.
func (c *Controller) Think(p *game.Position) (game.Action, metrics.SearchMetric) {
	return c.agent.FindMove(p)
}

// Submit plays action for the seat. An invalid or nil action is replaced
// with the first legal one; the action actually played is returned.
func (c *Controller) Submit(action game.Action) (game.Action, error) {
	state := c.engine.State()
	if action == nil || !game.IsValid(state, action) {
		if state.IsOver() {
			return nil, game.ErrGameOver
		}
		log.Warn().Int("player", c.seat).Msg("agent returned an invalid action, falling back")
		action = game.LegalActions(state)[0]
	}
	return action, c.engine.Play(c.seat, action)
}

// Step thinks and submits when it is the seat's turn. It reports whether an
// action was played.
func (c *Controller) Step() (bool, error) {
	state := c.engine.State()
	if state.IsOver() || state.ToMove != c.seat {
		return false, nil
	}
	action, _ := c.Think(state)
	_, err := c.Submit(action)
	return err == nil, err
}
