package agent

import (
	"math/rand/v2"
	"splendor/experiments/metrics"
	"splendor/game"
	"time"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal action.
func NewRandomAgent(rng *rand.Rand) Agent {
	return &randomAgent{rng: rng}
}

func (a *randomAgent) FindMove(p *game.Position) (game.Action, metrics.SearchMetric) {
	start := time.Now()
	if p.IsOver() {
		return nil, metrics.SearchMetric{}
	}
	actions := game.LegalActions(p)
	action := actions[a.rng.IntN(len(actions))]
	return action, metrics.SearchMetric{
		Duration:   time.Since(start),
		Candidates: len(actions),
	}
}
