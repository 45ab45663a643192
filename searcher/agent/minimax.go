package agent

import (
	"splendor/experiments/metrics"
	"splendor/game"
	"splendor/searcher"
)

type minimaxAgent struct {
	searcher searcher.Searcher
}

// NewMinimaxAgent returns an agent that plays the searcher's best action.
func NewMinimaxAgent(s searcher.Searcher) Agent {
	return minimaxAgent{searcher: s}
}

func (a minimaxAgent) FindMove(p *game.Position) (game.Action, metrics.SearchMetric) {
	return a.searcher.Search(p)
}
