package searcher

import (
	"splendor/experiments/metrics"
	"splendor/game"
)

// Searcher picks an action for the player to move in p.
type Searcher interface {
	Search(p *game.Position) (game.Action, metrics.SearchMetric)
}

func isMaximizing(ply int) bool {
	return ply%2 == 1
}
