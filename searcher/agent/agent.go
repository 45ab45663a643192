package agent

import (
	"splendor/experiments/metrics"
	"splendor/game"
)

type Agent interface {
	// FindMove returns the chosen action and search metrics (if collected). The
	// action is nil only when p is over.
	FindMove(p *game.Position) (game.Action, metrics.SearchMetric)
}
