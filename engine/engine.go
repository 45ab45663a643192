package engine

import "splendor/experiments/metrics"

type Engine interface {
	// Run plays a game until it is over or the turn cap is reached. The winner
	// is a seat, game.Draw, or game.NoWinner when the cap cut the game short.
	Run() (winner int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
