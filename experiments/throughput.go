package experiments

import "splendor/experiments/metrics"

// RunThroughputExperiment measures root-parallel search. Both seats use the
// same config in each matchup for the same playing strength and similar game
// length.
func RunThroughputExperiment(settings Settings) error {
	configs := []metrics.AgentConfig{
		{ID: 1, Name: "goroutines-1", Kind: metrics.MinimaxAgent, MaxPly: 3, Goroutines: 1},
		{ID: 2, Name: "goroutines-2", Kind: metrics.MinimaxAgent, MaxPly: 3, Goroutines: 2},
		{ID: 3, Name: "goroutines-4", Kind: metrics.MinimaxAgent, MaxPly: 3, Goroutines: 4},
		{ID: 4, Name: "goroutines-8", Kind: metrics.MinimaxAgent, MaxPly: 3, Goroutines: 8},
	}

	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, config})
	}

	return RunMatchUps("throughput", configs, matchUps, settings)
}
