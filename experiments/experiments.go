package experiments

import (
	"fmt"
	"splendor/experiments/metrics"

	"github.com/rs/zerolog/log"
)

var baseline = metrics.AgentConfig{ID: 0, Name: "random", Kind: metrics.RandomAgent}

// RunDepthExperiment pits 3-, 5- and 7-ply minimax agents against the random
// baseline.
func RunDepthExperiment(settings Settings) error {
	depthConfigs := []metrics.AgentConfig{
		{ID: 1, Name: "minimax-3", Kind: metrics.MinimaxAgent, MaxPly: 3},
		{ID: 2, Name: "minimax-5", Kind: metrics.MinimaxAgent, MaxPly: 5},
		{ID: 3, Name: "minimax-7", Kind: metrics.MinimaxAgent, MaxPly: 7},
	}

	// Each matchup pairs a minimax agent against the baseline
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, baseline})
	}

	return RunMatchUps("depth", append(depthConfigs, baseline), matchUps, settings)
}

// RunSamplingExperiment pits 3-ply agents with growing state sampling rates
// against the sparsest one.
func RunSamplingExperiment(settings Settings) error {
	sparse := metrics.AgentConfig{ID: 0, Name: "sampling-0.05", Kind: metrics.MinimaxAgent, MaxPly: 3, StateSamplingRate: 0.05}
	samplingConfigs := []metrics.AgentConfig{
		{ID: 1, Name: "sampling-0.1", Kind: metrics.MinimaxAgent, MaxPly: 3, StateSamplingRate: 0.1},
		{ID: 2, Name: "sampling-0.25", Kind: metrics.MinimaxAgent, MaxPly: 3, StateSamplingRate: 0.25},
		{ID: 3, Name: "sampling-0.5", Kind: metrics.MinimaxAgent, MaxPly: 3, StateSamplingRate: 0.5},
	}

	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range samplingConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{sparse, config})
	}

	return RunMatchUps("sampling", append(samplingConfigs, sparse), matchUps, settings)
}

// RunMatchUps plays settings.Games games per matchup and stores the agent
// configs, game records and move records as CSV.
func RunMatchUps(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, settings Settings) error {
	settings = settings.withDefaults()

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1, config2 := matchup[0], matchup[1]
		log.Info().Msgf("starting matchup %d of %d between %s and %s...", mi+1, len(matchUps), config1.Name, config2.Name)

		// Every matchup sees the same deals
		stats, results := Batch(config1, config2, settings)
		for _, result := range results {
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: result.GameMetric,
			})
			for _, mm := range result.MoveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
		}
		log.Info().Msgf("completed matchup %d of %d: %v", mi+1, len(matchUps), stats)
	}

	log.Info().Msgf("completed %s experiment", name)
	return store(name, settings.Root, configs, gameRecords, moveRecords)
}

func store(name, root string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}

	log.Info().Stringer("run", writer.RunID()).Str("dir", writer.Dir()).Msg("stored experiment records")
	return nil
}
