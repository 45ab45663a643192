package config

import (
	"os"
	"path/filepath"
	"splendor/experiments/metrics"
	"splendor/game"
	"splendor/meta"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "splendor.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		config, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
		require.NoError(t, err)
		require.Equal(t, Default(), config)
		require.NoError(t, config.Validate())
	})

	t.Run("agents and experiment", func(t *testing.T) {
		path := writeConfig(t, `
agent "deep" {
  max_ply     = 5
  time_budget = "250ms"
  weights     = [1, 2, 3, 4, 5, 6, 7, 8, 9, 10]
}

agent "random" {
  kind = "random"
}

experiment {
  name  = "deep-vs-random"
  games = 10
  seed  = 42

  matchup {
    first  = "deep"
    second = "random"
  }
}
`)
		config, err := Load(path)
		require.NoError(t, err)

		configs, err := config.AgentConfigs()
		require.NoError(t, err)
		require.Len(t, configs, 2)

		deep := configs[0]
		require.Equal(t, 1, deep.ID)
		require.Equal(t, metrics.MinimaxAgent, deep.Kind)
		require.Equal(t, 5, deep.MaxPly)
		require.Equal(t, meta.STATE_SAMPLING_RATE, deep.StateSamplingRate)
		require.Equal(t, 250*time.Millisecond, deep.TimeBudget)
		require.Equal(t, game.Weights{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, deep.Weights)
		require.Equal(t, metrics.RandomAgent, configs[1].Kind)

		require.Equal(t, "deep-vs-random", config.Experiment.Name)
		require.Equal(t, int64(42), config.Experiment.Seed)
		require.Equal(t, 1, config.Experiment.Parallel)

		matchUps, err := config.MatchUps()
		require.NoError(t, err)
		require.Len(t, matchUps, 1)
		require.Equal(t, "deep", matchUps[0][0].Name)
		require.Equal(t, "random", matchUps[0][1].Name)
	})

	t.Run("syntax errors are reported", func(t *testing.T) {
		_, err := Load(writeConfig(t, `agent "broken" {`))
		require.ErrorContains(t, err, "failed to parse HCL file")
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		cases := map[string]string{
			"kind":        `agent "a" { kind = "mcts" }`,
			"max_ply":     `agent "a" { max_ply = 1 }`,
			"rate":        `agent "a" { state_sampling_rate = 2 }`,
			"weights":     `agent "a" { weights = [1, 2] }`,
			"time_budget": `agent "a" { time_budget = "soon" }`,
			"duplicate":   "agent \"a\" {}\nagent \"a\" {}",
			"matchup":     "agent \"a\" {}\nexperiment {\n  matchup {\n    first = \"a\"\n    second = \"b\"\n  }\n}",
		}
		for name, contents := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := Load(writeConfig(t, contents))
				require.Error(t, err)
			})
		}
	})
}

func TestAgent(t *testing.T) {
	config := Default()

	minimax, err := config.Agent("minimax")
	require.NoError(t, err)
	require.Equal(t, meta.MAX_PLY, minimax.MaxPly)

	_, err = config.Agent("nobody")
	require.Error(t, err)
}
