package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID of seat 0
	Agent2 int // AgentConfig.ID of seat 1
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
	runID   uuid.UUID
}

// NewWriter creates experiments/<name>/<run id> under root.
func NewWriter(root, name string) (*Writer, error) {
	runID := uuid.New()
	baseDir := filepath.Join(root, "experiments", name, runID.String())
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
		runID:   runID,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) RunID() uuid.UUID {
	return w.runID
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "name", "kind", "max_ply", "state_sampling_rate", "return_sampling_rate", "goroutines", "time_budget", "weights"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		weights := make([]string, len(config.Weights))
		for i, v := range config.Weights {
			weights[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Name,
			config.Kind,
			strconv.Itoa(config.MaxPly),
			strconv.FormatFloat(config.StateSamplingRate, 'g', -1, 64),
			strconv.FormatFloat(config.ReturnSamplingRate, 'g', -1, 64),
			strconv.Itoa(config.Goroutines),
			config.TimeBudget.String(),
			strings.Join(weights, " "),
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "score1", "score2", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.StartingPlayer),
			strconv.Itoa(record.Winner),
			strconv.Itoa(record.Scores[0]),
			strconv.Itoa(record.Scores[1]),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "action", "hash", "duration", "nodes", "leaves", "cutoffs", "candidates", "timed_out"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			record.Action,
			strconv.FormatUint(uint64(record.Hash), 16),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Cutoffs),
			strconv.Itoa(record.Candidates),
			strconv.FormatBool(record.TimedOut),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}
