package metrics

import (
	"splendor/game"
	"sync/atomic"
	"time"
)

// Agent kinds of an AgentConfig.
const (
	MinimaxAgent = "minimax"
	RandomAgent  = "random"
)

// AgentConfig describes one agent taking part in an experiment.
type AgentConfig struct {
	ID                 int
	Name               string
	Kind               string // MinimaxAgent or RandomAgent
	MaxPly             int
	StateSamplingRate  float64
	ReturnSamplingRate float64
	Goroutines         int
	TimeBudget         time.Duration
	Weights            game.Weights
}

type SearchMetric struct {
	MaxPly     int
	Goroutines int
	Duration   time.Duration
	Nodes      int // Positions expanded
	Leaves     int // Positions evaluated
	Cutoffs    int // Alpha-beta breaks
	Candidates int // Root actions explored
	TimedOut   bool
}

type MoveMetric struct {
	Step   int
	Player int // Seat 0 or 1
	Action string
	Hash   game.StateHash // Of the position after the move
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int
	Winner         int // Seat, game.Draw or game.NoWinner
	Scores         [game.NumPlayers]int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(maxPly, goroutines int)
	AddNode()
	AddLeaf()
	AddCutoff()
	SetCandidates(n int)
	SetTimedOut()
	Complete() SearchMetric
}

type collector struct {
	maxPly     int
	goroutines int
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	cutoffs    atomic.Int64
	candidates atomic.Int64
	timedOut   atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(maxPly, goroutines int) {
	m.startTime = time.Now()
	m.maxPly = maxPly
	m.goroutines = goroutines
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
	m.candidates.Store(0)
	m.timedOut.Store(false)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) SetCandidates(n int) {
	m.candidates.Store(int64(n))
}

func (m *collector) SetTimedOut() {
	m.timedOut.Store(true)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		MaxPly:     m.maxPly,
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Leaves:     int(m.leaves.Load()),
		Cutoffs:    int(m.cutoffs.Load()),
		Candidates: int(m.candidates.Load()),
		TimedOut:   m.timedOut.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(maxPly, goroutines int) {}
func (m *dummyCollector) AddNode()                     {}
func (m *dummyCollector) AddLeaf()                     {}
func (m *dummyCollector) AddCutoff()                   {}
func (m *dummyCollector) SetCandidates(n int)          {}
func (m *dummyCollector) SetTimedOut()                 {}
func (m *dummyCollector) Complete() SearchMetric       { return SearchMetric{} }
