package searcher

import (
	"math"
	"math/rand/v2"
	"splendor/experiments/metrics"
	"splendor/game"
	"splendor/meta"
	"splendor/utils"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Option func(m *Minimax)

// Minimax is a depth-limited alpha-beta searcher over sampled successor
// positions. Ply 1 is the root.
type Minimax struct {
	maxPly             int
	stateSamplingRate  float64
	returnSamplingRate float64
	goroutines         int
	budget             time.Duration
	evaluate           game.Evaluate
	clock              quartz.Clock
	rng                *rand.Rand
	metrics            metrics.Collector
}

func WithMaxPly(maxPly int) Option {
	return func(m *Minimax) {
		m.maxPly = maxPly
	}
}

// WithStateSamplingRate sets the fraction of hidden-card successors explored.
func WithStateSamplingRate(rate float64) Option {
	return func(m *Minimax) {
		m.stateSamplingRate = rate
	}
}

// WithReturnSamplingRate sets the fraction of token-return takes explored.
func WithReturnSamplingRate(rate float64) Option {
	return func(m *Minimax) {
		m.returnSamplingRate = rate
	}
}

func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		m.goroutines = goroutines
	}
}

// WithTimeBudget bounds a single Search. Zero means unbounded.
func WithTimeBudget(budget time.Duration) Option {
	return func(m *Minimax) {
		if budget > 0 {
			m.budget = budget
		}
	}
}

func WithWeights(w game.Weights) Option {
	return func(m *Minimax) {
		m.evaluate = game.LinearEvaluator(w)
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithClock(clock quartz.Clock) Option {
	return func(m *Minimax) {
		if clock != nil {
			m.clock = clock
		}
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(m *Minimax) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		maxPly:             meta.MAX_PLY,
		stateSamplingRate:  meta.STATE_SAMPLING_RATE,
		returnSamplingRate: meta.RETURN_SAMPLING_RATE,
		goroutines:         meta.GO_ROUTINES,
		evaluate:           game.LinearEvaluator(game.DefaultWeights()),
		clock:              quartz.NewReal(),
		rng:                utils.NewRand(0),
		metrics:            metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.maxPly < 2 {
		panic("max ply must be at least 2")
	}
	if m.stateSamplingRate <= 0 || m.stateSamplingRate > 1 {
		panic("state sampling rate must be in (0, 1]")
	}
	if m.returnSamplingRate <= 0 || m.returnSamplingRate > 1 {
		panic("return sampling rate must be in (0, 1]")
	}
	if m.goroutines < 1 {
		panic("goroutines must be at least 1")
	}
	return m
}

func (m *Minimax) MaxPly() int {
	return m.maxPly
}

// Search returns the best root action for p.ToMove, or nil when the game is
// over.
func (m *Minimax) Search(p *game.Position) (game.Action, metrics.SearchMetric) {
	m.metrics.Start(m.maxPly, m.goroutines)

	s := &search{
		Minimax: m,
		rng:     m.rng,
		root:    p.ToMove,
	}
	if m.budget > 0 {
		s.deadline = m.clock.Now().Add(m.budget)
	}

	if p.IsOver() {
		return nil, m.metrics.Complete()
	}
	actions := s.candidates(p)
	m.metrics.SetCandidates(len(actions))

	var best int
	if m.goroutines > 1 && len(actions) > 1 {
		best = s.searchParallel(p, actions)
	} else {
		best, _ = s.bestMove(p, 1, math.Inf(-1), math.Inf(1), actions)
	}
	metric := m.metrics.Complete()

	log.Debug().
		Int("player", p.ToMove).
		Str("action", actions[best].String()).
		Int("candidates", len(actions)).
		Int("nodes", metric.Nodes).
		Int("leaves", metric.Leaves).
		Bool("timedOut", metric.TimedOut).
		Msg("search complete")
	return actions[best], metric
}

// search is the state of one Search call. Parallel branches each get their
// own copy with a split generator.
type search struct {
	*Minimax
	rng      *rand.Rand
	root     int
	deadline time.Time
}

func (s *search) expired() bool {
	if s.deadline.IsZero() {
		return false
	}
	if s.clock.Now().Before(s.deadline) {
		return false
	}
	s.metrics.SetTimedOut()
	return true
}

// value backs up the value of p reached at ply, from the root player's view.
func (s *search) value(p *game.Position, ply int, alpha, beta float64) float64 {
	if ply >= s.maxPly || p.IsOver() {
		s.metrics.AddLeaf()
		return s.evaluate(p, s.root)
	}
	_, v := s.bestMove(p, ply, alpha, beta, s.candidates(p))
	return v
}

// bestMove scans actions at ply and returns the index and value of the best
// one for the side to move. The first action is always searched; later ones
// are skipped once the deadline passes.
func (s *search) bestMove(p *game.Position, ply int, alpha, beta float64, actions []game.Action) (int, float64) {
	s.metrics.AddNode()
	maximizing := isMaximizing(ply)

	bestIndex := 0
	bestValue := math.Inf(1)
	if maximizing {
		bestValue = math.Inf(-1)
	}
	for i, action := range actions {
		if i > 0 && s.expired() {
			break
		}
		v := s.moveValue(p, action, ply, alpha, beta)
		if maximizing {
			if v > bestValue {
				bestIndex, bestValue = i, v
			}
			alpha = max(alpha, bestValue)
		} else {
			if v < bestValue {
				bestIndex, bestValue = i, v
			}
			beta = min(beta, bestValue)
		}
		if alpha >= beta {
			s.metrics.AddCutoff()
			break
		}
	}
	return bestIndex, bestValue
}

// moveValue is the mean value over the sampled successors of action. The
// window is only narrowed for deterministic moves; a bound on one sampled
// outcome says nothing about the mean.
func (s *search) moveValue(p *game.Position, action game.Action, ply int, alpha, beta float64) float64 {
	successors := s.successors(p, action)
	if len(successors) == 1 {
		return s.value(successors[0], ply+1, alpha, beta)
	}
	values := make([]float64, len(successors))
	for i, next := range successors {
		values[i] = s.value(next, ply+1, math.Inf(-1), math.Inf(1))
	}
	return utils.Mean(values)
}

// searchParallel values every root action with a full window, splitting the
// actions over the configured goroutines. Each action gets its own generator
// drawn up front so the result does not depend on scheduling.
func (s *search) searchParallel(p *game.Position, actions []game.Action) int {
	branches := make([]*search, len(actions))
	for i := range actions {
		branches[i] = &search{
			Minimax:  s.Minimax,
			rng:      utils.Split(s.rng),
			root:     s.root,
			deadline: s.deadline,
		}
	}

	s.metrics.AddNode()
	values := make([]float64, len(actions))
	var g errgroup.Group
	g.SetLimit(s.goroutines)
	for i, action := range actions {
		g.Go(func() error {
			values[i] = math.Inf(-1)
			if i > 0 && branches[i].expired() {
				return nil
			}
			values[i] = branches[i].moveValue(p, action, 1, math.Inf(-1), math.Inf(1))
			return nil
		})
	}
	_ = g.Wait()

	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}
