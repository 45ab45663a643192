package gamemaster

import (
	"math/rand/v2"
	"splendor/game"
	"sync"
)

// UpdateGetter returns the next unseen (action, position) pair, or nil, nil
// when none is pending.
type UpdateGetter func() (game.Action, *game.Position)

type Engine interface {
	Init() (*game.Position, UpdateGetter)
	Play(player int, action game.Action) error
	State() *game.Position
}

type update struct {
	action game.Action
	state  *game.Position
}

type localEngine struct {
	mu       sync.Mutex
	rng      *rand.Rand
	state    *game.Position
	pending  []update
	gameOver bool
}

func NewLocalEngine(rng *rand.Rand) *localEngine {
	return &localEngine{rng: rng}
}

// Init deals a new game and returns a copy of the opening position.
func (e *localEngine) Init() (*game.Position, UpdateGetter) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = game.NewPosition(e.rng)
	e.pending = nil
	e.gameOver = false

	return e.state.Copy(), func() (game.Action, *game.Position) {
		e.mu.Lock()
		defer e.mu.Unlock()
		if len(e.pending) == 0 {
			return nil, nil
		}
		u := e.pending[0]
		e.pending = e.pending[1:]
		return u.action, u.state.Copy()
	}
}

func (e *localEngine) State() *game.Position {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Copy()
}

// Play applies action for player. It fails with game.ErrGameOver,
// game.ErrOutOfTurn or an error wrapping game.ErrInvalidAction.
func (e *localEngine) Play(player int, action game.Action) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.gameOver {
		return game.ErrGameOver
	}
	if player != e.state.ToMove {
		return game.ErrOutOfTurn
	}

	next, err := game.Apply(e.state, action)
	if err != nil {
		return err
	}
	e.state = next
	e.gameOver = next.IsOver()
	e.pending = append(e.pending, update{action: action, state: next})
	return nil
}
