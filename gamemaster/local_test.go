package gamemaster

import (
	"errors"
	"reflect"
	"splendor/game"
	"splendor/utils"
	"testing"
)

func TestLocalEngineInit(t *testing.T) {
	engine := NewLocalEngine(utils.NewRand(1))
	state, getUpdate := engine.Init()

	if state == nil {
		t.Fatal("expected a Position, got nil")
	}
	if state.Stage != game.InProgress {
		t.Errorf("expected stage in progress, got %v", state.Stage)
	}
	if state.Supply != game.InitialSupply() {
		t.Errorf("initial supply is not as expected: got %v", state.Supply)
	}

	// Check that getUpdate returns nil if no actions have been played
	action, newState := getUpdate()
	if action != nil || newState != nil {
		t.Errorf("expected no update yet, got action=%v state=%v", action, newState)
	}
}

func TestLocalEnginePlay_ValidAction(t *testing.T) {
	engine := NewLocalEngine(utils.NewRand(2))
	state, getUpdate := engine.Init()

	mover := state.ToMove
	action := game.LegalActions(state)[0]
	err := engine.Play(mover, action)
	if err != nil {
		t.Errorf("expected no error for a valid action, got %v", err)
	}

	played, updated := getUpdate()
	if played == nil || updated == nil {
		t.Fatal("expected an update after playing an action, got none")
	}
	if played.String() != action.String() {
		t.Errorf("expected update for %v, got %v", action, played)
	}
	if updated.ToMove == mover {
		t.Errorf("expected the turn to pass to the opponent")
	}
	if updated.Turn != 1 {
		t.Errorf("expected turn 1, got %d", updated.Turn)
	}

	// Updates are consumed
	played, updated = getUpdate()
	if played != nil || updated != nil {
		t.Errorf("expected no further update, got action=%v state=%v", played, updated)
	}
}

func TestLocalEnginePlay_OutOfTurn(t *testing.T) {
	engine := NewLocalEngine(utils.NewRand(3))
	state, _ := engine.Init()

	action := game.LegalActions(state)[0]
	err := engine.Play(game.Opponent(state.ToMove), action)
	if !errors.Is(err, game.ErrOutOfTurn) {
		t.Errorf("expected ErrOutOfTurn, got %v", err)
	}
}

func TestLocalEnginePlay_IllegalAction(t *testing.T) {
	engine := NewLocalEngine(utils.NewRand(4))
	state, getUpdate := engine.Init()

	// Nothing is reserved yet
	illegal := game.NewBuy(game.ReserveSource, 0)
	err := engine.Play(state.ToMove, illegal)
	if !errors.Is(err, game.ErrInvalidAction) {
		t.Errorf("expected ErrInvalidAction, got %v", err)
	}

	action, newState := getUpdate()
	if action != nil || newState != nil {
		t.Errorf("expected no update after a rejected action")
	}
	if !reflect.DeepEqual(engine.State(), state) {
		t.Error("expected the position to be unchanged after a rejected action")
	}
}

func TestLocalEnginePlay_GameOver(t *testing.T) {
	engine := NewLocalEngine(utils.NewRand(5))
	engine.Init()

	engine.mu.Lock()
	engine.state.Stage = game.FinalRound
	engine.state.Starting = game.Opponent(engine.state.ToMove)
	engine.mu.Unlock()

	// The last seat of the final round moves and the game ends
	state := engine.State()
	err := engine.Play(state.ToMove, game.LegalActions(state)[0])
	if err != nil {
		t.Errorf("did not expect error on the final action, got %v", err)
	}
	if !engine.State().IsOver() {
		t.Fatal("expected the game to be over")
	}

	err = engine.Play(engine.State().ToMove, game.Pass())
	if !errors.Is(err, game.ErrGameOver) {
		t.Errorf("expected ErrGameOver, got %v", err)
	}
}

func TestLocalEngine_IdenticalInitStates(t *testing.T) {
	state1, _ := NewLocalEngine(utils.NewRand(6)).Init()
	state2, _ := NewLocalEngine(utils.NewRand(6)).Init()

	if !reflect.DeepEqual(state1, state2) {
		t.Error("expected the same initial position for the same seed, got differences")
	}
}
