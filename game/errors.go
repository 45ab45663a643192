package game

import "errors"

var (
	// ErrInvalidAction is the rejection returned by Validate and Apply.
	ErrInvalidAction = errors.New("invalid action")
	ErrGameOver      = errors.New("game is over")
	ErrOutOfTurn     = errors.New("not this player's turn")
	// ErrMalformedAction is returned when action text cannot be parsed.
	ErrMalformedAction = errors.New("malformed action")
)
