// meta/meta.go
package meta

// MAX_PLY is the default search depth, root included.
const MAX_PLY = 3

// STATE_SAMPLING_RATE is the default fraction of hidden-deck successors kept.
const STATE_SAMPLING_RATE = 0.1

// RETURN_SAMPLING_RATE is the default fraction of token-return takes kept.
const RETURN_SAMPLING_RATE = 0.25

// GO_ROUTINES defines the number of goroutines splitting the root moves.
const GO_ROUTINES = 1

// MAX_TURNS caps a game so a pair of passive agents cannot loop forever.
const MAX_TURNS = 300

// NUM_GAMES is the default number of games in a batch.
const NUM_GAMES = 100
