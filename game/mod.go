package game

import "fmt"

// Kind indexes token piles and card bonuses. The five colours come first so
// that a Bonuses vector lines up with the first five entries of Tokens.
type Kind int

const (
	Black Kind = iota
	Blue
	Green
	Red
	White
	Gold
)

// NoKind marks the absence of a kind, e.g. a reservation without a return.
const NoKind Kind = -1

const (
	NumColors   = 5
	NumKinds    = 6
	NumTiers    = 3
	NumPlayers  = 2
	NumFeatures = 10

	MarketSize    = 4
	NoblesInPlay  = 3
	MaxTokens     = 10
	MaxReserved   = 3
	WinningScore  = 15
	NoblePoints   = 3
	DoubleTakeMin = 4 // supply needed before two of one colour may be taken
	MaxDistinct   = 3

	InitialColored = 4
	InitialGold    = 5
)

const (
	NoWinner = -1
	Draw     = -2
)

var kindNames = [NumKinds]string{"black", "blue", "green", "red", "white", "gold"}

func (k Kind) String() string {
	if k < 0 || int(k) >= NumKinds {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Colors lists the five coloured kinds in index order.
func Colors() []Kind {
	return []Kind{Black, Blue, Green, Red, White}
}

// Tokens counts tokens per kind, gold last.
type Tokens [NumKinds]int

// Bonuses counts owned cards per colour.
type Bonuses [NumColors]int

func (t Tokens) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

func (t Tokens) Add(other Tokens) Tokens {
	for k := range t {
		t[k] += other[k]
	}
	return t
}

func (t Tokens) Sub(other Tokens) Tokens {
	for k := range t {
		t[k] -= other[k]
	}
	return t
}

func (t Tokens) IsZero() bool {
	return t == Tokens{}
}

// Single returns a vector holding n tokens of kind k.
func Single(k Kind, n int) Tokens {
	var t Tokens
	t[k] = n
	return t
}

func (b Bonuses) Total() int {
	total := 0
	for _, n := range b {
		total += n
	}
	return total
}

type StateHash uint64

// Evaluate scores a position from the given player's perspective. Larger is
// better for that player.
type Evaluate func(p *Position, player int) float64

// Opponent returns the other seat of a two-player game.
func Opponent(player int) int {
	return 1 - player
}
