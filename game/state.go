package game

import (
	"encoding/binary"
	"hash/fnv"
	"io"
	"math/rand/v2"
	"slices"
)

// Stage tracks termination: InProgress -> FinalRound -> Over.
type Stage int

const (
	InProgress Stage = iota
	FinalRound
	Over
)

func (s Stage) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case FinalRound:
		return "final round"
	case Over:
		return "over"
	default:
		return "unknown"
	}
}

// Position is the complete public state of a two-player game. Players are
// seats 0 and 1. Decks are drawn from the tail.
type Position struct {
	Supply  Tokens
	Tokens  [NumPlayers]Tokens
	Cards   [NumPlayers]Bonuses // Owned-card counts per bonus colour
	Owned   [NumPlayers][]Card
	Reserve [NumPlayers][]Card
	Market  [NumTiers][]Card
	Decks   [NumTiers][]Card
	Nobles  []Noble
	Claimed [NumPlayers][]Noble
	Score   [NumPlayers]int

	ToMove   int
	Starting int
	Stage    Stage
	Turn     int // Completed moves
}

// NewPosition deals a standard two-player game using rng for the deck order,
// the nobles in play and the starting player.
func NewPosition(rng *rand.Rand) *Position {
	decks, nobles := Deal(rng)
	p := &Position{
		Supply: InitialSupply(),
		Decks:  decks,
		Nobles: nobles,
	}
	for t := range p.Market {
		p.Market[t] = make([]Card, 0, MarketSize)
		for i := 0; i < MarketSize; i++ {
			if card, ok := p.draw(t + 1); ok {
				p.Market[t] = append(p.Market[t], card)
			}
		}
	}
	p.ToMove = rng.IntN(NumPlayers)
	p.Starting = p.ToMove
	return p
}

// InitialSupply is the token supply of a two-player game.
func InitialSupply() Tokens {
	return Tokens{InitialColored, InitialColored, InitialColored, InitialColored, InitialColored, InitialGold}
}

// Copy returns a deep copy that shares no slices with p.
func (p *Position) Copy() *Position {
	c := *p
	for i := 0; i < NumPlayers; i++ {
		c.Owned[i] = slices.Clone(p.Owned[i])
		c.Reserve[i] = slices.Clone(p.Reserve[i])
		c.Claimed[i] = slices.Clone(p.Claimed[i])
	}
	for t := 0; t < NumTiers; t++ {
		c.Market[t] = slices.Clone(p.Market[t])
		c.Decks[t] = slices.Clone(p.Decks[t])
	}
	c.Nobles = slices.Clone(p.Nobles)
	return &c
}

func (p *Position) IsOver() bool {
	return p.Stage == Over
}

func (p *Position) IsFinalRound() bool {
	return p.Stage == FinalRound
}

// Winner returns the winning seat, Draw on equal scores, or NoWinner while
// the game is still running.
func (p *Position) Winner() int {
	if p.Stage != Over {
		return NoWinner
	}
	switch {
	case p.Score[0] > p.Score[1]:
		return 0
	case p.Score[1] > p.Score[0]:
		return 1
	default:
		return Draw
	}
}

func (p *Position) TotalTokens(player int) int {
	return p.Tokens[player].Total()
}

// DeckSize is the number of face-down cards left in a tier (1-3).
func (p *Position) DeckSize(tier int) int {
	return len(p.Decks[tier-1])
}

// Source returns the cards addressed by a BuyCard source: 0 is the player's
// reserve, 1-3 a market tier.
func (p *Position) Source(player, source int) []Card {
	if source == 0 {
		return p.Reserve[player]
	}
	if source < 1 || source > NumTiers {
		return nil
	}
	return p.Market[source-1]
}

func (p *Position) draw(tier int) (Card, bool) {
	deck := p.Decks[tier-1]
	if len(deck) == 0 {
		return Card{}, false
	}
	card := deck[len(deck)-1]
	p.Decks[tier-1] = deck[:len(deck)-1]
	return card, true
}

// refill replaces an emptied market slot from the tier's deck, or shrinks the
// row when the deck is exhausted.
func (p *Position) refill(tier, index int) {
	if card, ok := p.draw(tier); ok {
		p.Market[tier-1][index] = card
		return
	}
	p.Market[tier-1] = slices.Delete(p.Market[tier-1], index, index+1)
}

func (p *Position) Hash() StateHash {
	hasher := fnv.New64a()

	// Turn bookkeeping
	binary.Write(hasher, binary.LittleEndian, int64(p.ToMove))
	binary.Write(hasher, binary.LittleEndian, int64(p.Starting))
	binary.Write(hasher, binary.LittleEndian, int64(p.Stage))

	// Tokens
	for _, n := range p.Supply {
		binary.Write(hasher, binary.LittleEndian, int64(n))
	}
	for i := 0; i < NumPlayers; i++ {
		for _, n := range p.Tokens[i] {
			binary.Write(hasher, binary.LittleEndian, int64(n))
		}
		for _, n := range p.Cards[i] {
			binary.Write(hasher, binary.LittleEndian, int64(n))
		}
		binary.Write(hasher, binary.LittleEndian, int64(p.Score[i]))
		hashCards(hasher, p.Reserve[i])
	}

	// Board
	for t := 0; t < NumTiers; t++ {
		hashCards(hasher, p.Market[t])
		binary.Write(hasher, binary.LittleEndian, int64(len(p.Decks[t])))
	}
	for _, n := range p.Nobles {
		binary.Write(hasher, binary.LittleEndian, int64(n.ID))
	}

	return StateHash(hasher.Sum64())
}

func hashCards(w io.Writer, cards []Card) {
	binary.Write(w, binary.LittleEndian, int64(len(cards)))
	for _, c := range cards {
		binary.Write(w, binary.LittleEndian, int64(c.ID))
	}
}
