package game

import (
	"fmt"
	"strings"
)

// BlindIndex addresses the face-down deck of a tier in a ReserveCard.
const BlindIndex = MarketSize

// NoNoble marks a BuyCard that claims no noble.
const NoNoble = -1

// ReserveSource is the BuyCard source for the mover's own reserve.
const ReserveSource = 0

// Action is one of TakeTokens, ReserveCard or BuyCard. Actions are plain
// comparable values and never reference the Position they came from.
type Action interface {
	fmt.Stringer
	isAction()
}

// TakeTokens takes coloured tokens from the supply and, when the mover would
// exceed MaxTokens, returns tokens down to exactly MaxTokens. The zero value
// is the forced pass.
type TakeTokens struct {
	Take   Tokens
	Return Tokens
}

// ReserveCard moves a market card (Index 0-3) or the top of a deck
// (Index == BlindIndex) of Tier (1-3) to the mover's reserve and hands out a
// gold token when the supply has one. Return holds at most one coloured token.
type ReserveCard struct {
	Tier   int
	Index  int
	Return Tokens
}

// BuyCard purchases a card from Source (ReserveSource or tier 1-3) at Index
// and claims the noble at index Noble of the noble row, or NoNoble.
type BuyCard struct {
	Source int
	Index  int
	Noble  int
}

func (TakeTokens) isAction()  {}
func (ReserveCard) isAction() {}
func (BuyCard) isAction()     {}

// Pass is the zero-token move injected when nothing else is legal.
func Pass() TakeTokens {
	return TakeTokens{}
}

func NewBuy(source, index int) BuyCard {
	return BuyCard{Source: source, Index: index, Noble: NoNoble}
}

func NewReserve(tier, index int) ReserveCard {
	return ReserveCard{Tier: tier, Index: index}
}

// Blind reports whether the reservation draws face down.
func (a ReserveCard) Blind() bool {
	return a.Index == BlindIndex
}

// ReturnKind is the kind handed back, or NoKind.
func (a ReserveCard) ReturnKind() Kind {
	for k, n := range a.Return {
		if n > 0 {
			return Kind(k)
		}
	}
	return NoKind
}

func (a TakeTokens) String() string {
	var b strings.Builder
	b.WriteString("take")
	for k := 0; k < NumColors; k++ {
		fmt.Fprintf(&b, " %d", a.Take[k])
	}
	if !a.Return.IsZero() {
		for k := 0; k < NumColors; k++ {
			fmt.Fprintf(&b, " %d", a.Return[k])
		}
	}
	return b.String()
}

func (a ReserveCard) String() string {
	if k := a.ReturnKind(); k != NoKind {
		return fmt.Sprintf("reserve %d %d %d", a.Tier, a.Index, int(k))
	}
	return fmt.Sprintf("reserve %d %d", a.Tier, a.Index)
}

func (a BuyCard) String() string {
	if a.Noble != NoNoble {
		return fmt.Sprintf("buy %d %d %d", a.Source, a.Index, a.Noble)
	}
	return fmt.Sprintf("buy %d %d", a.Source, a.Index)
}
