package game

import (
	"fmt"
	"slices"
)

// Validate reports whether the player to move may play a. It returns nil or
// an error wrapping ErrInvalidAction. It never modifies p.
func Validate(p *Position, a Action) error {
	if p.Stage == Over {
		return fmt.Errorf("%w: %w", ErrInvalidAction, ErrGameOver)
	}

	var err error
	switch a := a.(type) {
	case TakeTokens:
		err = validateTake(p, a)
	case ReserveCard:
		err = validateReserve(p, a)
	case BuyCard:
		err = validateBuy(p, a)
	default:
		err = fmt.Errorf("unknown action type %T", a)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAction, err)
	}
	return nil
}

// IsValid is Validate as a predicate.
func IsValid(p *Position, a Action) bool {
	return Validate(p, a) == nil
}

// Apply validates a and returns the resulting position. p is left untouched.
// A rejected action yields a nil position and an error wrapping
// ErrInvalidAction.
func Apply(p *Position, a Action) (*Position, error) {
	if err := Validate(p, a); err != nil {
		return nil, err
	}

	next := p.Copy()
	mover := next.ToMove
	switch a := a.(type) {
	case TakeTokens:
		next.Tokens[mover] = next.Tokens[mover].Add(a.Take).Sub(a.Return)
		next.Supply = next.Supply.Sub(a.Take).Add(a.Return)
	case ReserveCard:
		next.reserve(mover, a)
	case BuyCard:
		if err := next.buy(mover, a); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidAction, err)
		}
	}

	_, isBuy := a.(BuyCard)
	next.endTurn(mover, isBuy)
	return next, nil
}

func (p *Position) endTurn(mover int, bought bool) {
	if bought && p.Stage == InProgress && (p.Score[0] >= WinningScore || p.Score[1] >= WinningScore) {
		p.Stage = FinalRound
	}
	// The round is complete once the seat after the starting player has moved.
	if p.Stage == FinalRound && mover != p.Starting {
		p.Stage = Over
	}
	p.ToMove = Opponent(mover)
	p.Turn++
}

func (p *Position) reserve(player int, a ReserveCard) {
	var card Card
	if a.Blind() {
		card, _ = p.draw(a.Tier)
	} else {
		card = p.Market[a.Tier-1][a.Index]
		p.refill(a.Tier, a.Index)
	}
	p.Reserve[player] = append(p.Reserve[player], card)

	if p.Supply[Gold] > 0 {
		p.Supply[Gold]--
		p.Tokens[player][Gold]++
	}
	p.Tokens[player] = p.Tokens[player].Sub(a.Return)
	p.Supply = p.Supply.Add(a.Return)
}

func (p *Position) buy(player int, a BuyCard) error {
	card := p.Source(player, a.Source)[a.Index]

	payment := Payment(p, player, card)
	p.Tokens[player] = p.Tokens[player].Sub(payment)
	p.Supply = p.Supply.Add(payment)

	p.Cards[player][card.Bonus]++
	p.Owned[player] = append(p.Owned[player], card)
	p.Score[player] += card.Points

	if a.Source == ReserveSource {
		p.Reserve[player] = slices.Delete(p.Reserve[player], a.Index, a.Index+1)
	} else {
		p.refill(a.Source, a.Index)
	}

	if a.Noble != NoNoble {
		return p.award(player, a.Noble)
	}
	return nil
}

// award re-checks the noble requirement against the post-purchase counts.
func (p *Position) award(player, index int) error {
	if index < 0 || index >= len(p.Nobles) {
		return fmt.Errorf("noble %d does not exist", index)
	}
	noble := p.Nobles[index]
	if !noble.AttractedBy(p.Cards[player]) {
		return fmt.Errorf("noble %s is not attracted", noble.Name)
	}
	p.Nobles = slices.Delete(p.Nobles, index, index+1)
	p.Claimed[player] = append(p.Claimed[player], noble)
	p.Score[player] += noble.Points
	return nil
}

// GoldNeeded is the number of gold tokens the player must spend on card.
func GoldNeeded(p *Position, player int, card Card) int {
	held := p.Tokens[player]
	owned := p.Cards[player]
	needed := 0
	for k, cost := range card.Cost {
		needed += max(cost-held[k]-owned[k], 0)
	}
	return needed
}

// CanAfford reports whether the player can pay for card with tokens and bonuses.
func CanAfford(p *Position, player int, card Card) bool {
	return GoldNeeded(p, player, card) <= p.Tokens[player][Gold]
}

// TokensNeeded is how many more tokens the player would need to afford card,
// counting gold as wild. Zero when the card is affordable.
func TokensNeeded(p *Position, player int, card Card) int {
	return max(GoldNeeded(p, player, card)-p.Tokens[player][Gold], 0)
}

// Payment is the canonical payment for card: coloured tokens first, gold
// only for the shortfall.
func Payment(p *Position, player int, card Card) Tokens {
	held := p.Tokens[player]
	owned := p.Cards[player]
	var pay Tokens
	for k, cost := range card.Cost {
		pay[k] = min(max(cost-owned[k], 0), held[k])
	}
	pay[Gold] = GoldNeeded(p, player, card)
	return pay
}

// Attracted returns the indices of nobles in the row that the player would
// attract after gaining one card of the given bonus.
func Attracted(p *Position, player int, bonus Kind) []int {
	cards := p.Cards[player]
	cards[bonus]++
	var indices []int
	for i, n := range p.Nobles {
		if n.AttractedBy(cards) {
			indices = append(indices, i)
		}
	}
	return indices
}

// mayAttract is a cheap necessary condition for the next purchase to attract
// a noble: every catalog noble needs three kinds at 3 or two kinds at 4.
func mayAttract(cards Bonuses, nobles []Noble) bool {
	atLeastTwo, atLeastThree := 0, 0
	for _, n := range cards {
		if n >= 2 {
			atLeastTwo++
		}
		if n >= 3 {
			atLeastThree++
		}
	}
	if atLeastTwo >= 3 || atLeastThree >= 2 {
		return true
	}
	// Rows built outside the catalog may hold nobles of other shapes.
	for _, n := range nobles {
		if n.CardsNeeded(cards) <= 1 {
			return true
		}
	}
	return false
}

func validateTake(p *Position, a TakeTokens) error {
	mover := p.ToMove
	for k := 0; k < NumKinds; k++ {
		if a.Take[k] < 0 || a.Return[k] < 0 {
			return fmt.Errorf("negative token count")
		}
	}
	if a.Take[Gold] != 0 {
		return fmt.Errorf("gold can only be gained by reserving")
	}
	if a.Return[Gold] != 0 {
		return fmt.Errorf("only coloured tokens may be returned")
	}

	if a.Take.IsZero() {
		if !a.Return.IsZero() {
			return fmt.Errorf("nothing taken, nothing to return")
		}
		if !canPass(p) {
			return fmt.Errorf("passing is only allowed without any other legal action")
		}
		return nil
	}

	if err := checkTakeShape(p.Supply, a.Take); err != nil {
		return err
	}

	held := p.Tokens[mover].Add(a.Take)
	for k := 0; k < NumColors; k++ {
		if a.Return[k] > held[k] {
			return fmt.Errorf("cannot return %d %s, only %d held", a.Return[k], Kind(k), held[k])
		}
	}
	excess := max(held.Total()-MaxTokens, 0)
	if a.Return.Total() != excess {
		return fmt.Errorf("must return exactly %d tokens, returned %d", excess, a.Return.Total())
	}
	return nil
}

func checkTakeShape(supply Tokens, take Tokens) error {
	for k := 0; k < NumColors; k++ {
		if take[k] > supply[k] {
			return fmt.Errorf("supply has only %d %s", supply[k], Kind(k))
		}
	}

	// Two of one colour
	if take.Total() == 2 {
		for k := 0; k < NumColors; k++ {
			if take[k] == 2 {
				if supply[k] < DoubleTakeMin {
					return fmt.Errorf("two %s need at least %d in supply", Kind(k), DoubleTakeMin)
				}
				return nil
			}
		}
	}

	// Distinct colours, as many as the supply allows up to three
	available := 0
	for k := 0; k < NumColors; k++ {
		if supply[k] > 0 {
			available++
		}
		if take[k] > 1 {
			return fmt.Errorf("more than one %s in a distinct take", Kind(k))
		}
	}
	if want := min(available, MaxDistinct); take.Total() != want {
		return fmt.Errorf("must take %d distinct colours, took %d", want, take.Total())
	}
	return nil
}

func canPass(p *Position) bool {
	for k := 0; k < NumColors; k++ {
		if p.Supply[k] > 0 {
			return false
		}
	}
	return len(reserveActions(p)) == 0 && len(buyActions(p)) == 0
}

func validateReserve(p *Position, a ReserveCard) error {
	mover := p.ToMove
	if len(p.Reserve[mover]) >= MaxReserved {
		return fmt.Errorf("reserve is full")
	}
	if a.Tier < 1 || a.Tier > NumTiers {
		return fmt.Errorf("tier %d does not exist", a.Tier)
	}
	if a.Blind() {
		if len(p.Decks[a.Tier-1]) == 0 {
			return fmt.Errorf("tier %d deck is empty", a.Tier)
		}
	} else if a.Index < 0 || a.Index >= len(p.Market[a.Tier-1]) {
		return fmt.Errorf("no card at tier %d index %d", a.Tier, a.Index)
	}

	for k := 0; k < NumKinds; k++ {
		if a.Return[k] < 0 {
			return fmt.Errorf("negative token count")
		}
	}
	if a.Return[Gold] != 0 {
		return fmt.Errorf("only coloured tokens may be returned")
	}

	mustReturn := p.Supply[Gold] > 0 && p.Tokens[mover].Total() >= MaxTokens
	switch {
	case mustReturn && a.Return.Total() != 1:
		return fmt.Errorf("must return exactly one token")
	case !mustReturn && a.Return.Total() != 0:
		return fmt.Errorf("no token to return")
	}
	if k := a.ReturnKind(); k != NoKind && p.Tokens[mover][k] < 1 {
		return fmt.Errorf("no %s to return", k)
	}
	return nil
}

func validateBuy(p *Position, a BuyCard) error {
	mover := p.ToMove
	if a.Source < ReserveSource || a.Source > NumTiers {
		return fmt.Errorf("source %d does not exist", a.Source)
	}
	cards := p.Source(mover, a.Source)
	if a.Index < 0 || a.Index >= len(cards) {
		return fmt.Errorf("no card at source %d index %d", a.Source, a.Index)
	}
	card := cards[a.Index]
	if !CanAfford(p, mover, card) {
		return fmt.Errorf("cannot afford %s", card)
	}

	attracted := Attracted(p, mover, card.Bonus)
	if a.Noble == NoNoble {
		if len(attracted) > 0 {
			return fmt.Errorf("a noble must be chosen")
		}
		return nil
	}
	if !slices.Contains(attracted, a.Noble) {
		return fmt.Errorf("noble %d is not attracted", a.Noble)
	}
	return nil
}
