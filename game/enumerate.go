package game

// LegalActions returns every legal action for the player to move, takes first,
// then reservations, then purchases. It is empty only once the game is over.
// No two returned TakeTokens leave the mover with the same tokens.
func LegalActions(p *Position) []Action {
	if p.Stage == Over {
		return nil
	}

	actions := []Action{}
	for _, a := range takeActions(p) {
		actions = append(actions, a)
	}
	for _, a := range reserveActions(p) {
		actions = append(actions, a)
	}
	for _, a := range buyActions(p) {
		actions = append(actions, a)
	}

	if len(actions) == 0 {
		actions = append(actions, Pass())
	}
	return actions
}

func takeActions(p *Position) []TakeTokens {
	held := p.Tokens[p.ToMove]

	var takes []Tokens
	available := []Kind{}
	for _, k := range Colors() {
		if p.Supply[k] > 0 {
			available = append(available, k)
		}
	}
	if n := min(len(available), MaxDistinct); n > 0 {
		for _, combo := range combinations(available, n) {
			var take Tokens
			for _, k := range combo {
				take[k] = 1
			}
			takes = append(takes, take)
		}
	}
	for _, k := range Colors() {
		if p.Supply[k] >= DoubleTakeMin {
			takes = append(takes, Single(k, 2))
		}
	}

	actions := []TakeTokens{}
	seen := map[Tokens]bool{}
	add := func(a TakeTokens) {
		result := held.Add(a.Take).Sub(a.Return)
		if seen[result] {
			return
		}
		seen[result] = true
		actions = append(actions, a)
	}

	for _, take := range takes {
		after := held.Add(take)
		excess := after.Total() - MaxTokens
		if excess <= 0 {
			add(TakeTokens{Take: take})
			continue
		}
		for _, ret := range returnCombos(after, excess) {
			add(TakeTokens{Take: take, Return: ret})
		}
	}
	return actions
}

// combinations returns every k-subset of kinds, preserving order.
func combinations(kinds []Kind, k int) [][]Kind {
	if k == 0 {
		return [][]Kind{{}}
	}
	var result [][]Kind
	for i := 0; i <= len(kinds)-k; i++ {
		for _, rest := range combinations(kinds[i+1:], k-1) {
			combo := append([]Kind{kinds[i]}, rest...)
			result = append(result, combo)
		}
	}
	return result
}

// returnCombos enumerates every multiset of n coloured tokens that can be
// returned out of held: one, two alike, two different, three alike, two plus
// one, three different.
func returnCombos(held Tokens, n int) []Tokens {
	var result []Tokens
	var walk func(from Kind, left int, acc Tokens)
	walk = func(from Kind, left int, acc Tokens) {
		if left == 0 {
			result = append(result, acc)
			return
		}
		for k := from; k < Gold; k++ {
			if acc[k] < held[k] {
				acc[k]++
				walk(k, left-1, acc)
				acc[k]--
			}
		}
	}
	walk(Black, n, Tokens{})
	return result
}

func reserveActions(p *Position) []ReserveCard {
	mover := p.ToMove
	if len(p.Reserve[mover]) >= MaxReserved {
		return nil
	}

	var returns []Tokens
	if p.Supply[Gold] > 0 && p.Tokens[mover].Total() >= MaxTokens {
		for _, k := range Colors() {
			if p.Tokens[mover][k] > 0 {
				returns = append(returns, Single(k, 1))
			}
		}
	} else {
		returns = []Tokens{{}}
	}

	actions := []ReserveCard{}
	for tier := 1; tier <= NumTiers; tier++ {
		indices := make([]int, 0, MarketSize+1)
		for i := range p.Market[tier-1] {
			indices = append(indices, i)
		}
		if len(p.Decks[tier-1]) > 0 {
			indices = append(indices, BlindIndex)
		}
		for _, i := range indices {
			for _, ret := range returns {
				actions = append(actions, ReserveCard{Tier: tier, Index: i, Return: ret})
			}
		}
	}
	return actions
}

func buyActions(p *Position) []BuyCard {
	mover := p.ToMove
	probe := mayAttract(p.Cards[mover], p.Nobles)

	actions := []BuyCard{}
	for source := ReserveSource; source <= NumTiers; source++ {
		for i, card := range p.Source(mover, source) {
			if !CanAfford(p, mover, card) {
				continue
			}
			if probe {
				if nobles := Attracted(p, mover, card.Bonus); len(nobles) > 0 {
					for _, n := range nobles {
						actions = append(actions, BuyCard{Source: source, Index: i, Noble: n})
					}
					continue
				}
			}
			actions = append(actions, NewBuy(source, i))
		}
	}
	return actions
}
