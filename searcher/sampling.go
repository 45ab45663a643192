package searcher

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"splendor/game"
	"splendor/utils"
)

// candidates lists the legal actions in p, keeping only the most promising
// share of the takes that hand tokens back.
func (s *search) candidates(p *game.Position) []game.Action {
	return sampleReturnTakes(p, game.LegalActions(p), s.returnSamplingRate, s.rng)
}

type rankedIndex struct {
	index int
	score float64
}

// sampleReturnTakes ranks takes with a non-empty return by how close they
// leave the mover to affording cards, and keeps the top share. Ties are broken
// by a shuffle from rng. Other actions are never dropped and the original
// order is preserved.
func sampleReturnTakes(p *game.Position, actions []game.Action, rate float64, rng *rand.Rand) []game.Action {
	if rate >= 1 {
		return actions
	}

	var ranked []rankedIndex
	for i, action := range actions {
		take, ok := action.(game.TakeTokens)
		if !ok || take.Return.IsZero() {
			continue
		}
		next, err := game.Apply(p, take)
		if err != nil {
			continue
		}
		ranked = append(ranked, rankedIndex{i, game.AffordabilityProximity(next, p.ToMove)})
	}
	if len(ranked) == 0 {
		return actions
	}

	rng.Shuffle(len(ranked), func(i, j int) {
		ranked[i], ranked[j] = ranked[j], ranked[i]
	})
	slices.SortStableFunc(ranked, func(a, b rankedIndex) int {
		return cmp.Compare(b.score, a.score)
	})

	dropped := make(map[int]bool, len(ranked))
	for _, r := range ranked[utils.KeepCount(len(ranked), rate):] {
		dropped[r.index] = true
	}
	kept := make([]game.Action, 0, len(actions)-len(dropped))
	for i, action := range actions {
		if !dropped[i] {
			kept = append(kept, action)
		}
	}
	return kept
}

// successors applies action to p and returns a sample of the positions it may
// lead to. Moves that refill a market slot or blind-reserve from a deck have
// one outcome per card that could have been drawn; every other move has
// exactly one.
func (s *search) successors(p *game.Position, action game.Action) []*game.Position {
	next, err := game.Apply(p, action)
	if err != nil {
		return nil
	}
	all := append([]*game.Position{next}, hiddenOutcomes(next, action, p.ToMove)...)
	if len(all) == 1 {
		return all
	}
	s.rng.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})
	return all[:utils.KeepCount(len(all), s.stateSamplingRate)]
}

// hiddenOutcomes returns the alternatives to next in which the card drawn by
// action is swapped with each card still in the deck.
func hiddenOutcomes(next *game.Position, action game.Action, mover int) []*game.Position {
	var tier int
	var slot func(q *game.Position) *game.Card
	switch a := action.(type) {
	case game.BuyCard:
		if a.Source == game.ReserveSource {
			return nil
		}
		tier = a.Source
		slot = func(q *game.Position) *game.Card {
			return &q.Market[a.Source-1][a.Index]
		}
	case game.ReserveCard:
		tier = a.Tier
		if a.Blind() {
			slot = func(q *game.Position) *game.Card {
				reserve := q.Reserve[mover]
				return &reserve[len(reserve)-1]
			}
		} else {
			slot = func(q *game.Position) *game.Card {
				return &q.Market[a.Tier-1][a.Index]
			}
		}
	default:
		return nil
	}

	// An empty deck here means the drawn card was the last one, or the slot
	// was never refilled.
	deck := next.Decks[tier-1]
	outcomes := make([]*game.Position, 0, len(deck))
	for i := range deck {
		alt := next.Copy()
		drawn := slot(alt)
		*drawn, alt.Decks[tier-1][i] = alt.Decks[tier-1][i], *drawn
		outcomes = append(outcomes, alt)
	}
	return outcomes
}
