package game

import (
	"math/rand/v2"
	"slices"
)

type cardSpec struct {
	bonus  Kind
	cost   Bonuses
	points int
}

// Costs are listed black, blue, green, red, white.
var tierSpecs = [NumTiers][]cardSpec{
	{
		{Black, Bonuses{0, 1, 1, 1, 1}, 0},
		{Black, Bonuses{0, 2, 1, 1, 1}, 0},
		{Black, Bonuses{0, 2, 0, 1, 2}, 0},
		{Black, Bonuses{1, 0, 1, 3, 0}, 0},
		{Black, Bonuses{0, 0, 2, 1, 0}, 0},
		{Black, Bonuses{0, 0, 2, 0, 2}, 0},
		{Black, Bonuses{0, 0, 3, 0, 0}, 0},
		{Black, Bonuses{0, 4, 0, 0, 0}, 1},

		{Blue, Bonuses{1, 0, 1, 1, 1}, 0},
		{Blue, Bonuses{1, 0, 1, 2, 1}, 0},
		{Blue, Bonuses{0, 0, 2, 2, 1}, 0},
		{Blue, Bonuses{0, 1, 3, 1, 0}, 0},
		{Blue, Bonuses{2, 0, 0, 0, 1}, 0},
		{Blue, Bonuses{2, 0, 2, 0, 0}, 0},
		{Blue, Bonuses{3, 0, 0, 0, 0}, 0},
		{Blue, Bonuses{0, 0, 0, 4, 0}, 1},

		{Green, Bonuses{1, 1, 0, 1, 1}, 0},
		{Green, Bonuses{2, 1, 0, 1, 1}, 0},
		{Green, Bonuses{2, 1, 0, 2, 0}, 0},
		{Green, Bonuses{0, 3, 1, 0, 1}, 0},
		{Green, Bonuses{0, 1, 0, 0, 2}, 0},
		{Green, Bonuses{0, 2, 0, 2, 0}, 0},
		{Green, Bonuses{0, 0, 0, 3, 0}, 0},
		{Green, Bonuses{4, 0, 0, 0, 0}, 1},

		{Red, Bonuses{1, 1, 1, 0, 1}, 0},
		{Red, Bonuses{1, 1, 1, 0, 2}, 0},
		{Red, Bonuses{2, 0, 1, 0, 2}, 0},
		{Red, Bonuses{3, 0, 0, 1, 1}, 0},
		{Red, Bonuses{0, 2, 1, 0, 0}, 0},
		{Red, Bonuses{0, 0, 0, 2, 2}, 0},
		{Red, Bonuses{0, 0, 0, 0, 3}, 0},
		{Red, Bonuses{0, 0, 0, 0, 4}, 1},

		{White, Bonuses{1, 1, 1, 1, 0}, 0},
		{White, Bonuses{1, 1, 2, 1, 0}, 0},
		{White, Bonuses{1, 2, 2, 0, 0}, 0},
		{White, Bonuses{1, 1, 0, 0, 3}, 0},
		{White, Bonuses{1, 0, 0, 2, 0}, 0},
		{White, Bonuses{2, 2, 0, 0, 0}, 0},
		{White, Bonuses{0, 3, 0, 0, 0}, 0},
		{White, Bonuses{0, 0, 4, 0, 0}, 1},
	},
	{
		{Black, Bonuses{0, 2, 2, 0, 3}, 1},
		{Black, Bonuses{2, 0, 3, 0, 3}, 1},
		{Black, Bonuses{0, 1, 4, 2, 0}, 2},
		{Black, Bonuses{0, 0, 5, 3, 0}, 2},
		{Black, Bonuses{0, 0, 0, 0, 5}, 2},
		{Black, Bonuses{6, 0, 0, 0, 0}, 3},

		{Blue, Bonuses{0, 2, 2, 3, 0}, 1},
		{Blue, Bonuses{3, 2, 3, 0, 0}, 1},
		{Blue, Bonuses{0, 3, 0, 0, 5}, 2},
		{Blue, Bonuses{4, 0, 0, 1, 2}, 2},
		{Blue, Bonuses{0, 5, 0, 0, 0}, 2},
		{Blue, Bonuses{0, 6, 0, 0, 0}, 3},

		{Green, Bonuses{0, 0, 2, 3, 3}, 1},
		{Green, Bonuses{2, 3, 0, 0, 2}, 1},
		{Green, Bonuses{1, 2, 0, 0, 4}, 2},
		{Green, Bonuses{0, 5, 3, 0, 0}, 2},
		{Green, Bonuses{0, 0, 5, 0, 0}, 2},
		{Green, Bonuses{0, 0, 6, 0, 0}, 3},

		{Red, Bonuses{3, 0, 0, 2, 2}, 1},
		{Red, Bonuses{3, 3, 0, 2, 0}, 1},
		{Red, Bonuses{0, 4, 2, 0, 1}, 2},
		{Red, Bonuses{5, 0, 0, 0, 3}, 2},
		{Red, Bonuses{5, 0, 0, 0, 0}, 2},
		{Red, Bonuses{0, 0, 0, 6, 0}, 3},

		{White, Bonuses{2, 0, 3, 2, 0}, 1},
		{White, Bonuses{0, 3, 0, 3, 2}, 1},
		{White, Bonuses{2, 0, 1, 4, 0}, 2},
		{White, Bonuses{3, 0, 0, 5, 0}, 2},
		{White, Bonuses{0, 0, 0, 5, 0}, 2},
		{White, Bonuses{0, 0, 0, 0, 6}, 3},
	},
	{
		{Black, Bonuses{0, 3, 5, 3, 3}, 3},
		{Black, Bonuses{0, 0, 0, 7, 0}, 4},
		{Black, Bonuses{3, 0, 3, 6, 0}, 4},
		{Black, Bonuses{3, 0, 0, 7, 0}, 5},

		{Blue, Bonuses{5, 0, 3, 3, 3}, 3},
		{Blue, Bonuses{0, 0, 0, 0, 7}, 4},
		{Blue, Bonuses{3, 3, 0, 0, 6}, 4},
		{Blue, Bonuses{0, 3, 0, 0, 7}, 5},

		{Green, Bonuses{3, 3, 0, 3, 5}, 3},
		{Green, Bonuses{0, 7, 0, 0, 0}, 4},
		{Green, Bonuses{0, 6, 3, 0, 3}, 4},
		{Green, Bonuses{0, 7, 3, 0, 0}, 5},

		{Red, Bonuses{3, 5, 3, 0, 3}, 3},
		{Red, Bonuses{0, 0, 7, 0, 0}, 4},
		{Red, Bonuses{0, 3, 6, 3, 0}, 4},
		{Red, Bonuses{0, 0, 7, 3, 0}, 5},

		{White, Bonuses{3, 3, 3, 5, 0}, 3},
		{White, Bonuses{7, 0, 0, 0, 0}, 4},
		{White, Bonuses{6, 0, 0, 3, 3}, 4},
		{White, Bonuses{7, 0, 0, 0, 3}, 5},
	},
}

var nobleSpecs = []struct {
	name     string
	requires Bonuses
}{
	{"Mary Stuart", Bonuses{0, 0, 4, 4, 0}},
	{"Charles Quint", Bonuses{3, 0, 0, 3, 3}},
	{"Macchiavelli", Bonuses{0, 4, 0, 0, 4}},
	{"Isabel of Castille", Bonuses{4, 0, 0, 0, 4}},
	{"Soliman the Magnificent", Bonuses{0, 4, 4, 0, 0}},
	{"Catherine of Medicis", Bonuses{0, 3, 3, 3, 0}},
	{"Anne of Brittany", Bonuses{0, 3, 3, 0, 3}},
	{"Henri VIII", Bonuses{4, 0, 0, 4, 0}},
	{"Elisabeth of Austria", Bonuses{3, 3, 0, 0, 3}},
	{"Francis I of France", Bonuses{3, 0, 3, 3, 0}},
}

// Catalog returns every card of a tier (1-3) in catalog order.
func Catalog(tier int) []Card {
	specs := tierSpecs[tier-1]
	offset := 0
	for t := 0; t < tier-1; t++ {
		offset += len(tierSpecs[t])
	}
	cards := make([]Card, len(specs))
	for i, s := range specs {
		cards[i] = Card{
			ID:     offset + i,
			Tier:   tier,
			Bonus:  s.bonus,
			Cost:   s.cost,
			Points: s.points,
		}
	}
	return cards
}

// AllNobles returns the full noble set in catalog order.
func AllNobles() []Noble {
	nobles := make([]Noble, len(nobleSpecs))
	for i, s := range nobleSpecs {
		nobles[i] = Noble{ID: i, Name: s.name, Requires: s.requires, Points: NoblePoints}
	}
	return nobles
}

// Deal shuffles the three tier decks and the nobles with rng and returns the
// draw piles together with the nobles in play.
func Deal(rng *rand.Rand) (decks [NumTiers][]Card, nobles []Noble) {
	for t := range decks {
		deck := Catalog(t + 1)
		rng.Shuffle(len(deck), func(i, j int) {
			deck[i], deck[j] = deck[j], deck[i]
		})
		decks[t] = deck
	}

	all := AllNobles()
	rng.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})
	return decks, slices.Clone(all[:NoblesInPlay])
}
