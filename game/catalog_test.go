package game

import (
	"splendor/utils"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	sizes := [NumTiers]int{40, 30, 20}
	ids := map[int]bool{}
	for tier := 1; tier <= NumTiers; tier++ {
		cards := Catalog(tier)
		require.Len(t, cards, sizes[tier-1])
		for _, c := range cards {
			require.Equal(t, tier, c.Tier)
			require.Less(t, int(c.Bonus), NumColors)
			require.Positive(t, c.Cost.Total())
			require.False(t, ids[c.ID])
			ids[c.ID] = true
		}
	}
	require.Len(t, ids, catalogSize)
	for id := 0; id < catalogSize; id++ {
		require.True(t, ids[id])
	}
}

func TestNobles(t *testing.T) {
	nobles := AllNobles()

	require.Len(t, nobles, 10)
	for i, n := range nobles {
		require.Equal(t, i, n.ID)
		require.Equal(t, NoblePoints, n.Points)
		require.Contains(t, []int{8, 9}, n.Requires.Total())
	}
}

func TestDeal(t *testing.T) {
	decks1, nobles1 := Deal(utils.NewRand(42))
	decks2, nobles2 := Deal(utils.NewRand(42))
	decks3, _ := Deal(utils.NewRand(43))

	require.Equal(t, decks1, decks2)
	require.Equal(t, nobles1, nobles2)
	require.NotEqual(t, decks1, decks3)
	require.Len(t, nobles1, NoblesInPlay)
	for tier := 1; tier <= NumTiers; tier++ {
		require.ElementsMatch(t, Catalog(tier), decks1[tier-1])
	}
}

func TestNewPosition(t *testing.T) {
	p := NewPosition(utils.NewRand(9))

	require.Equal(t, InitialSupply(), p.Supply)
	require.Equal(t, InProgress, p.Stage)
	require.Equal(t, p.Starting, p.ToMove)
	require.Zero(t, p.Turn)
	require.Len(t, p.Nobles, NoblesInPlay)
	deckSizes := [NumTiers]int{36, 26, 16}
	for tier := 1; tier <= NumTiers; tier++ {
		require.Len(t, p.Market[tier-1], MarketSize)
		require.Equal(t, deckSizes[tier-1], p.DeckSize(tier))
	}
	for i := 0; i < NumPlayers; i++ {
		require.True(t, p.Tokens[i].IsZero())
		require.Empty(t, p.Reserve[i])
		require.Zero(t, p.Score[i])
	}
	require.Equal(t, NoWinner, p.Winner())
}
