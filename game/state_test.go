package game

import (
	"splendor/utils"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCopy(t *testing.T) {
	p := playout(t, 4, 30, func(*Position, []Action) {})
	c := p.Copy()
	require.Equal(t, p, c)

	c.Market[0][0].Points = 99
	c.Decks[1] = c.Decks[1][:0]
	c.Nobles[0].Name = "changed"
	c.Tokens[0][Red] = 7
	c.Reserve[0] = append(c.Reserve[0], Card{ID: -1})

	require.NotEqual(t, 99, p.Market[0][0].Points)
	require.NotEmpty(t, p.Decks[1])
	require.NotEqual(t, "changed", p.Nobles[0].Name)
	require.NotContains(t, p.Reserve[0], Card{ID: -1})
}

func TestHash(t *testing.T) {
	p := NewPosition(utils.NewRand(5))
	require.Equal(t, p.Hash(), p.Copy().Hash())

	next, err := Apply(p, LegalActions(p)[0])
	require.NoError(t, err)
	require.NotEqual(t, p.Hash(), next.Hash())

	other := NewPosition(utils.NewRand(6))
	require.NotEqual(t, p.Hash(), other.Hash())
}

func TestWinner(t *testing.T) {
	p := NewPosition(utils.NewRand(1))
	p.Score = [NumPlayers]int{15, 12}
	require.Equal(t, NoWinner, p.Winner())

	p.Stage = Over
	require.Equal(t, 0, p.Winner())

	p.Score = [NumPlayers]int{15, 16}
	require.Equal(t, 1, p.Winner())

	p.Score = [NumPlayers]int{16, 16}
	require.Equal(t, Draw, p.Winner())
}

func TestSource(t *testing.T) {
	p := NewPosition(utils.NewRand(1))
	p.Reserve[1] = []Card{{ID: 3}}

	require.Equal(t, p.Reserve[1], p.Source(1, ReserveSource))
	require.Equal(t, p.Market[2], p.Source(0, 3))
	require.Nil(t, p.Source(0, 4))
}
