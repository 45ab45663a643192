package game

import (
	"fmt"
	"strings"
)

// Card is a development card. ID is unique across the whole catalog.
type Card struct {
	ID     int
	Tier   int
	Bonus  Kind
	Cost   Bonuses
	Points int
}

// Noble is claimed once a player's owned-card counts meet Requires.
type Noble struct {
	ID       int
	Name     string
	Requires Bonuses
	Points   int
}

func (c Card) String() string {
	return fmt.Sprintf("%s %dpt [%s]", c.Bonus, c.Points, formatCost(c.Cost))
}

func (n Noble) String() string {
	return fmt.Sprintf("%s %dpt [%s]", n.Name, n.Points, formatCost(n.Requires))
}

// AttractedBy reports whether the given card counts satisfy the noble.
func (n Noble) AttractedBy(cards Bonuses) bool {
	for k, need := range n.Requires {
		if cards[k] < need {
			return false
		}
	}
	return true
}

// CardsNeeded is the number of additional cards required to attract the noble.
func (n Noble) CardsNeeded(cards Bonuses) int {
	missing := 0
	for k, need := range n.Requires {
		missing += max(need-cards[k], 0)
	}
	return missing
}

func formatCost(cost Bonuses) string {
	parts := []string{}
	for k, n := range cost {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, Kind(k)))
		}
	}
	return strings.Join(parts, " ")
}
