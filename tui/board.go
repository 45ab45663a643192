package tui

import (
	"fmt"
	"splendor/game"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBoard draws the nobles, the market, the supply and both players.
// human is the seat shown as "you", or -1 for none.
func RenderBoard(p *game.Position, human int) string {
	sections := []string{
		renderStatus(p),
		renderNobles(p.Nobles),
	}
	for tier := game.NumTiers; tier >= 1; tier-- {
		sections = append(sections, renderTier(p, tier))
	}
	sections = append(sections, LabelStyle.Render("Supply ")+renderTokens(p.Supply))
	for player := 0; player < game.NumPlayers; player++ {
		sections = append(sections, renderPlayer(p, player, human))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderStatus(p *game.Position) string {
	status := fmt.Sprintf(" Turn %d | %s | player %d to move ", p.Turn, p.Stage, p.ToMove+1)
	if p.IsOver() {
		switch w := p.Winner(); w {
		case game.Draw:
			status = fmt.Sprintf(" Turn %d | draw ", p.Turn)
		default:
			status = fmt.Sprintf(" Turn %d | player %d wins ", p.Turn, w+1)
		}
	}
	return HeaderStyle.Render(status)
}

func renderNobles(nobles []game.Noble) string {
	if len(nobles) == 0 {
		return LabelStyle.Render("Nobles ") + InfoStyle.Render("none left")
	}
	boxes := make([]string, len(nobles))
	for i, n := range nobles {
		boxes[i] = CardStyle.Render(fmt.Sprintf("%d: %s\n%dpt %s", i, n.Name, n.Points, renderCost(n.Requires)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, append([]string{LabelStyle.Render("Nobles ")}, boxes...)...)
}

func renderTier(p *game.Position, tier int) string {
	boxes := []string{LabelStyle.Render(fmt.Sprintf("Tier %d ", tier))}
	for i, card := range p.Market[tier-1] {
		boxes = append(boxes, renderCard(i, card))
	}
	boxes = append(boxes, InfoStyle.Render(fmt.Sprintf(" deck %d", p.DeckSize(tier))))
	return lipgloss.JoinHorizontal(lipgloss.Center, boxes...)
}

func renderCard(index int, card game.Card) string {
	header := fmt.Sprintf("%d: %s", index, KindStyle(card.Bonus).Render(card.Bonus.String()))
	if card.Points > 0 {
		header += fmt.Sprintf(" %dpt", card.Points)
	}
	return CardStyle.Render(header + "\n" + renderCost(card.Cost))
}

func renderCost(cost game.Bonuses) string {
	parts := []string{}
	for k, n := range cost {
		if n > 0 {
			parts = append(parts, KindStyle(game.Kind(k)).Render(fmt.Sprintf("%d%c", n, kindLetter(game.Kind(k)))))
		}
	}
	return strings.Join(parts, " ")
}

func renderTokens(tokens game.Tokens) string {
	parts := make([]string, game.NumKinds)
	for k := range tokens {
		parts[k] = KindStyle(game.Kind(k)).Render(fmt.Sprintf("%s %d", game.Kind(k), tokens[k]))
	}
	return strings.Join(parts, "  ")
}

func renderPlayer(p *game.Position, player, human int) string {
	name := fmt.Sprintf("Player %d", player+1)
	if player == human {
		name += " (you)"
	}
	if player == p.ToMove && !p.IsOver() {
		name = "> " + name
	}

	var b strings.Builder
	b.WriteString(LabelStyle.Render(name))
	fmt.Fprintf(&b, "  Score %d\n", p.Score[player])
	fmt.Fprintf(&b, "  Tokens  %s (%d/%d)\n", renderTokens(p.Tokens[player]), p.TotalTokens(player), game.MaxTokens)

	bonuses := make([]string, game.NumColors)
	for k, n := range p.Cards[player] {
		bonuses[k] = KindStyle(game.Kind(k)).Render(fmt.Sprintf("%s %d", game.Kind(k), n))
	}
	b.WriteString("  Cards   " + strings.Join(bonuses, "  ") + "\n")

	reserve := make([]string, len(p.Reserve[player]))
	for i, card := range p.Reserve[player] {
		reserve[i] = fmt.Sprintf("%d: %s", i, card)
	}
	if len(reserve) == 0 {
		reserve = []string{InfoStyle.Render("empty")}
	}
	b.WriteString("  Reserve " + strings.Join(reserve, " | "))

	for _, n := range p.Claimed[player] {
		b.WriteString("\n  Noble   " + n.Name)
	}
	return b.String()
}

func kindLetter(k game.Kind) rune {
	if k == game.Black {
		return 'k'
	}
	return rune(k.String()[0])
}
