package game

import "fmt"

// Feature indices of the linear evaluator.
const (
	HasWon = iota
	IsWinning
	Points
	OpponentPoints
	MaxImmediatePoints
	MarketProximity
	ReserveProximity
	NobleProximity
	ReserveCapacity
	TotalTokens
)

var featureNames = [NumFeatures]string{
	"has_won",
	"is_winning",
	"points",
	"opponent_points",
	"max_immediate_points",
	"market_proximity",
	"reserve_proximity",
	"noble_proximity",
	"reserve_capacity",
	"total_tokens",
}

// FeatureName returns the snake_case name of a feature index.
func FeatureName(i int) string {
	return featureNames[i]
}

// Weights are the coefficients of the ten evaluator features, in feature order.
type Weights [NumFeatures]float64

func DefaultWeights() Weights {
	return Weights{20000, 10000, 300, -300, 200, 0, 10, 10, 10, 0}
}

// ParseWeights converts a list of exactly NumFeatures coefficients.
func ParseWeights(values []float64) (Weights, error) {
	var w Weights
	if len(values) != NumFeatures {
		return w, fmt.Errorf("expected %d weights, got %d", NumFeatures, len(values))
	}
	copy(w[:], values)
	return w, nil
}

// LinearEvaluator returns an Evaluate computing the weighted feature sum.
func LinearEvaluator(w Weights) Evaluate {
	return func(p *Position, player int) float64 {
		return Score(p, player, w)
	}
}

// Score is the weighted sum of Features for player.
func Score(p *Position, player int, w Weights) float64 {
	f := Features(p, player)
	total := 0.0
	for i := range f {
		total += w[i] * f[i]
	}
	return total
}

// Features computes the evaluator inputs for player at p. Deterministic.
func Features(p *Position, player int) [NumFeatures]float64 {
	var f [NumFeatures]float64
	opponent := Opponent(player)

	if p.Stage == Over {
		switch p.Winner() {
		case player:
			f[HasWon] = 1
		case opponent:
			f[HasWon] = -1
		}
	}

	mine := MaxPointsGain(p, player)
	theirs := MaxPointsGain(p, opponent)
	f[IsWinning] = winningTrit(p, player, mine, theirs)

	f[Points] = float64(p.Score[player])
	f[OpponentPoints] = float64(p.Score[opponent])
	f[MaxImmediatePoints] = float64(mine)

	for _, row := range p.Market {
		for _, card := range row {
			f[MarketProximity] += float64(card.Points) / float64(TokensNeeded(p, player, card)+1)
		}
	}
	for _, card := range p.Reserve[player] {
		f[ReserveProximity] += float64(card.Points) / float64(TokensNeeded(p, player, card)+1)
	}
	for _, n := range p.Nobles {
		f[NobleProximity] += 1 / float64(n.CardsNeeded(p.Cards[player])+1)
	}

	f[ReserveCapacity] = float64(MaxReserved - len(p.Reserve[player]))
	f[TotalTokens] = float64(p.Tokens[player].Total())
	return f
}

// winningTrit is +1 when the player can buy their way to the winning score
// and the opponent's best reply stays below, -1 for the mirror case.
func winningTrit(p *Position, player, mine, theirs int) float64 {
	if p.Stage == Over {
		return 0
	}
	best := p.Score[player] + mine
	bestOpponent := p.Score[Opponent(player)] + theirs
	switch {
	case best >= WinningScore && best > bestOpponent:
		return 1
	case bestOpponent >= WinningScore && bestOpponent > best:
		return -1
	default:
		return 0
	}
}

// MaxPointsGain is the most points player could gain with a single purchase
// from the market or their reserve right now, counting the best noble it
// would attract.
func MaxPointsGain(p *Position, player int) int {
	best := 0
	consider := func(card Card) {
		if !CanAfford(p, player, card) {
			return
		}
		noble := 0
		for _, i := range Attracted(p, player, card.Bonus) {
			noble = max(noble, p.Nobles[i].Points)
		}
		best = max(best, card.Points+noble)
	}
	for _, row := range p.Market {
		for _, card := range row {
			consider(card)
		}
	}
	for _, card := range p.Reserve[player] {
		consider(card)
	}
	return best
}

// AffordabilityProximity sums 1/(tokensNeeded+1) over the market and the
// player's reserve. It is a cheap proxy for how useful a token mix is.
func AffordabilityProximity(p *Position, player int) float64 {
	total := 0.0
	for _, row := range p.Market {
		for _, card := range row {
			total += 1 / float64(TokensNeeded(p, player, card)+1)
		}
	}
	for _, card := range p.Reserve[player] {
		total += 1 / float64(TokensNeeded(p, player, card)+1)
	}
	return total
}
