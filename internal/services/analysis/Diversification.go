package analysis

import (
	"math"

	"CryptoFolio/internal/services/valuation"
)

const (
	ScoreWellDiversified = 8
	ScoreDecent          = 5
)

// Result is a portfolio diversification grade on a 0-10 scale.
type Result struct {
	Score       int
	HHI         float64
	Description string
}

// CalculateDiversification grades the portfolio from its asset count and
// concentration. Concentration uses the Herfindahl-Hirschman index over the
// allocation percentages, normalized to 0-100.
func CalculateDiversification(summary *valuation.Summary) Result {
	if summary == nil || len(summary.Holdings) == 0 {
		return Result{
			Score:       0,
			Description: "Your portfolio is empty. Add holdings to see diversification analysis.",
		}
	}

	hhi := 0.0
	for i := range summary.Holdings {
		alloc := summary.Holdings[i].Allocation
		hhi += alloc * alloc
	}
	hhi /= 100

	// Up to 5 points for breadth, up to 5 for low concentration.
	assetScore := math.Min(5, float64(summary.AssetCount)/2)
	concentrationScore := 5 * (1 - hhi/100)

	score := int(math.Min(10, math.Round(assetScore+concentrationScore)))
	if score < 0 {
		score = 0
	}

	return Result{
		Score:       score,
		HHI:         hhi,
		Description: describeScore(score),
	}
}

func describeScore(score int) string {
	switch {
	case score >= ScoreWellDiversified:
		return "Your portfolio is well-diversified across different assets."
	case score >= ScoreDecent:
		return "Your portfolio has decent diversification, but could be improved."
	default:
		return "Your portfolio needs better diversification. Consider adding more varied assets."
	}
}
