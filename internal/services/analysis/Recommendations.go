package analysis

import (
	"fmt"
	"strings"

	"CryptoFolio/internal/services/valuation"
)

const (
	// OverconcentrationPct is the allocation above which a single position
	// triggers a reduction suggestion.
	OverconcentrationPct = 30.0
	// UnderperformancePct flags positions down more than this from cost.
	UnderperformancePct = -20.0
	// UnderperformanceWeight ignores underperformers below this share of
	// the portfolio.
	UnderperformanceWeight = 0.05
	// MinAssetCount is the breadth below which more assets are suggested.
	MinAssetCount = 5
)

var majorAssets = []string{"BTC", "ETH"}

// GenerateRecommendations produces actionable portfolio suggestions in a
// fixed rule order. An empty portfolio yields no recommendations.
func GenerateRecommendations(summary *valuation.Summary, diversification Result) []string {
	if summary == nil || len(summary.Holdings) == 0 {
		return nil
	}

	var recommendations []string

	for i := range summary.Holdings {
		h := &summary.Holdings[i]
		if h.Allocation > OverconcentrationPct {
			recommendations = append(recommendations, fmt.Sprintf(
				"Consider reducing your %s position, which makes up %.2f%% of your portfolio.",
				h.Symbol, h.Allocation))
		}
	}

	for i := range summary.Holdings {
		h := &summary.Holdings[i]
		if h.ProfitLossPct < UnderperformancePct && h.Value > summary.TotalValue*UnderperformanceWeight {
			recommendations = append(recommendations, fmt.Sprintf(
				"Your %s position is down %.2f%%. Consider re-evaluating this investment.",
				h.Symbol, -h.ProfitLossPct))
		}
	}

	if diversification.Score < ScoreDecent {
		recommendations = append(recommendations,
			"Your portfolio lacks diversification. Consider adding more varied assets to reduce risk.")
	}

	if summary.AssetCount < MinAssetCount {
		recommendations = append(recommendations, fmt.Sprintf(
			"You only have %d assets. Adding more assets can help reduce risk through diversification.",
			summary.AssetCount))
	}

	var missing []string
	for _, symbol := range majorAssets {
		if !summary.Holds(symbol) {
			missing = append(missing, symbol)
		}
	}
	if len(missing) > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"Consider adding %s to your portfolio as they are major cryptocurrencies.",
			strings.Join(missing, ", ")))
	}

	if len(recommendations) == 0 {
		if diversification.Score >= ScoreWellDiversified {
			recommendations = append(recommendations,
				"Your portfolio is well-diversified and balanced. Continue monitoring market conditions and making regular adjustments as needed.")
		} else {
			recommendations = append(recommendations,
				"Your portfolio is in good standing. Consider regular rebalancing to maintain optimal allocation.")
		}
	}

	return recommendations
}
