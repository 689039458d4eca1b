package staking

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"CryptoFolio/internal/models"
)

// stakableAssets is the canonical list of assets commonly offered for staking.
var stakableAssets = []string{"ETH", "SOL", "ADA", "DOT", "ATOM", "NEAR", "OSMO", "TRX", "MATIC", "AVAX", "BNB"}

// typicalAPY holds known-typical staking yields; assets not listed use the
// generic threshold.
var typicalAPY = map[string]float64{
	"ETH": 3.5,
	"SOL": 5.5,
	"ADA": 4.0,
	"DOT": 12.0,
}

const genericAPYThreshold = 3.0

// generateRecommendations runs each advisory rule independently and
// concatenates the results in a fixed order.
func generateRecommendations(report *Report, holdings []models.Holding, now time.Time) []string {
	var recommendations []string

	staked := make(map[string]bool, len(report.ByAsset))
	for i := range report.ByAsset {
		staked[report.ByAsset[i].Symbol] = true
	}
	held := make(map[string]bool, len(holdings))
	for i := range holdings {
		held[holdings[i].Symbol] = true
	}

	var potential []string
	for _, symbol := range stakableAssets {
		if held[symbol] && !staked[symbol] {
			potential = append(potential, symbol)
		}
	}
	if len(potential) > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"Consider staking your %s holdings to earn passive income.",
			strings.Join(potential, ", ")))
	}

	var lowYield []string
	for i := range report.ByAsset {
		entry := &report.ByAsset[i]
		if entry.Confidence != ConfidenceMedium && entry.Confidence != ConfidenceHigh {
			continue
		}
		threshold, ok := typicalAPY[entry.Symbol]
		if !ok {
			threshold = genericAPYThreshold
		}
		if entry.APY < threshold {
			lowYield = append(lowYield, entry.Symbol)
		}
	}
	if len(lowYield) > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"Your staking yield for %s appears lower than average. Consider exploring alternative staking providers for better rates.",
			strings.Join(lowYield, ", ")))
	}

	var shortHistory []string
	for i := range report.ByAsset {
		entry := &report.ByAsset[i]
		if entry.Confidence == ConfidenceLow || entry.Confidence == ConfidenceNone {
			shortHistory = append(shortHistory, entry.Symbol)
		}
	}
	if len(shortHistory) > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"Staking history for %s is still short. Yield estimates will become more reliable as more rewards arrive.",
			strings.Join(shortHistory, ", ")))
	}

	var irregular []string
	for i := range report.ByAsset {
		entry := &report.ByAsset[i]
		if hasIrregularCadence(entry.Timestamps) {
			irregular = append(irregular, entry.Symbol)
		}
	}
	if len(irregular) > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"Your staking rewards for %s show irregular intervals. Check if your staking setup is still active and properly configured.",
			strings.Join(irregular, ", ")))
	}

	var inactive []string
	for i := range report.ByAsset {
		entry := &report.ByAsset[i]
		if now.Sub(entry.LastReward).Hours()/24 > InactiveDays {
			inactive = append(inactive, entry.Symbol)
		}
	}
	if len(inactive) > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"You haven't received staking rewards for %s in over %d days. Check if your staking is still active.",
			strings.Join(inactive, ", "), InactiveDays))
	}

	if report.MonthlyAverage > 0 {
		yearlyProjection := report.MonthlyAverage * 12
		recommendations = append(recommendations, fmt.Sprintf(
			"At your current staking rate, you're projected to earn approximately $%.2f in staking rewards over the next year.",
			yearlyProjection))
		if yearlyProjection > CompoundingThresholdUSD {
			recommendations = append(recommendations,
				"Your projected staking income is substantial. Compounding your rewards could significantly boost long-term returns.")
		}
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations,
			"Your staking setup appears to be well-configured. Continue monitoring for optimal yields and consider compounding your rewards for maximum growth.")
	}

	return recommendations
}

// hasIrregularCadence flags a reward series whose gaps are uneven: a gap
// more than twice the average, or a gap spread above half the average.
func hasIrregularCadence(timestamps []time.Time) bool {
	if len(timestamps) <= 2 {
		return false
	}
	sorted := make([]time.Time, len(timestamps))
	copy(sorted, timestamps)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	gaps := make([]float64, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		gaps = append(gaps, sorted[i].Sub(sorted[i-1]).Hours()/24)
	}

	sum := 0.0
	maxGap := 0.0
	for _, gap := range gaps {
		sum += gap
		if gap > maxGap {
			maxGap = gap
		}
	}
	avgGap := sum / float64(len(gaps))
	if avgGap <= 0 {
		return false
	}
	if maxGap > 2*avgGap {
		return true
	}

	variance := 0.0
	for _, gap := range gaps {
		variance += (gap - avgGap) * (gap - avgGap)
	}
	stddev := math.Sqrt(variance / float64(len(gaps)))
	return stddev > 0.5*avgGap
}
