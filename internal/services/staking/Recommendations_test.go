package staking

import (
	"strings"
	"testing"
	"time"

	"CryptoFolio/internal/models"

	"github.com/stretchr/testify/assert"
)

func containsRecommendation(recs []string, fragment string) bool {
	for _, rec := range recs {
		if strings.Contains(rec, fragment) {
			return true
		}
	}
	return false
}

func TestRecommendationsSuggestStakableHoldings(t *testing.T) {
	transactions := []models.Transaction{
		stakingTx(2, "SOL", 1, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)),
	}
	holdings := []models.Holding{
		{AssetID: 1, Symbol: "ETH", Amount: 10},
		{AssetID: 2, Symbol: "SOL", Amount: 50},
	}
	prices := map[uint]float64{1: 10, 2: 5}

	report := Analyze(transactions, holdings, prices, analysisTime)

	assert.True(t, containsRecommendation(report.Recommendations,
		"Consider staking your ETH holdings"))
	assert.False(t, containsRecommendation(report.Recommendations,
		"Consider staking your SOL"))
}

func TestRecommendationsLowYield(t *testing.T) {
	// Four months of ETH rewards at around 1.2% a year, well under typical.
	var transactions []models.Transaction
	for month := time.March; month <= time.June; month++ {
		transactions = append(transactions,
			stakingTx(1, "ETH", 0.1, time.Date(2026, month, 1, 0, 0, 0, 0, time.UTC)))
	}
	holdings := []models.Holding{{AssetID: 1, Symbol: "ETH", Amount: 100}}
	prices := map[uint]float64{1: 10}

	report := Analyze(transactions, holdings, prices, analysisTime)

	assert.True(t, containsRecommendation(report.Recommendations,
		"Your staking yield for ETH appears lower than average"))
}

func TestRecommendationsShortHistory(t *testing.T) {
	transactions := []models.Transaction{
		stakingTx(1, "ETH", 1, time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)),
	}
	holdings := []models.Holding{{AssetID: 1, Symbol: "ETH", Amount: 100}}
	prices := map[uint]float64{1: 10}

	report := Analyze(transactions, holdings, prices, analysisTime)

	assert.True(t, containsRecommendation(report.Recommendations,
		"Staking history for ETH is still short"))
}

func TestRecommendationsInactiveStaking(t *testing.T) {
	transactions := []models.Transaction{
		stakingTx(1, "ETH", 1, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)),
		stakingTx(1, "ETH", 1, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)),
	}
	holdings := []models.Holding{{AssetID: 1, Symbol: "ETH", Amount: 100}}
	prices := map[uint]float64{1: 10}

	report := Analyze(transactions, holdings, prices, analysisTime)

	assert.True(t, containsRecommendation(report.Recommendations,
		"haven't received staking rewards for ETH"))
}

func TestRecommendationsProjectionAndCompounding(t *testing.T) {
	transactions := []models.Transaction{
		stakingTx(1, "ETH", 10, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)),
		stakingTx(1, "ETH", 10, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)),
	}
	holdings := []models.Holding{{AssetID: 1, Symbol: "ETH", Amount: 1000}}
	prices := map[uint]float64{1: 10}

	report := Analyze(transactions, holdings, prices, analysisTime)

	// $100/month projects to $1200 a year, over the compounding threshold.
	assert.True(t, containsRecommendation(report.Recommendations,
		"projected to earn approximately $1200.00"))
	assert.True(t, containsRecommendation(report.Recommendations,
		"Compounding your rewards"))
}

func TestHasIrregularCadence(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	regular := []time.Time{base, base.AddDate(0, 0, 7), base.AddDate(0, 0, 14), base.AddDate(0, 0, 21)}
	assert.False(t, hasIrregularCadence(regular))

	// A 30-day gap after weekly rewards is more than twice the average gap.
	irregular := []time.Time{base, base.AddDate(0, 0, 7), base.AddDate(0, 0, 14), base.AddDate(0, 0, 44)}
	assert.True(t, hasIrregularCadence(irregular))

	assert.False(t, hasIrregularCadence([]time.Time{base, base.AddDate(0, 0, 7)}))
}
