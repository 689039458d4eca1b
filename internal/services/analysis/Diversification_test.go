package analysis

import (
	"fmt"
	"testing"

	"CryptoFolio/internal/models"
	"CryptoFolio/internal/services/valuation"

	"github.com/stretchr/testify/assert"
)

// equalPortfolio builds a summary of n equally-weighted holdings.
func equalPortfolio(n int) *valuation.Summary {
	holdings := make([]models.Holding, 0, n)
	prices := make(map[uint]float64, n)
	for i := 1; i <= n; i++ {
		holdings = append(holdings, models.Holding{
			ID:            uint(i),
			AssetID:       uint(i),
			Symbol:        fmt.Sprintf("A%d", i),
			Amount:        1,
			PurchasePrice: 100,
		})
		prices[uint(i)] = 100
	}
	return valuation.Calculate(holdings, prices)
}

func TestCalculateDiversificationEmpty(t *testing.T) {
	result := CalculateDiversification(valuation.Calculate(nil, nil))

	assert.Equal(t, 0, result.Score)
	assert.Contains(t, result.Description, "empty")
}

func TestCalculateDiversificationSingleAsset(t *testing.T) {
	result := CalculateDiversification(equalPortfolio(1))

	// One asset concentrates everything: HHI is maximal.
	assert.InDelta(t, 100.0, result.HHI, 1e-9)
	assert.Equal(t, 1, result.Score)
}

func TestCalculateDiversificationTwoEqualAssets(t *testing.T) {
	result := CalculateDiversification(equalPortfolio(2))

	assert.InDelta(t, 50.0, result.HHI, 1e-9)
	assert.Equal(t, 4, result.Score)
}

func TestCalculateDiversificationTenEqualAssets(t *testing.T) {
	result := CalculateDiversification(equalPortfolio(10))

	assert.InDelta(t, 10.0, result.HHI, 1e-9)
	assert.Equal(t, 10, result.Score)
	assert.Contains(t, result.Description, "well-diversified")
}

func TestDescriptionTracksScore(t *testing.T) {
	assert.Contains(t, describeScore(9), "well-diversified")
	assert.Contains(t, describeScore(6), "decent diversification")
	assert.Contains(t, describeScore(2), "needs better diversification")
}
