package valuation

import (
	"sort"

	"CryptoFolio/internal/models"
)

// Calculate values every holding at the latest known price and aggregates
// the portfolio totals. Assets without a price entry are valued at zero.
func Calculate(holdings []models.Holding, prices map[uint]float64) *Summary {
	summary := &Summary{
		Holdings: make([]HoldingValuation, 0, len(holdings)),
	}

	for i := range holdings {
		h := &holdings[i]
		price := prices[h.AssetID]

		hv := HoldingValuation{
			HoldingID:     h.ID,
			AssetID:       h.AssetID,
			Symbol:        h.Symbol,
			Name:          h.Name,
			Amount:        h.Amount,
			PurchasePrice: h.PurchasePrice,
			CurrentPrice:  price,
			Value:         h.Amount * price,
			Cost:          h.Amount * h.PurchasePrice,
			MarketCap:     h.MarketCap,
		}
		hv.ProfitLoss = hv.Value - hv.Cost
		if hv.Cost > 0 {
			hv.ProfitLossPct = hv.ProfitLoss / hv.Cost * 100
		}

		summary.Holdings = append(summary.Holdings, hv)
		summary.TotalValue += hv.Value
		summary.TotalCost += hv.Cost
	}

	summary.ProfitLoss = summary.TotalValue - summary.TotalCost
	if summary.TotalCost > 0 {
		summary.ProfitLossPct = summary.ProfitLoss / summary.TotalCost * 100
	}
	summary.AssetCount = len(summary.Holdings)

	sort.SliceStable(summary.Holdings, func(i, j int) bool {
		return summary.Holdings[i].Value > summary.Holdings[j].Value
	})

	if summary.TotalValue > 0 {
		for i := range summary.Holdings {
			summary.Holdings[i].Allocation = summary.Holdings[i].Value / summary.TotalValue * 100
		}
	}

	return summary
}
