package valuation

// WeightedAveragePrice merges an existing position with a new purchase and
// returns the blended cost basis per unit. A degenerate zero total returns 0.
func WeightedAveragePrice(existingAmount, existingPrice, addedAmount, addedPrice float64) float64 {
	total := existingAmount + addedAmount
	if total <= 0 {
		return 0
	}
	return (existingAmount*existingPrice + addedAmount*addedPrice) / total
}
