package valuation

// HoldingValuation is a single position valued at the latest known price.
type HoldingValuation struct {
	HoldingID     uint
	AssetID       uint
	Symbol        string
	Name          string
	Amount        float64
	PurchasePrice float64
	CurrentPrice  float64
	Value         float64
	Cost          float64
	ProfitLoss    float64
	ProfitLossPct float64
	Allocation    float64
	MarketCap     float64
}

// Summary is the whole portfolio valued at the latest known prices, with
// holdings ordered by value descending.
type Summary struct {
	Holdings      []HoldingValuation
	TotalValue    float64
	TotalCost     float64
	ProfitLoss    float64
	ProfitLossPct float64
	AssetCount    int
}

// MostValuable returns the largest position, nil for an empty portfolio
func (s *Summary) MostValuable() *HoldingValuation {
	if len(s.Holdings) == 0 {
		return nil
	}
	return &s.Holdings[0]
}

// Holds reports whether the portfolio contains the given symbol
func (s *Summary) Holds(symbol string) bool {
	for i := range s.Holdings {
		if s.Holdings[i].Symbol == symbol {
			return true
		}
	}
	return false
}
