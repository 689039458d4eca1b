package staking

import (
	"time"
)

// Confidence grades for an APY estimate, derived from the observed span of
// staking history.
const (
	ConfidenceNone   = "none"
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

const (
	// EstablishedSpanDays is the observed span at which yield moves from
	// direct annualization to the monthly-average model.
	EstablishedSpanDays = 30
	// MediumSpanDays and HighSpanDays grade estimate confidence.
	MediumSpanDays = 60
	HighSpanDays   = 180

	// LongSpanAPYCap and ShortSpanAPYCap bound the reported yield. Tunable,
	// not load-bearing.
	LongSpanAPYCap  = 1000.0
	ShortSpanAPYCap = 500.0

	// InactiveDays flags a previously-staked asset with no recent rewards.
	InactiveDays = 45

	// CompoundingThresholdUSD is the projected yearly income above which
	// compounding is suggested.
	CompoundingThresholdUSD = 500.0
)

// AssetStaking aggregates the staking rewards of one asset.
type AssetStaking struct {
	AssetID          uint
	Symbol           string
	Name             string
	TotalAmount      float64
	TotalValue       float64
	MonthlyAvgAmount float64
	MonthlyAvgValue  float64
	APY              float64
	Confidence       string
	SpanDays         int
	LastReward       time.Time
	Timestamps       []time.Time
}

// MonthStaking is the reward income of one calendar month at current prices.
type MonthStaking struct {
	Month      string
	TotalValue float64
}

// ForecastPoint is one month of projected staking income.
type ForecastPoint struct {
	Month      string
	Income     float64
	Cumulative float64
}

// Report is a full staking analysis pass: totals, per-asset yields, monthly
// history, a 12-month forecast and recommendations.
type Report struct {
	HasData         bool
	Message         string
	TotalIncome     float64
	MonthlyAverage  float64
	AverageAPY      float64
	ByAsset         []AssetStaking
	ByMonth         []MonthStaking
	Forecast        []ForecastPoint
	Recommendations []string
}
