package chart

import (
	"fmt"
	"time"

	"CryptoFolio/internal/services/staking"
	"CryptoFolio/internal/services/valuation"
)

// MaxBarAssets limits the performance bar chart to the largest positions.
const MaxBarAssets = 15

// minSliceAllocation drops dust positions from the allocation pie.
const minSliceAllocation = 1.0

// PieSlice is one labelled share of the allocation pie.
type PieSlice struct {
	Symbol     string
	Label      string
	Value      float64
	Allocation float64
}

// PieData describes the portfolio allocation pie chart.
type PieData struct {
	Slices []PieSlice
}

// BarEntry is one asset's profit/loss bar.
type BarEntry struct {
	Symbol     string
	ProfitLoss float64
	Pct        float64
}

// BarData describes the per-asset performance bar chart.
type BarData struct {
	Entries []BarEntry
}

// SeriesPoint is one month on a time axis.
type SeriesPoint struct {
	Month string
	Value float64
}

// SeriesData describes the staking rewards history line chart.
type SeriesData struct {
	Points []SeriesPoint
}

// ForecastData describes the forecast chart: monthly bars plus a cumulative
// line.
type ForecastData struct {
	Months     []string
	Monthly    []float64
	Cumulative []float64
}

// AllocationPie builds the allocation pie from a valuation summary, keeping
// only slices above one percent. Nil for an empty portfolio.
func AllocationPie(summary *valuation.Summary) *PieData {
	if summary == nil || len(summary.Holdings) == 0 {
		return nil
	}
	data := &PieData{}
	for i := range summary.Holdings {
		h := &summary.Holdings[i]
		if h.Allocation <= minSliceAllocation {
			continue
		}
		data.Slices = append(data.Slices, PieSlice{
			Symbol:     h.Symbol,
			Label:      fmt.Sprintf("%s (%.1f%%)", h.Symbol, h.Allocation),
			Value:      h.Value,
			Allocation: h.Allocation,
		})
	}
	if len(data.Slices) == 0 {
		return nil
	}
	return data
}

// PerformanceBars builds the profit/loss bar chart for the largest positions.
// Nil for an empty portfolio.
func PerformanceBars(summary *valuation.Summary) *BarData {
	if summary == nil || len(summary.Holdings) == 0 {
		return nil
	}
	data := &BarData{}
	for i := range summary.Holdings {
		if i >= MaxBarAssets {
			break
		}
		h := &summary.Holdings[i]
		data.Entries = append(data.Entries, BarEntry{
			Symbol:     h.Symbol,
			ProfitLoss: h.ProfitLoss,
			Pct:        h.ProfitLossPct,
		})
	}
	return data
}

// StakingHistory builds the rewards-over-time series from a staking report,
// appending the current month at zero when it has no rewards yet. Nil when
// there is no staking data.
func StakingHistory(report *staking.Report, now time.Time) *SeriesData {
	if report == nil || !report.HasData || len(report.ByMonth) == 0 {
		return nil
	}
	data := &SeriesData{}
	currentMonth := now.Format("2006-01")
	seen := false
	for _, month := range report.ByMonth {
		if month.Month == currentMonth {
			seen = true
		}
		data.Points = append(data.Points, SeriesPoint{Month: month.Month, Value: month.TotalValue})
	}
	if !seen {
		data.Points = append(data.Points, SeriesPoint{Month: currentMonth, Value: 0})
	}
	return data
}

// StakingForecast builds the forecast chart data. Nil when the report
// carries no projection.
func StakingForecast(report *staking.Report) *ForecastData {
	if report == nil || len(report.Forecast) == 0 {
		return nil
	}
	data := &ForecastData{}
	for _, point := range report.Forecast {
		data.Months = append(data.Months, point.Month)
		data.Monthly = append(data.Monthly, point.Income)
		data.Cumulative = append(data.Cumulative, point.Cumulative)
	}
	return data
}
