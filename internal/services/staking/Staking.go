package staking

import (
	"sort"
	"time"

	"CryptoFolio/internal/models"
)

// ForecastMonths is the length of the income projection.
const ForecastMonths = 12

// Analyze turns the STAKING transaction history into a full Report. Rewards
// are valued at current prices, so the report expresses the present worth of
// past income rather than realized value. Transactions are expected in
// chronological order; assets without a price entry value at zero.
func Analyze(transactions []models.Transaction, holdings []models.Holding, prices map[uint]float64, now time.Time) *Report {
	report := &Report{}
	if len(transactions) == 0 {
		report.Message = "No staking data available. Add staking income transactions to see analysis."
		return report
	}
	report.HasData = true

	byAsset := make(map[uint]*AssetStaking)
	byMonth := make(map[uint]map[string]float64)
	monthTotals := make(map[string]float64)

	for i := range transactions {
		tx := &transactions[i]
		if tx.Type != models.TransactionTypeStaking {
			continue
		}
		price := prices[tx.AssetID]
		value := tx.Amount * price
		monthKey := tx.Timestamp.Format("2006-01")

		report.TotalIncome += value
		monthTotals[monthKey] += value

		entry, ok := byAsset[tx.AssetID]
		if !ok {
			entry = &AssetStaking{
				AssetID: tx.AssetID,
				Symbol:  tx.Symbol,
				Name:    tx.Name,
			}
			byAsset[tx.AssetID] = entry
			byMonth[tx.AssetID] = make(map[string]float64)
		}
		entry.TotalAmount += tx.Amount
		entry.TotalValue += value
		entry.Timestamps = append(entry.Timestamps, tx.Timestamp)
		if tx.Timestamp.After(entry.LastReward) {
			entry.LastReward = tx.Timestamp
		}
		byMonth[tx.AssetID][monthKey] += tx.Amount
	}

	if len(byAsset) == 0 {
		report.HasData = false
		report.Message = "No staking data available. Add staking income transactions to see analysis."
		return report
	}

	if len(monthTotals) > 0 {
		report.MonthlyAverage = report.TotalIncome / float64(len(monthTotals))
	}

	heldAmounts := make(map[uint]float64, len(holdings))
	for i := range holdings {
		heldAmounts[holdings[i].AssetID] = holdings[i].Amount
	}

	apySum := 0.0
	for assetID, entry := range byAsset {
		sort.Slice(entry.Timestamps, func(i, j int) bool {
			return entry.Timestamps[i].Before(entry.Timestamps[j])
		})
		first := entry.Timestamps[0]
		last := entry.Timestamps[len(entry.Timestamps)-1]
		entry.SpanDays = int(last.Sub(first).Hours() / 24)

		// Average over the full month span, counting empty months.
		months := monthsSpanned(first, last)
		entry.MonthlyAvgAmount = entry.TotalAmount / float64(months)

		price := prices[assetID]
		entry.MonthlyAvgValue = entry.MonthlyAvgAmount * price

		held, isHeld := heldAmounts[assetID]
		if !isHeld {
			entry.Confidence = ConfidenceNone
		} else {
			entry.Confidence = gradeConfidence(entry.SpanDays)
			entry.APY = estimateAPY(entry, held, price)
		}
		apySum += entry.APY
	}
	report.AverageAPY = apySum / float64(len(byAsset))

	for _, entry := range byAsset {
		report.ByAsset = append(report.ByAsset, *entry)
	}
	sort.SliceStable(report.ByAsset, func(i, j int) bool {
		return report.ByAsset[i].TotalValue > report.ByAsset[j].TotalValue
	})

	for month, value := range monthTotals {
		report.ByMonth = append(report.ByMonth, MonthStaking{Month: month, TotalValue: value})
	}
	sort.Slice(report.ByMonth, func(i, j int) bool {
		return report.ByMonth[i].Month < report.ByMonth[j].Month
	})

	report.Forecast = forecast(report.MonthlyAverage, now)
	report.Recommendations = generateRecommendations(report, holdings, now)

	return report
}

// estimateAPY annualizes an asset's reward stream against its staked value.
// Established histories use the monthly-average model; short spans annualize
// the observed total directly. A zero span yields zero.
func estimateAPY(entry *AssetStaking, held, price float64) float64 {
	stakedValue := held * price
	if stakedValue <= 0 {
		return 0
	}

	if entry.SpanDays >= EstablishedSpanDays {
		monthlyValue := entry.MonthlyAvgAmount * price
		// Implausibly small stake relative to rewards: the holding record
		// does not reflect what is actually staked, so skip the estimate.
		if stakedValue < monthlyValue/10 {
			return 0
		}
		apy := monthlyValue * 12 / stakedValue * 100
		if apy > LongSpanAPYCap {
			apy = LongSpanAPYCap
		}
		return apy
	}

	if entry.SpanDays <= 0 {
		return 0
	}
	annualValue := entry.TotalValue * 365 / float64(entry.SpanDays)
	apy := annualValue / stakedValue * 100
	if apy > ShortSpanAPYCap {
		apy = ShortSpanAPYCap
	}
	return apy
}

func gradeConfidence(spanDays int) string {
	switch {
	case spanDays >= HighSpanDays:
		return ConfidenceHigh
	case spanDays >= MediumSpanDays:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// monthsSpanned counts the calendar months between two timestamps inclusive,
// so Jan 31 to Feb 1 spans two months.
func monthsSpanned(first, last time.Time) int {
	years := last.Year() - first.Year()
	months := int(last.Month()) - int(first.Month())
	total := years*12 + months + 1
	if total < 1 {
		return 1
	}
	return total
}

// forecast projects the monthly average flat over the coming year with a
// running cumulative sum. Nil when there is no income to project.
func forecast(monthlyAverage float64, now time.Time) []ForecastPoint {
	if monthlyAverage <= 0 {
		return nil
	}
	points := make([]ForecastPoint, 0, ForecastMonths)
	// Anchor on the first of the month so AddDate never rolls a 29th-31st
	// date into the month after next.
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	cumulative := 0.0
	for i := 1; i <= ForecastMonths; i++ {
		cumulative += monthlyAverage
		points = append(points, ForecastPoint{
			Month:      anchor.AddDate(0, i, 0).Format("2006-01"),
			Income:     monthlyAverage,
			Cumulative: cumulative,
		})
	}
	return points
}
