package aggregation

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultTrendMonths = 6

// MonthlyTrend buckets absolute amounts into the monthsBack months ending at
// reference, oldest first. Every bucket is present even when empty and
// transactions outside the window are ignored.
func MonthlyTrend(transactions []Transaction, monthsBack int, reference time.Time) []TrendPoint {
	if monthsBack <= 0 {
		return []TrendPoint{}
	}

	points := make([]TrendPoint, monthsBack)
	index := make(map[string]int, monthsBack)
	for i := range points {
		offset := time.Month(monthsBack - 1 - i)
		month := time.Date(reference.Year(), reference.Month()-offset, 1, 0, 0, 0, 0, reference.Location())
		label := MonthLabel(month)

		points[i] = TrendPoint{Month: label, Amount: decimal.Zero}
		index[label] = i
	}

	for _, t := range transactions {
		i, ok := index[MonthLabel(t.Date)]
		if !ok {
			continue
		}
		points[i].Amount = points[i].Amount.Add(t.Amount.Abs())
	}

	return points
}
