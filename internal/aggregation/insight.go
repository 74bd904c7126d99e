package aggregation

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CategoryInsights returns one insight per category sorted by total
// descending. Categories with equal totals keep their encounter order.
func CategoryInsights(transactions []Transaction) []SpendingInsight {
	groups := groupByCategory(transactions)
	grandTotal := TotalSpending(transactions)

	out := make([]SpendingInsight, len(groups))
	for i, g := range groups {
		out[i] = SpendingInsight{
			Category:   g.category,
			Total:      g.total,
			Percentage: percentOf(g.total, grandTotal),
			Average:    g.total.Div(decimal.NewFromInt(int64(g.count))),
			Count:      g.count,
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out
}

// ByFrequency returns a copy of insights ordered by transaction count
// descending. The input slice is left untouched.
func ByFrequency(insights []SpendingInsight) []SpendingInsight {
	out := make([]SpendingInsight, len(insights))
	copy(out, insights)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// TopCategory returns the highest-spending insight of a CategoryInsights result.
func TopCategory(insights []SpendingInsight) (SpendingInsight, bool) {
	if len(insights) == 0 {
		return SpendingInsight{}, false
	}
	return insights[0], true
}

// MostFrequentCategory returns the insight with the most transactions.
func MostFrequentCategory(insights []SpendingInsight) (SpendingInsight, bool) {
	return TopCategory(ByFrequency(insights))
}
