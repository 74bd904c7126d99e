package aggregation

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/category"
)

var hundred = decimal.NewFromInt(100)

// breakdownPalette colours the category breakdown by position.
var breakdownPalette = []string{
	"#3B82F6", "#EF4444", "#10B981", "#F59E0B",
	"#8B5CF6", "#EC4899", "#06B6D4", "#84CC16",
}

type categoryGroup struct {
	category string
	total    decimal.Decimal
	count    int
}

func categoryOf(t Transaction) string {
	if t.Category == "" {
		return category.Uncategorized
	}
	return t.Category
}

// groupByCategory sums absolute amounts per category in first-encounter order.
func groupByCategory(transactions []Transaction) []categoryGroup {
	var groups []categoryGroup
	index := make(map[string]int)

	for _, t := range transactions {
		name := categoryOf(t)
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, categoryGroup{category: name, total: decimal.Zero})
		}
		groups[i].total = groups[i].total.Add(t.Amount.Abs())
		groups[i].count++
	}

	return groups
}

// percentOf returns part/whole*100, or 0 when whole is not positive.
func percentOf(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	return part.Div(whole).Mul(hundred).InexactFloat64()
}

func clampPercentage(p float64) float64 {
	return max(0, min(p, 100))
}

// CategoryBreakdown returns per-category totals in first-encounter order,
// coloured from a fixed palette by position.
func CategoryBreakdown(transactions []Transaction) []CategorySpend {
	groups := groupByCategory(transactions)

	out := make([]CategorySpend, len(groups))
	for i, g := range groups {
		out[i] = CategorySpend{
			Category: g.category,
			Amount:   g.total,
			Color:    breakdownPalette[i%len(breakdownPalette)],
		}
	}
	return out
}
