package service

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/aggregation"
	"github.com/carson-networks/finance-tracker/internal/category"
)

// CategoryInsight is a SpendingInsight decorated with the registry's display
// icon and colour for its category.
type CategoryInsight struct {
	aggregation.SpendingInsight
	Icon  string
	Color string
}

// InsightSummary is everything the insights view shows.
type InsightSummary struct {
	Categories         []CategoryInsight
	TopCategory        *CategoryInsight
	MostFrequent       *CategoryInsight
	AverageTransaction decimal.Decimal
	Trend              []aggregation.TrendPoint
	Budget             aggregation.Comparison
}

func decorate(insight aggregation.SpendingInsight) CategoryInsight {
	c := category.Lookup(insight.Category)
	return CategoryInsight{
		SpendingInsight: insight,
		Icon:            c.Icon,
		Color:           c.Color,
	}
}

func decoratePtr(insight aggregation.SpendingInsight, ok bool) *CategoryInsight {
	if !ok {
		return nil
	}
	d := decorate(insight)
	return &d
}
