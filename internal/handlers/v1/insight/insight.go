package insight

import (
	"github.com/carson-networks/finance-tracker/internal/aggregation"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/budget"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// CategoryInsight summarises one category's spending.
type CategoryInsight struct {
	Category   string  `json:"category"`
	Total      string  `json:"total" doc:"Sum of absolute amounts"`
	Percentage float64 `json:"percentage" doc:"Share of all spending"`
	Average    string  `json:"average" doc:"Total divided by count"`
	Count      int     `json:"count"`
	Icon       string  `json:"icon"`
	Color      string  `json:"color"`
}

type TrendPoint struct {
	Month  string `json:"month" doc:"Label such as Jan 2025"`
	Amount string `json:"amount"`
}

type InsightsBody struct {
	Categories         []CategoryInsight `json:"categories" doc:"Sorted by total, highest first"`
	TopCategory        *CategoryInsight  `json:"topCategory,omitempty"`
	MostFrequent       *CategoryInsight  `json:"mostFrequent,omitempty"`
	AverageTransaction string            `json:"averageTransaction"`
	Trend              []TrendPoint      `json:"trend" doc:"Oldest month first"`
	Budget             budget.Comparison `json:"budget" doc:"Current month budget comparison"`
}

type DashboardBody struct {
	TotalSpending        string                    `json:"totalSpending"`
	AverageTransaction   string                    `json:"averageTransaction"`
	CurrentMonthSpending string                    `json:"currentMonthSpending"`
	TransactionCount     int                       `json:"transactionCount"`
	Recent               []transaction.Transaction `json:"recent" doc:"Most recent transactions"`
	Trend                []TrendPoint              `json:"trend" doc:"Last six months, oldest first"`
}

func fromCategoryInsight(c service.CategoryInsight) CategoryInsight {
	return CategoryInsight{
		Category:   c.Category,
		Total:      c.Total.String(),
		Percentage: c.Percentage,
		Average:    c.Average.String(),
		Count:      c.Count,
		Icon:       c.Icon,
		Color:      c.Color,
	}
}

func fromCategoryInsightPtr(c *service.CategoryInsight) *CategoryInsight {
	if c == nil {
		return nil
	}
	out := fromCategoryInsight(*c)
	return &out
}

func fromTrend(points []aggregation.TrendPoint) []TrendPoint {
	out := make([]TrendPoint, len(points))
	for i, p := range points {
		out[i] = TrendPoint{Month: p.Month, Amount: p.Amount.String()}
	}
	return out
}

func fromSummary(s service.InsightSummary) InsightsBody {
	out := InsightsBody{
		Categories:         make([]CategoryInsight, len(s.Categories)),
		TopCategory:        fromCategoryInsightPtr(s.TopCategory),
		MostFrequent:       fromCategoryInsightPtr(s.MostFrequent),
		AverageTransaction: s.AverageTransaction.String(),
		Trend:              fromTrend(s.Trend),
		Budget:             budget.FromComparison(s.Budget),
	}
	for i, c := range s.Categories {
		out.Categories[i] = fromCategoryInsight(c)
	}
	return out
}

func fromDashboard(s aggregation.Summary) DashboardBody {
	out := DashboardBody{
		TotalSpending:        s.TotalSpending.String(),
		AverageTransaction:   s.AverageTransaction.String(),
		CurrentMonthSpending: s.CurrentMonthSpending.String(),
		TransactionCount:     s.TransactionCount,
		Recent:               make([]transaction.Transaction, len(s.Recent)),
		Trend:                fromTrend(s.Trend),
	}
	for i, t := range s.Recent {
		out.Recent[i] = transaction.FromService(t)
	}
	return out
}
