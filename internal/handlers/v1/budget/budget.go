package budget

import (
	"github.com/carson-networks/finance-tracker/internal/aggregation"
)

// Budget is a budget together with the spending of its month.
type Budget struct {
	ID         string  `json:"id" doc:"Budget UUID"`
	Category   string  `json:"category" doc:"Category name"`
	Amount     string  `json:"amount" doc:"Monthly cap"`
	Month      string  `json:"month" doc:"YYYY-MM"`
	Spending   string  `json:"spending" doc:"Sum of absolute amounts spent in the category this month"`
	Remaining  string  `json:"remaining" doc:"Amount minus spending, negative when overspent"`
	Percentage float64 `json:"percentage" doc:"Spending as a percentage of amount, capped at 100"`
}

// Comparison totals all budgets of a month.
type Comparison struct {
	TotalBudget       string   `json:"totalBudget"`
	TotalSpending     string   `json:"totalSpending"`
	TotalRemaining    string   `json:"totalRemaining"`
	OverallPercentage float64  `json:"overallPercentage" doc:"Capped at 100"`
	Budgets           []Budget `json:"budgets"`
}

func FromComparison(c aggregation.Comparison) Comparison {
	out := Comparison{
		TotalBudget:       c.TotalBudget.String(),
		TotalSpending:     c.TotalSpending.String(),
		TotalRemaining:    c.TotalRemaining.String(),
		OverallPercentage: c.OverallPercentage,
		Budgets:           make([]Budget, len(c.Budgets)),
	}
	for i, b := range c.Budgets {
		out.Budgets[i] = Budget{
			ID:         b.ID.String(),
			Category:   b.Category,
			Amount:     b.Amount.String(),
			Month:      b.Month,
			Spending:   b.Spending.String(),
			Remaining:  b.Remaining.String(),
			Percentage: b.Percentage,
		}
	}
	return out
}
