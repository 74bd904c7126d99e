package aggregation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrDuplicateBudget is returned when the budget store hands back more than
// one row for the same category and month.
var ErrDuplicateBudget = errors.New("duplicate budget for category and month")

type budgetKey struct {
	category string
	month    string
}

// spendingByCategory sums absolute amounts of the transactions dated in month.
func spendingByCategory(transactions []Transaction, month string) map[string]decimal.Decimal {
	spending := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if MonthKey(t.Date) != month {
			continue
		}
		name := categoryOf(t)
		current, ok := spending[name]
		if !ok {
			current = decimal.Zero
		}
		spending[name] = current.Add(t.Amount.Abs())
	}
	return spending
}

// BudgetsWithSpending pairs every budget with the spending recorded in its
// category during month. Budgets without spending get a zero row, never an
// omitted one.
func BudgetsWithSpending(budgets []Budget, transactions []Transaction, month string) ([]BudgetWithSpending, error) {
	spending := spendingByCategory(transactions, month)
	seen := make(map[budgetKey]struct{}, len(budgets))

	out := make([]BudgetWithSpending, 0, len(budgets))
	for _, b := range budgets {
		key := budgetKey{category: b.Category, month: b.Month}
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: %q %s", ErrDuplicateBudget, b.Category, b.Month)
		}
		seen[key] = struct{}{}

		spent, ok := spending[b.Category]
		if !ok {
			spent = decimal.Zero
		}

		out = append(out, BudgetWithSpending{
			ID:         b.ID,
			Category:   b.Category,
			Amount:     b.Amount,
			Month:      b.Month,
			Spending:   spent,
			Remaining:  b.Amount.Sub(spent),
			Percentage: clampPercentage(percentOf(spent, b.Amount)),
		})
	}

	return out, nil
}

// BudgetComparison totals the rows. The overall percentage follows the same
// cap as the per-budget one and is 0 when nothing is budgeted.
func BudgetComparison(rows []BudgetWithSpending) Comparison {
	totalBudget := decimal.Zero
	totalSpending := decimal.Zero
	for _, r := range rows {
		totalBudget = totalBudget.Add(r.Amount)
		totalSpending = totalSpending.Add(r.Spending)
	}

	budgets := make([]BudgetWithSpending, len(rows))
	copy(budgets, rows)

	return Comparison{
		TotalBudget:       totalBudget,
		TotalSpending:     totalSpending,
		TotalRemaining:    totalBudget.Sub(totalSpending),
		OverallPercentage: clampPercentage(percentOf(totalSpending, totalBudget)),
		Budgets:           budgets,
	}
}
