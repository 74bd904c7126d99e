// Package aggregation derives spend-vs-budget and insight views from raw
// transactions and budgets. Every function is pure: inputs are never
// modified and identical inputs give identical outputs.
package aggregation

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction is a ledger entry as read from the transaction store.
type Transaction struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Category    string
}

// Budget is a monthly cap for one category as read from the budget store.
type Budget struct {
	ID       uuid.UUID
	Category string
	Amount   decimal.Decimal
	Month    string
}

// BudgetWithSpending is a budget combined with the month's spending in its category.
// Percentage is capped at 100; overspend shows up as a negative Remaining.
type BudgetWithSpending struct {
	ID         uuid.UUID
	Category   string
	Amount     decimal.Decimal
	Month      string
	Spending   decimal.Decimal
	Remaining  decimal.Decimal
	Percentage float64
}

// Comparison totals a set of BudgetWithSpending rows.
type Comparison struct {
	TotalBudget       decimal.Decimal
	TotalSpending     decimal.Decimal
	TotalRemaining    decimal.Decimal
	OverallPercentage float64
	Budgets           []BudgetWithSpending
}

// SpendingInsight summarises all transactions in one category.
type SpendingInsight struct {
	Category   string
	Total      decimal.Decimal
	Percentage float64
	Average    decimal.Decimal
	Count      int
}

// TrendPoint is one month bucket of a trend series, labelled like "Jan 2025".
type TrendPoint struct {
	Month  string
	Amount decimal.Decimal
}

// CategorySpend is one slice of the category breakdown chart.
type CategorySpend struct {
	Category string
	Amount   decimal.Decimal
	Color    string
}

// Summary is the dashboard headline view.
type Summary struct {
	TotalSpending        decimal.Decimal
	AverageTransaction   decimal.Decimal
	CurrentMonthSpending decimal.Decimal
	TransactionCount     int
	Recent               []Transaction
	Trend                []TrendPoint
}
