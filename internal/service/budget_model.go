package service

import (
	"strings"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/aggregation"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// BudgetInput sets the monthly cap of one category. Month defaults to the
// current month when unset.
type BudgetInput struct {
	Category string
	Amount   decimal.Decimal
	Month    omit.Val[string]
}

func (in BudgetInput) validate() error {
	if strings.TrimSpace(in.Category) == "" {
		return ErrMissingCategory
	}
	if in.Amount.IsNegative() {
		return ErrNegativeBudget
	}
	if !ValidAmount(in.Amount) {
		return ErrAmountPrecision
	}
	if month, ok := in.Month.Get(); ok && !aggregation.ValidMonth(month) {
		return ErrInvalidMonth
	}
	return nil
}

func budgetFromStorage(row *sqlconfig.Budget) aggregation.Budget {
	return aggregation.Budget{
		ID:       row.ID,
		Category: row.Category,
		Amount:   row.Amount,
		Month:    row.Month,
	}
}
