package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// UpsertBudget sets the budget for a category and month, replacing the
// amount if one already exists.
type UpsertBudget struct {
	Category string
	Amount   decimal.Decimal
	Month    string

	// ID is the id of the created or updated row.
	ID uuid.UUID
}

func (b *UpsertBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Budgets.Upsert(ctx, &sqlconfig.BudgetUpsert{
		Category: b.Category,
		Amount:   b.Amount,
		Month:    b.Month,
	})
	if err != nil {
		return err
	}

	b.ID = id
	return nil
}
