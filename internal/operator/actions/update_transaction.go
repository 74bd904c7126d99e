package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// UpdateTransaction replaces all four mutable fields of an existing transaction.
type UpdateTransaction struct {
	ID              uuid.UUID
	Description     string
	Amount          decimal.Decimal
	TransactionDate time.Time
	Category        string
}

func (t *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transactions.Update(ctx, t.ID, &sqlconfig.TransactionUpdate{
		Description:     t.Description,
		Amount:          t.Amount,
		TransactionDate: t.TransactionDate,
		Category:        t.Category,
	})
}
