package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type CreateTransaction struct {
	Description     string
	Amount          decimal.Decimal
	TransactionDate time.Time
	Category        string

	// ID is set once the row has been inserted.
	ID uuid.UUID
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		Description:     t.Description,
		Amount:          t.Amount,
		TransactionDate: t.TransactionDate,
		Category:        t.Category,
	})
	if err != nil {
		return err
	}

	t.ID = id
	return nil
}
