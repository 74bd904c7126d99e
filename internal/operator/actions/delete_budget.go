package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

type DeleteBudget struct {
	ID uuid.UUID
}

func (b *DeleteBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Budgets.Delete(ctx, b.ID)
}
