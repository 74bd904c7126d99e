package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// IAction is a single mutation. Perform runs inside one database transaction;
// returning an error rolls the whole action back.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
