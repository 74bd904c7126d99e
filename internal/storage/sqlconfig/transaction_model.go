package sqlconfig

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when an update or delete matches no row.
var ErrNotFound = errors.New("record not found")

// Transaction represents a transaction record.
type Transaction struct {
	ID              uuid.UUID       `db:"id"`
	Description     string          `db:"description"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionDate time.Time       `db:"transaction_date"`
	Category        string          `db:"category"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Description     string
	Amount          decimal.Decimal
	TransactionDate time.Time
	Category        string
}

// TransactionUpdate replaces every mutable field of a transaction.
type TransactionUpdate struct {
	Description     string
	Amount          decimal.Decimal
	TransactionDate time.Time
	Category        string
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --inpackage --with-expecter --filename mock_ITransactionTable.go
type ITransactionTable interface {
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	List(ctx context.Context) ([]*Transaction, error)
	Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}
