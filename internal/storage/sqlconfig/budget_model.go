package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Budget represents a budget record. At most one exists per (Category, Month).
type Budget struct {
	ID        uuid.UUID       `db:"id"`
	Category  string          `db:"category"`
	Amount    decimal.Decimal `db:"amount"`
	Month     string          `db:"month"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// BudgetUpsert is the input for creating or replacing the budget of a category and month.
type BudgetUpsert struct {
	Category string
	Amount   decimal.Decimal
	Month    string
}

// IBudgetTable defines the interface for budget storage operations.
//
//go:generate mockery --name IBudgetTable --inpackage --with-expecter --filename mock_IBudgetTable.go
type IBudgetTable interface {
	ListByMonth(ctx context.Context, month string) ([]*Budget, error)
	Upsert(ctx context.Context, upsert *BudgetUpsert) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
