package sqlconfig

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const budgetsTableName = "budgets"

var budgetColumns = []any{"id", "category", "amount", "month", "created_at", "updated_at"}

var _ IBudgetTable = (*BudgetsTable)(nil)

type BudgetsTable struct {
	exec bob.Executor
}

func NewBudgetsTable(exec bob.Executor) *BudgetsTable {
	return &BudgetsTable{exec: exec}
}

// ListByMonth returns the budgets of a single "YYYY-MM" month ordered by category.
func (t *BudgetsTable) ListByMonth(ctx context.Context, month string) ([]*Budget, error) {
	query := psql.Select(
		sm.Columns(budgetColumns...),
		sm.From(budgetsTableName),
		sm.Where(psql.Quote("month").EQ(psql.Arg(month))),
		sm.OrderBy(psql.Quote("category")).Asc(),
	)

	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[*Budget]())
	if err != nil {
		return nil, fmt.Errorf("list budgets for %s: %w", month, err)
	}
	return rows, nil
}

// Upsert inserts the budget or, when one already exists for the same
// category and month, replaces its amount. The unique constraint on
// (category, month) makes this a single atomic statement.
func (t *BudgetsTable) Upsert(ctx context.Context, upsert *BudgetUpsert) (uuid.UUID, error) {
	query := psql.Insert(
		im.Into(budgetsTableName, "category", "amount", "month", "updated_at"),
		im.Values(psql.Arg(upsert.Category, upsert.Amount, upsert.Month, time.Now().UTC())),
		im.OnConflict("category", "month").DoUpdate(
			im.SetExcluded("amount", "updated_at"),
		),
		im.Returning("id"),
	)

	id, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, fmt.Errorf("upsert budget %q %s: %w", upsert.Category, upsert.Month, err)
	}
	return id, nil
}

// Delete removes a budget by primary key.
func (t *BudgetsTable) Delete(ctx context.Context, id uuid.UUID) error {
	query := psql.Delete(
		dm.From(budgetsTableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return fmt.Errorf("delete budget %s: %w", id, err)
	}
	return requireAffected(result, id)
}
