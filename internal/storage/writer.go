package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type txCloser interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type txExecutor interface {
	bob.Executor
	txCloser
}

// Writer exposes the tables inside one database transaction.
type Writer struct {
	tx           txCloser
	Transactions sqlconfig.ITransactionTable
	Budgets      sqlconfig.IBudgetTable
}

func NewWriter(tx txExecutor) *Writer {
	return &Writer{
		tx:           tx,
		Transactions: sqlconfig.NewTransactionsTable(tx),
		Budgets:      sqlconfig.NewBudgetsTable(tx),
	}
}

// NewWriterWithTables builds a Writer over arbitrary table implementations,
// committing through tx.
func NewWriterWithTables(tx txCloser, transactions sqlconfig.ITransactionTable, budgets sqlconfig.IBudgetTable) *Writer {
	return &Writer{
		tx:           tx,
		Transactions: transactions,
		Budgets:      budgets,
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
