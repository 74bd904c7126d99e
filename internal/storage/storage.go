package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Storage is the process-wide database handle. It is opened once in main,
// shared by every request, and closed at shutdown.
type Storage struct {
	DB           *sql.DB
	db           bob.DB
	Transactions sqlconfig.ITransactionTable
	Budgets      sqlconfig.IBudgetTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	return newStorage(db), nil
}

func newStorage(db *sql.DB) *Storage {
	bobDB := bob.NewDB(db)

	return &Storage{
		DB:           db,
		db:           bobDB,
		Transactions: sqlconfig.NewTransactionsTable(bobDB),
		Budgets:      sqlconfig.NewBudgetsTable(bobDB),
	}
}

// Ping verifies the database is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// Write begins a database transaction and returns a Writer bound to it.
// Callers must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}

	return NewWriter(tx), nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
