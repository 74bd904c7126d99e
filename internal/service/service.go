package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// actionProcessor runs a write action inside a database transaction.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Budget      *BudgetService
	Insight     *InsightService
}

// NewService creates a new Service with the given storage and write path.
func NewService(store *storage.Storage, op actionProcessor, logger *logrus.Logger) *Service {
	transactions := NewTransactionService(store, op, logger)
	budgets := NewBudgetService(store, op, logger)

	return &Service{
		Transaction: transactions,
		Budget:      budgets,
		Insight:     NewInsightService(transactions, budgets, logger),
	}
}

// clock returns the wall-clock time used to resolve the current month.
type clock func() time.Time
