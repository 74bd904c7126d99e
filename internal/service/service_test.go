package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// mockProcessor is a mock for actionProcessor.
type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

type testDeps struct {
	svc          *Service
	transactions *sqlconfig.MockITransactionTable
	budgets      *sqlconfig.MockIBudgetTable
	operator     *mockProcessor
}

var fixedNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func newTestDeps(t *testing.T) testDeps {
	t.Helper()
	transactions := sqlconfig.NewMockITransactionTable(t)
	budgets := sqlconfig.NewMockIBudgetTable(t)
	op := &mockProcessor{}
	t.Cleanup(func() { op.AssertExpectations(t) })

	logger := logrus.New()
	logger.Out = io.Discard

	store := &storage.Storage{Transactions: transactions, Budgets: budgets}
	svc := NewService(store, op, logger)
	svc.Budget.now = func() time.Time { return fixedNow }
	svc.Insight.now = func() time.Time { return fixedNow }

	return testDeps{
		svc:          svc,
		transactions: transactions,
		budgets:      budgets,
		operator:     op,
	}
}
