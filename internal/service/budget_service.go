package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/aggregation"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// BudgetService handles budget business logic.
type BudgetService struct {
	budgets  sqlconfig.IBudgetTable
	operator actionProcessor
	logger   *logrus.Logger
	now      clock
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store *storage.Storage, op actionProcessor, logger *logrus.Logger) *BudgetService {
	return &BudgetService{
		budgets:  store.Budgets,
		operator: op,
		logger:   logger,
		now:      time.Now,
	}
}

// CurrentMonth is the YYYY-MM key of the wall-clock month.
func (s *BudgetService) CurrentMonth() string {
	return aggregation.CurrentMonth(s.now())
}

// ListForMonth returns the budgets of month. A storage failure is logged and
// yields an empty list.
func (s *BudgetService) ListForMonth(ctx context.Context, month string) []aggregation.Budget {
	budgets, err := s.listForMonth(ctx, month)
	if err != nil {
		s.logger.WithError(err).WithField("month", month).Error("BudgetService.ListForMonth")
		return []aggregation.Budget{}
	}
	return budgets
}

func (s *BudgetService) listForMonth(ctx context.Context, month string) ([]aggregation.Budget, error) {
	rows, err := s.budgets.ListByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("list budgets for %s: %w", month, err)
	}

	out := make([]aggregation.Budget, len(rows))
	for i, row := range rows {
		out[i] = budgetFromStorage(row)
	}
	return out, nil
}

// Upsert creates the budget for (category, month) or replaces its amount.
func (s *BudgetService) Upsert(ctx context.Context, in BudgetInput) (uuid.UUID, error) {
	if err := in.validate(); err != nil {
		return uuid.Nil, err
	}

	action := &actions.UpsertBudget{
		Category: strings.TrimSpace(in.Category),
		Amount:   in.Amount,
		Month:    in.Month.GetOr(s.CurrentMonth()),
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return uuid.Nil, fmt.Errorf("upsert budget %s/%s: %w", action.Category, action.Month, err)
	}

	return action.ID, nil
}

// Delete removes a budget.
func (s *BudgetService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.operator.Process(ctx, &actions.DeleteBudget{ID: id}); err != nil {
		return fmt.Errorf("delete budget %s: %w", id, err)
	}
	return nil
}
