package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/finance-tracker/internal/aggregation"
)

// InsightService composes the read views derived from transactions and
// budgets. A failed fetch of either store degrades that store's data to
// empty; only inconsistent stored data is reported as an error.
type InsightService struct {
	transactions *TransactionService
	budgets      *BudgetService
	logger       *logrus.Logger
	now          clock
}

// NewInsightService creates a new InsightService.
func NewInsightService(transactions *TransactionService, budgets *BudgetService, logger *logrus.Logger) *InsightService {
	return &InsightService{
		transactions: transactions,
		budgets:      budgets,
		logger:       logger,
		now:          time.Now,
	}
}

// load fetches all transactions and the budgets of month concurrently. Each
// fetch degrades to an empty slice on its own.
func (s *InsightService) load(ctx context.Context, month string) ([]aggregation.Transaction, []aggregation.Budget) {
	var (
		transactions []aggregation.Transaction
		budgets      []aggregation.Budget
	)

	var g errgroup.Group
	g.Go(func() error {
		transactions = s.transactions.ListAll(ctx)
		return nil
	})
	g.Go(func() error {
		budgets = s.budgets.ListForMonth(ctx, month)
		return nil
	})
	_ = g.Wait()

	return transactions, budgets
}

// BudgetOverview compares the budgets of month against that month's spending.
// An empty month means the current month.
func (s *InsightService) BudgetOverview(ctx context.Context, month string) (aggregation.Comparison, error) {
	if month == "" {
		month = aggregation.CurrentMonth(s.now())
	}
	if !aggregation.ValidMonth(month) {
		return aggregation.Comparison{}, ErrInvalidMonth
	}

	transactions, budgets := s.load(ctx, month)
	return overview(budgets, transactions, month)
}

func overview(budgets []aggregation.Budget, transactions []aggregation.Transaction, month string) (aggregation.Comparison, error) {
	rows, err := aggregation.BudgetsWithSpending(budgets, transactions, month)
	if err != nil {
		return aggregation.Comparison{}, err
	}
	return aggregation.BudgetComparison(rows), nil
}

// Insights builds the insight summary with a trend of monthsBack months
// ending at the current month.
func (s *InsightService) Insights(ctx context.Context, monthsBack int) (InsightSummary, error) {
	now := s.now()
	month := aggregation.CurrentMonth(now)
	transactions, budgets := s.load(ctx, month)

	comparison, err := overview(budgets, transactions, month)
	if err != nil {
		return InsightSummary{}, err
	}

	insights := aggregation.CategoryInsights(transactions)
	decorated := make([]CategoryInsight, len(insights))
	for i, insight := range insights {
		decorated[i] = decorate(insight)
	}

	return InsightSummary{
		Categories:         decorated,
		TopCategory:        decoratePtr(aggregation.TopCategory(insights)),
		MostFrequent:       decoratePtr(aggregation.MostFrequentCategory(insights)),
		AverageTransaction: aggregation.AverageTransaction(transactions),
		Trend:              aggregation.MonthlyTrend(transactions, monthsBack, now),
		Budget:             comparison,
	}, nil
}

// Dashboard returns the headline summary for the current month.
func (s *InsightService) Dashboard(ctx context.Context) aggregation.Summary {
	transactions := s.transactions.ListAll(ctx)
	return aggregation.Summarize(transactions, s.now(), aggregation.DefaultRecentCount)
}

// CategoryBreakdown returns per-category spending for the breakdown chart.
func (s *InsightService) CategoryBreakdown(ctx context.Context) []aggregation.CategorySpend {
	return aggregation.CategoryBreakdown(s.transactions.ListAll(ctx))
}
