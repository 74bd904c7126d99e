package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/aggregation"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	transactions sqlconfig.ITransactionTable
	operator     actionProcessor
	logger       *logrus.Logger
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, op actionProcessor, logger *logrus.Logger) *TransactionService {
	return &TransactionService{
		transactions: store.Transactions,
		operator:     op,
		logger:       logger,
	}
}

// ListAll returns every transaction, newest first. A storage failure is
// logged and yields an empty list.
func (s *TransactionService) ListAll(ctx context.Context) []aggregation.Transaction {
	transactions, err := s.list(ctx)
	if err != nil {
		s.logger.WithError(err).Error("TransactionService.ListAll")
		return []aggregation.Transaction{}
	}
	return transactions
}

func (s *TransactionService) list(ctx context.Context) ([]aggregation.Transaction, error) {
	rows, err := s.transactions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	out := make([]aggregation.Transaction, len(rows))
	for i, row := range rows {
		out[i] = transactionFromStorage(row)
	}
	return out, nil
}

// Create stores a new transaction and returns its ID.
func (s *TransactionService) Create(ctx context.Context, in TransactionInput) (uuid.UUID, error) {
	if err := in.validate(); err != nil {
		return uuid.Nil, err
	}
	in = in.normalized()

	action := &actions.CreateTransaction{
		Description:     in.Description,
		Amount:          in.Amount,
		TransactionDate: in.Date,
		Category:        in.Category,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return uuid.Nil, fmt.Errorf("create transaction: %w", err)
	}

	return action.ID, nil
}

// Update replaces the description, amount, date and category of a transaction.
func (s *TransactionService) Update(ctx context.Context, id uuid.UUID, in TransactionInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	in = in.normalized()

	err := s.operator.Process(ctx, &actions.UpdateTransaction{
		ID:              id,
		Description:     in.Description,
		Amount:          in.Amount,
		TransactionDate: in.Date,
		Category:        in.Category,
	})
	if err != nil {
		return fmt.Errorf("update transaction %s: %w", id, err)
	}
	return nil
}

// Delete removes a transaction.
func (s *TransactionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.operator.Process(ctx, &actions.DeleteTransaction{ID: id}); err != nil {
		return fmt.Errorf("delete transaction %s: %w", id, err)
	}
	return nil
}
