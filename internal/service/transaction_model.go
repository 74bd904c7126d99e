package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/aggregation"
	"github.com/carson-networks/finance-tracker/internal/category"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

const dateLayout = "2006-01-02"

// TransactionInput carries the four mutable fields of a transaction for
// create and update.
type TransactionInput struct {
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Category    string
}

func (in TransactionInput) validate() error {
	if strings.TrimSpace(in.Description) == "" {
		return fmt.Errorf("%w: description", ErrMissingFields)
	}
	if in.Date.IsZero() {
		return fmt.Errorf("%w: date", ErrMissingFields)
	}
	if !ValidAmount(in.Amount) {
		return ErrAmountPrecision
	}
	return nil
}

// normalized trims the text fields, folds an empty category into
// Uncategorized and reduces the date to its calendar day.
func (in TransactionInput) normalized() TransactionInput {
	out := in
	out.Description = strings.TrimSpace(in.Description)
	out.Category = strings.TrimSpace(in.Category)
	if out.Category == "" {
		out.Category = category.Uncategorized
	}
	out.Date = CalendarDate(in.Date)
	return out
}

// ParseDate accepts either a plain calendar date (2006-01-02) or an RFC3339
// timestamp and returns the calendar date it names.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return CalendarDate(t), nil
}

// CalendarDate keeps the year, month and day of t as seen in t's own
// location and pins them to midnight UTC.
func CalendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a stored transaction date.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func transactionFromStorage(row *sqlconfig.Transaction) aggregation.Transaction {
	return aggregation.Transaction{
		ID:          row.ID,
		Description: row.Description,
		Amount:      row.Amount,
		Date:        row.TransactionDate,
		Category:    row.Category,
	}
}
