package aggregation

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultRecentCount = 5

// TotalSpending sums the absolute amounts of all transactions.
func TotalSpending(transactions []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		total = total.Add(t.Amount.Abs())
	}
	return total
}

// AverageTransaction is TotalSpending divided by the count, or 0 for none.
func AverageTransaction(transactions []Transaction) decimal.Decimal {
	if len(transactions) == 0 {
		return decimal.Zero
	}
	return TotalSpending(transactions).Div(decimal.NewFromInt(int64(len(transactions))))
}

// MonthSpending sums the absolute amounts of transactions dated in month.
func MonthSpending(transactions []Transaction, month string) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if MonthKey(t.Date) == month {
			total = total.Add(t.Amount.Abs())
		}
	}
	return total
}

// Summarize builds the dashboard view for the month containing now.
// transactions are expected newest first, so Recent holds the first recent
// entries.
func Summarize(transactions []Transaction, now time.Time, recent int) Summary {
	n := min(max(recent, 0), len(transactions))
	latest := make([]Transaction, n)
	copy(latest, transactions[:n])

	return Summary{
		TotalSpending:        TotalSpending(transactions),
		AverageTransaction:   AverageTransaction(transactions),
		CurrentMonthSpending: MonthSpending(transactions, CurrentMonth(now)),
		TransactionCount:     len(transactions),
		Recent:               latest,
		Trend:                MonthlyTrend(transactions, DefaultTrendMonths, now),
	}
}
