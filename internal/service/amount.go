package service

import "github.com/shopspring/decimal"

// AmountScale is the number of decimal places amounts are stored with.
const AmountScale = 2

// ValidAmount reports whether d fits the stored scale without rounding.
func ValidAmount(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(AmountScale))
}
