package service

import "errors"

// Validation errors. Each is safe to show to the user.
var (
	ErrMissingFields   = errors.New("missing required fields")
	ErrMissingCategory = errors.New("category is required")
	ErrNegativeBudget  = errors.New("budget amount must not be negative")
	ErrInvalidMonth    = errors.New("month must be formatted as YYYY-MM")
	ErrAmountPrecision = errors.New("amount must have at most two decimal places")
)

// IsValidation reports whether err is one of the validation errors above.
func IsValidation(err error) bool {
	for _, v := range []error{
		ErrMissingFields,
		ErrMissingCategory,
		ErrNegativeBudget,
		ErrInvalidMonth,
		ErrAmountPrecision,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
