package transaction

import (
	"net/http"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/aggregation"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/response"
	"github.com/carson-networks/finance-tracker/internal/service"
)

const msgMissingFields = "Missing required fields"

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	Description string `json:"description" doc:"What the money was spent on"`
	Amount      string `json:"amount" doc:"Signed decimal amount"`
	Date        string `json:"date" doc:"Calendar date, YYYY-MM-DD"`
	Category    string `json:"category" doc:"Category name"`
}

func FromService(t aggregation.Transaction) Transaction {
	return Transaction{
		ID:          t.ID.String(),
		Description: t.Description,
		Amount:      t.Amount.String(),
		Date:        service.FormatDate(t.Date),
		Category:    t.Category,
	}
}

// TransactionBody is the request body for creating or updating a transaction.
// Presence is checked by the handler so the error matches the envelope format.
type TransactionBody struct {
	Description string `json:"description,omitempty" doc:"What the money was spent on"`
	Amount      string `json:"amount,omitempty" doc:"Signed decimal amount"`
	Date        string `json:"date,omitempty" doc:"YYYY-MM-DD or RFC3339 date"`
	Category    string `json:"category,omitempty" doc:"Category name, defaults to Uncategorized"`
}

// parseTransactionBody validates presence and format of the body fields. On
// failure it returns the 400 envelope to send back.
func parseTransactionBody(body TransactionBody) (service.TransactionInput, *response.EnvelopeOutput) {
	if strings.TrimSpace(body.Description) == "" ||
		strings.TrimSpace(body.Amount) == "" ||
		strings.TrimSpace(body.Date) == "" {
		return service.TransactionInput{}, response.Fail(http.StatusBadRequest, msgMissingFields)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(body.Amount))
	if err != nil || !service.ValidAmount(amount) {
		return service.TransactionInput{}, response.Fail(http.StatusBadRequest, "Invalid amount")
	}

	date, err := service.ParseDate(body.Date)
	if err != nil {
		return service.TransactionInput{}, response.Fail(http.StatusBadRequest, "Invalid date")
	}

	return service.TransactionInput{
		Description: body.Description,
		Amount:      amount,
		Date:        date,
		Category:    body.Category,
	}, nil
}

func parseID(raw string) (uuid.UUID, *response.EnvelopeOutput) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, response.Fail(http.StatusBadRequest, "Invalid transaction id")
	}
	return id, nil
}
