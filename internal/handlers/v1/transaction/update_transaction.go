package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/response"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body TransactionBody
}

// transactionUpdater is the interface for updating transactions.
type transactionUpdater interface {
	Update(ctx context.Context, id uuid.UUID, in service.TransactionInput) error
}

// UpdateTransactionHandler handles PUT /v1/transaction/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/v1/transaction/{id}",
		Summary:     "Update transaction",
		Description: "Replaces description, amount, date and category of a transaction.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*response.EnvelopeOutput, error) {
	in, failure := parseTransactionBody(input.Body)
	if failure != nil {
		return failure, nil
	}

	id, failure := parseID(input.ID)
	if failure != nil {
		return failure, nil
	}

	// Unknown ids and storage failures get the same answer.
	if err := h.TransactionService.Update(ctx, id, in); err != nil {
		logging.AddError(ctx, err)
		if service.IsValidation(err) {
			return response.Fail(http.StatusBadRequest, msgMissingFields), nil
		}
		return response.Fail(http.StatusInternalServerError, "Failed to update transaction"), nil
	}

	return response.OK(http.StatusOK, id.String()), nil
}
