package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/response"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

type DeleteBudgetInput struct {
	ID string `path:"id" doc:"Budget UUID"`
}

type budgetDeleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// DeleteBudgetHandler handles DELETE /v1/budget/{id}.
type DeleteBudgetHandler struct {
	BudgetService budgetDeleter
}

func NewDeleteBudgetHandler(svc budgetDeleter) *DeleteBudgetHandler {
	return &DeleteBudgetHandler{BudgetService: svc}
}

func (h *DeleteBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-budget",
		Method:      http.MethodDelete,
		Path:        "/v1/budget/{id}",
		Summary:     "Delete budget",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *DeleteBudgetHandler) handle(ctx context.Context, input *DeleteBudgetInput) (*response.EnvelopeOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return response.Fail(http.StatusBadRequest, "Invalid budget id"), nil
	}

	if err := h.BudgetService.Delete(ctx, id); err != nil {
		logging.AddError(ctx, err)
		return response.Fail(http.StatusInternalServerError, "Failed to delete budget"), nil
	}

	return response.OK(http.StatusOK, id.String()), nil
}
