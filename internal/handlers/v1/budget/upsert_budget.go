package budget

import (
	"context"
	"net/http"
	"strings"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/response"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// UpsertBudgetBody is the request body for setting a budget.
type UpsertBudgetBody struct {
	Category string `json:"category" doc:"Category name"`
	Amount   string `json:"amount" doc:"Non-negative decimal monthly cap"`
	Month    string `json:"month,omitempty" doc:"YYYY-MM, defaults to the current month"`
}

type UpsertBudgetInput struct {
	Body UpsertBudgetBody
}

type budgetUpserter interface {
	Upsert(ctx context.Context, in service.BudgetInput) (uuid.UUID, error)
}

// UpsertBudgetHandler handles PUT /v1/budget.
type UpsertBudgetHandler struct {
	BudgetService budgetUpserter
}

func NewUpsertBudgetHandler(svc budgetUpserter) *UpsertBudgetHandler {
	return &UpsertBudgetHandler{BudgetService: svc}
}

func (h *UpsertBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "upsert-budget",
		Method:      http.MethodPut,
		Path:        "/v1/budget",
		Summary:     "Set budget",
		Description: "Creates the budget for a category and month, or replaces its amount.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func parseUpsertBudgetBody(body UpsertBudgetBody) (service.BudgetInput, *response.EnvelopeOutput) {
	amount, err := decimal.NewFromString(strings.TrimSpace(body.Amount))
	if err != nil || !service.ValidAmount(amount) {
		return service.BudgetInput{}, response.Fail(http.StatusBadRequest, "Invalid amount")
	}

	in := service.BudgetInput{
		Category: body.Category,
		Amount:   amount,
	}
	if month := strings.TrimSpace(body.Month); month != "" {
		in.Month = omit.From(month)
	}
	return in, nil
}

func (h *UpsertBudgetHandler) handle(ctx context.Context, input *UpsertBudgetInput) (*response.EnvelopeOutput, error) {
	in, failure := parseUpsertBudgetBody(input.Body)
	if failure != nil {
		return failure, nil
	}

	id, err := h.BudgetService.Upsert(ctx, in)
	if err != nil {
		logging.AddError(ctx, err)
		if service.IsValidation(err) {
			return response.Fail(http.StatusBadRequest, err.Error()), nil
		}
		return response.Fail(http.StatusInternalServerError, "Failed to save budget"), nil
	}

	return response.OK(http.StatusOK, id.String()), nil
}
