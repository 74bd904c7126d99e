package budget

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/aggregation"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// ListBudgetsInput is the Huma input for the monthly budget overview.
type ListBudgetsInput struct {
	Month string `query:"month" doc:"YYYY-MM, defaults to the current month"`
}

// ListBudgetsOutput is the Huma output for the monthly budget overview.
type ListBudgetsOutput struct {
	Body Comparison
}

type budgetOverviewer interface {
	BudgetOverview(ctx context.Context, month string) (aggregation.Comparison, error)
}

// ListBudgetsHandler handles GET /v1/budgets.
type ListBudgetsHandler struct {
	InsightService budgetOverviewer
}

func NewListBudgetsHandler(svc budgetOverviewer) *ListBudgetsHandler {
	return &ListBudgetsHandler{InsightService: svc}
}

func (h *ListBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/v1/budgets",
		Summary:     "Budget overview",
		Description: "Returns the budgets of a month with their spending and the month's totals.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *ListBudgetsHandler) handle(ctx context.Context, input *ListBudgetsInput) (*ListBudgetsOutput, error) {
	comparison, err := h.InsightService.BudgetOverview(ctx, input.Month)
	if errors.Is(err, service.ErrInvalidMonth) {
		return nil, huma.Error400BadRequest(err.Error())
	}
	if err != nil {
		logging.AddError(ctx, err)
		return nil, huma.Error500InternalServerError("failed to load budgets", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("budgetCount", len(comparison.Budgets))
	}

	return &ListBudgetsOutput{Body: FromComparison(comparison)}, nil
}
