package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/aggregation"
)

type CategorySpend struct {
	Category string `json:"category"`
	Amount   string `json:"amount" doc:"Sum of absolute amounts"`
	Color    string `json:"color" doc:"Chart colour assigned by position"`
}

type BreakdownBody struct {
	Categories []CategorySpend `json:"categories" doc:"In order of first appearance"`
}

type BreakdownOutput struct {
	Body BreakdownBody
}

type breakdownBuilder interface {
	CategoryBreakdown(ctx context.Context) []aggregation.CategorySpend
}

// BreakdownHandler handles GET /v1/categories/breakdown.
type BreakdownHandler struct {
	InsightService breakdownBuilder
}

func NewBreakdownHandler(svc breakdownBuilder) *BreakdownHandler {
	return &BreakdownHandler{InsightService: svc}
}

func (h *BreakdownHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "category-breakdown",
		Method:      http.MethodGet,
		Path:        "/v1/categories/breakdown",
		Summary:     "Spending by category",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *BreakdownHandler) handle(ctx context.Context, _ *struct{}) (*BreakdownOutput, error) {
	breakdown := h.InsightService.CategoryBreakdown(ctx)

	out := BreakdownBody{Categories: make([]CategorySpend, len(breakdown))}
	for i, c := range breakdown {
		out.Categories[i] = CategorySpend{
			Category: c.Category,
			Amount:   c.Amount.String(),
			Color:    c.Color,
		}
	}
	return &BreakdownOutput{Body: out}, nil
}
