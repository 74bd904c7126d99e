package insight

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/aggregation"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type GetInsightsInput struct {
	Months int `query:"months" default:"6" minimum:"1" maximum:"60" doc:"Length of the spending trend in months"`
}

type GetInsightsOutput struct {
	Body InsightsBody
}

type insightBuilder interface {
	Insights(ctx context.Context, monthsBack int) (service.InsightSummary, error)
}

// GetInsightsHandler handles GET /v1/insights.
type GetInsightsHandler struct {
	InsightService insightBuilder
}

func NewGetInsightsHandler(svc insightBuilder) *GetInsightsHandler {
	return &GetInsightsHandler{InsightService: svc}
}

func (h *GetInsightsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-insights",
		Method:      http.MethodGet,
		Path:        "/v1/insights",
		Summary:     "Spending insights",
		Description: "Per-category insights, a monthly trend and the current month's budget comparison.",
		Tags:        []string{"Insights"},
	}, h.handle)
}

func (h *GetInsightsHandler) handle(ctx context.Context, input *GetInsightsInput) (*GetInsightsOutput, error) {
	months := input.Months
	if months <= 0 {
		months = aggregation.DefaultTrendMonths
	}

	summary, err := h.InsightService.Insights(ctx, months)
	if err != nil {
		logging.AddError(ctx, err)
		return nil, huma.Error500InternalServerError("failed to build insights", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("categoryCount", len(summary.Categories))
	}

	return &GetInsightsOutput{Body: fromSummary(summary)}, nil
}
