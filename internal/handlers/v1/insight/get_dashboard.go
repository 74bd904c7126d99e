package insight

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/aggregation"
)

type GetDashboardOutput struct {
	Body DashboardBody
}

type dashboardBuilder interface {
	Dashboard(ctx context.Context) aggregation.Summary
}

// GetDashboardHandler handles GET /v1/dashboard.
type GetDashboardHandler struct {
	InsightService dashboardBuilder
}

func NewGetDashboardHandler(svc dashboardBuilder) *GetDashboardHandler {
	return &GetDashboardHandler{InsightService: svc}
}

func (h *GetDashboardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard",
		Summary:     "Dashboard summary",
		Tags:        []string{"Insights"},
	}, h.handle)
}

func (h *GetDashboardHandler) handle(ctx context.Context, _ *struct{}) (*GetDashboardOutput, error) {
	return &GetDashboardOutput{Body: fromDashboard(h.InsightService.Dashboard(ctx))}, nil
}
