package insight

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/aggregation"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type mockInsightService struct {
	mock.Mock
}

func (m *mockInsightService) Insights(ctx context.Context, monthsBack int) (service.InsightSummary, error) {
	args := m.Called(ctx, monthsBack)
	return args.Get(0).(service.InsightSummary), args.Error(1)
}

func (m *mockInsightService) Dashboard(ctx context.Context) aggregation.Summary {
	return m.Called(ctx).Get(0).(aggregation.Summary)
}

func newTestAPI(t *testing.T, svc *mockInsightService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetInsightsHandler(svc).Register(api)
	NewGetDashboardHandler(svc).Register(api)
	return api
}

func TestHTTP_GetInsights(t *testing.T) {
	top := service.CategoryInsight{
		SpendingInsight: aggregation.SpendingInsight{
			Category:   "Shopping",
			Total:      decimal.RequireFromString("700"),
			Percentage: 70,
			Average:    decimal.RequireFromString("700"),
			Count:      1,
		},
		Icon:  "🛍️",
		Color: "#8B5CF6",
	}
	frequent := service.CategoryInsight{
		SpendingInsight: aggregation.SpendingInsight{
			Category:   "Food & Dining",
			Total:      decimal.RequireFromString("300"),
			Percentage: 30,
			Average:    decimal.RequireFromString("150"),
			Count:      2,
		},
		Icon:  "🍔",
		Color: "#FF6B6B",
	}

	mockSvc := new(mockInsightService)
	mockSvc.On("Insights", mock.Anything, 6).Return(service.InsightSummary{
		Categories:         []service.CategoryInsight{top, frequent},
		TopCategory:        &top,
		MostFrequent:       &frequent,
		AverageTransaction: decimal.RequireFromString("333.33"),
		Trend: []aggregation.TrendPoint{
			{Month: "Feb 2025", Amount: decimal.RequireFromString("300")},
			{Month: "Mar 2025", Amount: decimal.RequireFromString("700")},
		},
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/insights")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body InsightsBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Categories, 2)
	assert.Equal(t, "Shopping", body.Categories[0].Category)
	assert.Equal(t, "700", body.Categories[0].Total)
	assert.Equal(t, 70.0, body.Categories[0].Percentage)
	require.NotNil(t, body.TopCategory)
	assert.Equal(t, "Shopping", body.TopCategory.Category)
	require.NotNil(t, body.MostFrequent)
	assert.Equal(t, "Food & Dining", body.MostFrequent.Category)
	assert.Equal(t, "150", body.MostFrequent.Average)
	assert.Equal(t, "333.33", body.AverageTransaction)
	require.Len(t, body.Trend, 2)
	assert.Equal(t, "Mar 2025", body.Trend[1].Month)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetInsights_Months(t *testing.T) {
	mockSvc := new(mockInsightService)
	mockSvc.On("Insights", mock.Anything, 12).Return(service.InsightSummary{}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/insights?months=12")

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetInsights_InvalidMonths(t *testing.T) {
	mockSvc := new(mockInsightService)

	resp := newTestAPI(t, mockSvc).Get("/v1/insights?months=0")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Insights")
}

func TestHTTP_GetInsights_Error(t *testing.T) {
	mockSvc := new(mockInsightService)
	mockSvc.On("Insights", mock.Anything, mock.Anything).Return(service.InsightSummary{}, aggregation.ErrDuplicateBudget)

	resp := newTestAPI(t, mockSvc).Get("/v1/insights")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_GetDashboard(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	mockSvc := new(mockInsightService)
	mockSvc.On("Dashboard", mock.Anything).Return(aggregation.Summary{
		TotalSpending:        decimal.RequireFromString("70"),
		AverageTransaction:   decimal.RequireFromString("10"),
		CurrentMonthSpending: decimal.RequireFromString("20"),
		TransactionCount:     7,
		Recent: []aggregation.Transaction{
			{
				ID:          id,
				Description: "Lunch",
				Amount:      decimal.RequireFromString("-10"),
				Date:        time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC),
				Category:    "Food & Dining",
			},
		},
		Trend: []aggregation.TrendPoint{
			{Month: "Feb 2025", Amount: decimal.Zero},
			{Month: "Mar 2025", Amount: decimal.RequireFromString("20")},
		},
	})

	resp := newTestAPI(t, mockSvc).Get("/v1/dashboard")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body DashboardBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "70", body.TotalSpending)
	assert.Equal(t, "20", body.CurrentMonthSpending)
	assert.Equal(t, 7, body.TransactionCount)
	require.Len(t, body.Recent, 1)
	assert.Equal(t, id.String(), body.Recent[0].ID)
	assert.Equal(t, "2025-03-07", body.Recent[0].Date)
	require.Len(t, body.Trend, 2)
	assert.Equal(t, "Mar 2025", body.Trend[1].Month)
	assert.Equal(t, "20", body.Trend[1].Amount)
}
