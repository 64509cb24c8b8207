package handlers

import (
	"net/http"

	"github.com/yang-ventures/portfolio-backend/internal/api/request"
	"github.com/yang-ventures/portfolio-backend/internal/api/response"
	"github.com/yang-ventures/portfolio-backend/internal/apperrors"
	"github.com/yang-ventures/portfolio-backend/internal/format"
	"github.com/yang-ventures/portfolio-backend/internal/model"
	"github.com/yang-ventures/portfolio-backend/internal/service"
)

// DashboardHandler handles HTTP requests for the home page.
type DashboardHandler struct {
	dashboardService *service.DashboardService
	baseCurrency     string
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService, baseCurrency string) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		baseCurrency:     baseCurrency,
	}
}

// DashboardSummaryResponse adds display strings to the dashboard numbers.
type DashboardSummaryResponse struct {
	model.DashboardSummary
	Display DashboardSummaryDisplay `json:"display"`
}

type DashboardSummaryDisplay struct {
	TotalInvested string `json:"totalInvested"`
	CurrentValue  string `json:"currentValue"`
}

// Summary handles GET requests for the dashboard headline numbers.
//
// Endpoint: GET /api/dashboard/summary
// Response: 200 OK with DashboardSummaryResponse
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.Summary(r.Context())
	if err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToGetDashboardSummary, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, DashboardSummaryResponse{
		DashboardSummary: *summary,
		Display: DashboardSummaryDisplay{
			TotalInvested: format.Currency(summary.TotalInvested, h.baseCurrency),
			CurrentValue:  format.Currency(summary.CurrentValue, h.baseCurrency),
		},
	})
}

// Recent handles GET requests for the newest investments and events.
//
// Endpoint: GET /api/dashboard/recent
// Query Parameters: limit (optional, 1-50, default 5)
// Response: 200 OK with RecentActivity
// Error: 400 Bad Request if limit is invalid
func (h *DashboardHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit, err := request.ParseRecentLimit(r.URL.Query().Get("limit"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter parameters", err.Error())
		return
	}

	activity, err := h.dashboardService.RecentActivity(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToGetRecentActivity, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, activity)
}
