package handlers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/yang-ventures/portfolio-backend/internal/api/request"
	"github.com/yang-ventures/portfolio-backend/internal/api/response"
	"github.com/yang-ventures/portfolio-backend/internal/apperrors"
	"github.com/yang-ventures/portfolio-backend/internal/format"
	"github.com/yang-ventures/portfolio-backend/internal/model"
	"github.com/yang-ventures/portfolio-backend/internal/service"
)

// ReturnsHandler handles HTTP requests for fund return endpoints.
type ReturnsHandler struct {
	returnsService  *service.ReturnsService
	snapshotService *service.SnapshotService
	baseCurrency    string
	now             func() time.Time
}

// NewReturnsHandler creates a new ReturnsHandler. Money amounts are displayed in baseCurrency.
func NewReturnsHandler(
	returnsService *service.ReturnsService,
	snapshotService *service.SnapshotService,
	baseCurrency string,
) *ReturnsHandler {
	return &ReturnsHandler{
		returnsService:  returnsService,
		snapshotService: snapshotService,
		baseCurrency:    baseCurrency,
		now:             time.Now,
	}
}

// FundReturnResponse is a fund's return metrics together with their display strings.
type FundReturnResponse struct {
	model.FundReturn
	Display format.FundReturn `json:"display"`
}

func (h *ReturnsHandler) toResponse(r model.FundReturn) FundReturnResponse {
	return FundReturnResponse{
		FundReturn: r,
		Display:    format.FundReturnDisplay(r, h.baseCurrency),
	}
}

// Returns handles GET requests for the returns of every configured fund.
//
// Endpoint: GET /api/returns
// Response: 200 OK with array of FundReturnResponse in fund order
// Error: 500 Internal Server Error if records cannot be loaded
func (h *ReturnsHandler) Returns(w http.ResponseWriter, r *http.Request) {
	results, err := h.returnsService.GetAllFundReturns(r.Context())
	if err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToCalculateReturns, err)
		return
	}

	resp := make([]FundReturnResponse, len(results))
	for i, res := range results {
		resp[i] = h.toResponse(res)
	}

	response.RespondJSON(w, http.StatusOK, resp)
}

// FundReturn handles GET requests for the returns of one fund.
// The fund name is the URL-encoded path segment, e.g. /api/returns/fund/Yang%20Fund%201.
//
// Endpoint: GET /api/returns/fund/{fund}
// Response: 200 OK with FundReturnResponse
// Error: 404 Not Found if the fund is not configured
func (h *ReturnsHandler) FundReturn(w http.ResponseWriter, r *http.Request) {
	fund, err := url.PathUnescape(chi.URLParam(r, "fund"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid fund name", err.Error())
		return
	}

	result, err := h.returnsService.GetFundReturn(r.Context(), fund)
	if err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToCalculateReturns, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, h.toResponse(result))
}

// History handles GET requests for stored return snapshots grouped by date.
//
// Endpoint: GET /api/returns/history
// Query Parameters:
//   - fund: optional, restricts the history to one fund
//   - start_date: optional, YYYY-MM-DD, defaults to one year before end_date
//   - end_date: optional, YYYY-MM-DD, defaults to today
//
// Response: 200 OK with array of FundReturnHistory ordered by date
// Error: 400 Bad Request for invalid dates or ranges
// Error: 404 Not Found if the fund is not configured
func (h *ReturnsHandler) History(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters, err := request.ParseHistoryFilters(q.Get("fund"), q.Get("start_date"), q.Get("end_date"), h.now())
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter parameters", err.Error())
		return
	}

	history, err := h.snapshotService.History(r.Context(), filters.Fund, filters.StartDate, filters.EndDate)
	if err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToRetrieveReturnHistory, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, history)
}

// Snapshot handles POST requests to materialize the returns of every fund for a date.
// Existing snapshots for that date are replaced.
//
// Endpoint: POST /api/returns/snapshot
// Query Parameters: date (optional, YYYY-MM-DD, defaults to today, may not be in the future)
// Response: 201 Created with array of FundReturnSnapshot
// Error: 400 Bad Request for an invalid or future date
func (h *ReturnsHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	date, err := request.ParseDate(r.URL.Query().Get("date"), now)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid date", err.Error())
		return
	}
	if date.After(now) {
		response.RespondError(w, http.StatusBadRequest, "invalid date", "date cannot be in the future")
		return
	}

	snapshots, err := h.snapshotService.Materialize(r.Context(), date)
	if err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToMaterializeReturns, err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, snapshots)
}
