package handlers

import (
	"net/http"

	"github.com/yang-ventures/portfolio-backend/internal/api/response"
	"github.com/yang-ventures/portfolio-backend/internal/apperrors"
	"github.com/yang-ventures/portfolio-backend/internal/service"
)

// ImportHandler handles CSV uploads. The request body is the raw CSV file.
type ImportHandler struct {
	importService *service.ImportService
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importService *service.ImportService) *ImportHandler {
	return &ImportHandler{
		importService: importService,
	}
}

// Investments handles POST requests importing investment rows.
//
// Endpoint: POST /api/import/investments
// Request Body: text/csv with header fund,company,type,round,stage,date,amount
// and optional total_round_size,post_money_valuation columns
// Response: 201 Created with ImportResult
// Error: 400 Bad Request for missing headers, empty files or invalid rows (keyed "row N field")
func (h *ImportHandler) Investments(w http.ResponseWriter, r *http.Request) {
	result, err := h.importService.ImportInvestments(r.Context(), http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToImportInvestments, err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, result)
}

// Events handles POST requests importing event rows.
//
// Endpoint: POST /api/import/events
// Request Body: text/csv with header company,date,type and optional
// cash_flow,currency,percent_sold,holding_valuation,notes columns
// Response: 201 Created with ImportResult
func (h *ImportHandler) Events(w http.ResponseWriter, r *http.Request) {
	result, err := h.importService.ImportEvents(r.Context(), http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToImportEvents, err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, result)
}
