package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yang-ventures/portfolio-backend/internal/api/request"
	"github.com/yang-ventures/portfolio-backend/internal/api/response"
	"github.com/yang-ventures/portfolio-backend/internal/apperrors"
	"github.com/yang-ventures/portfolio-backend/internal/model"
	"github.com/yang-ventures/portfolio-backend/internal/service"
	"github.com/yang-ventures/portfolio-backend/internal/validation"
)

// InvestmentHandler handles HTTP requests for investment endpoints.
type InvestmentHandler struct {
	investmentService *service.InvestmentService
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentService *service.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{
		investmentService: investmentService,
	}
}

// Investments handles GET requests to list investments, newest first.
//
// Endpoint: GET /api/investment
// Query Parameters: fund (optional), companyId (optional UUID)
// Response: 200 OK with array of Investment
// Error: 400 Bad Request if companyId is not a UUID
func (h *InvestmentHandler) Investments(w http.ResponseWriter, r *http.Request) {
	filter := model.InvestmentFilter{
		Fund:      r.URL.Query().Get("fund"),
		CompanyID: r.URL.Query().Get("companyId"),
	}
	if filter.CompanyID != "" {
		if err := validation.ValidateUUID(filter.CompanyID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid filter parameters", err.Error())
			return
		}
	}

	investments, err := h.investmentService.GetInvestments(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToRetrieveInvestments, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, investments)
}

// GetInvestment handles GET requests for a single investment.
//
// Endpoint: GET /api/investment/{uuid}
func (h *InvestmentHandler) GetInvestment(w http.ResponseWriter, r *http.Request) {
	inv, err := h.investmentService.GetInvestment(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToRetrieveInvestment, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, inv)
}

// CreateInvestment handles POST requests to record an investment round.
//
// Endpoint: POST /api/investment
// Request Body: CreateInvestmentRequest
// Response: 201 Created with Investment
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if the company does not exist
func (h *InvestmentHandler) CreateInvestment(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateInvestmentRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	inv, err := h.investmentService.CreateInvestment(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToCreateInvestment, err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, inv)
}

// UpdateInvestment handles PUT requests to update an investment.
//
// Endpoint: PUT /api/investment/{uuid}
func (h *InvestmentHandler) UpdateInvestment(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateInvestmentRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	inv, err := h.investmentService.UpdateInvestment(r.Context(), chi.URLParam(r, "uuid"), req)
	if err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToUpdateInvestment, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, inv)
}

// DeleteInvestment handles DELETE requests.
//
// Endpoint: DELETE /api/investment/{uuid}
func (h *InvestmentHandler) DeleteInvestment(w http.ResponseWriter, r *http.Request) {
	if err := h.investmentService.DeleteInvestment(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToDeleteInvestment, err)
		return
	}

	response.RespondNoContent(w)
}
