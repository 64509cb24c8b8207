package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yang-ventures/portfolio-backend/internal/api/request"
	"github.com/yang-ventures/portfolio-backend/internal/api/response"
	"github.com/yang-ventures/portfolio-backend/internal/apperrors"
	"github.com/yang-ventures/portfolio-backend/internal/model"
	"github.com/yang-ventures/portfolio-backend/internal/service"
)

// CompanyHandler handles HTTP requests for portfolio company endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the companyService.
type CompanyHandler struct {
	companyService *service.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler with the provided service dependency.
func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
	}
}

// Companies handles GET requests to list companies ordered by name.
//
// Endpoint: GET /api/company
// Query Parameters: status (optional, Active or Inactive)
// Response: 200 OK with array of Company
// Error: 400 Bad Request if status is invalid
// Error: 500 Internal Server Error if retrieval fails
func (h *CompanyHandler) Companies(w http.ResponseWriter, r *http.Request) {
	status, err := request.ParseCompanyStatus(r.URL.Query().Get("status"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter parameters", err.Error())
		return
	}

	companies, err := h.companyService.GetCompanies(r.Context(), model.CompanyFilter{Status: status})
	if err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToRetrieveCompanies, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, companies)
}

// GetCompany handles GET requests for a single company with its investments, events and KPIs.
//
// Endpoint: GET /api/company/{uuid}
// Response: 200 OK with CompanyDetail
// Error: 400 Bad Request if the ID is invalid (validated by middleware)
// Error: 404 Not Found if the company does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *CompanyHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "uuid")

	detail, err := h.companyService.GetCompanyDetail(r.Context(), companyID)
	if err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToRetrieveCompany, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, detail)
}

// CreateCompany handles POST requests to create a company.
//
// Endpoint: POST /api/company
// Request Body: CreateCompanyRequest
// Response: 201 Created with Company
// Error: 400 Bad Request if the body is invalid or validation fails
// Error: 409 Conflict if a company with the same name exists
func (h *CompanyHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateCompanyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	company, err := h.companyService.CreateCompany(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToCreateCompany, err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, company)
}

// UpdateCompany handles PUT requests to update a company. Omitted fields are unchanged.
//
// Endpoint: PUT /api/company/{uuid}
// Request Body: UpdateCompanyRequest
// Response: 200 OK with Company
// Error: 400 Bad Request if the body is invalid or validation fails
// Error: 404 Not Found if the company does not exist
// Error: 409 Conflict if the new name is taken
func (h *CompanyHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateCompanyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	company, err := h.companyService.UpdateCompany(r.Context(), companyID, req)
	if err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToUpdateCompany, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, company)
}

// DeleteCompany handles DELETE requests. Investments, events and KPIs are removed with it.
//
// Endpoint: DELETE /api/company/{uuid}
// Response: 204 No Content
// Error: 404 Not Found if the company does not exist
func (h *CompanyHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "uuid")

	if err := h.companyService.DeleteCompany(r.Context(), companyID); err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToDeleteCompany, err)
		return
	}

	response.RespondNoContent(w)
}
