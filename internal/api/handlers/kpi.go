package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/yang-ventures/portfolio-backend/internal/api/request"
	"github.com/yang-ventures/portfolio-backend/internal/api/response"
	"github.com/yang-ventures/portfolio-backend/internal/apperrors"
	"github.com/yang-ventures/portfolio-backend/internal/model"
	"github.com/yang-ventures/portfolio-backend/internal/service"
	"github.com/yang-ventures/portfolio-backend/internal/validation"
)

// KPIHandler handles HTTP requests for company KPI endpoints.
type KPIHandler struct {
	kpiService *service.KPIService
}

func NewKPIHandler(kpiService *service.KPIService) *KPIHandler {
	return &KPIHandler{
		kpiService: kpiService,
	}
}

// KPIs handles GET requests to list KPI values.
//
// Endpoint: GET /api/kpi
// Query Parameters: companyId (optional UUID), name (optional)
func (h *KPIHandler) KPIs(w http.ResponseWriter, r *http.Request) {
	filter := model.KPIFilter{
		CompanyID: r.URL.Query().Get("companyId"),
		Name:      strings.TrimSpace(r.URL.Query().Get("name")),
	}
	if filter.CompanyID != "" {
		if err := validation.ValidateUUID(filter.CompanyID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid filter parameters", err.Error())
			return
		}
	}

	kpis, err := h.kpiService.GetKPIs(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToRetrieveKPIs, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, kpis)
}

// Summary handles GET requests for the statistics of one KPI series.
//
// Endpoint: GET /api/kpi/summary
// Query Parameters: companyId (required UUID), name (required)
// Response: 200 OK with KPISummary
// Error: 400 Bad Request if a parameter is missing or invalid
// Error: 404 Not Found if the company or the series does not exist
func (h *KPIHandler) Summary(w http.ResponseWriter, r *http.Request) {
	companyID := r.URL.Query().Get("companyId")
	name := strings.TrimSpace(r.URL.Query().Get("name"))

	fields := make(map[string]string)
	if err := validation.ValidateUUID(companyID); err != nil {
		fields["companyId"] = "companyId must be a valid UUID"
	}
	if name == "" {
		fields["name"] = "name is required"
	}
	if len(fields) > 0 {
		response.RespondError(w, http.StatusBadRequest, "invalid filter parameters", fields)
		return
	}

	summary, err := h.kpiService.Summary(r.Context(), companyID, name)
	if err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToRetrieveKPISummary, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

func (h *KPIHandler) GetKPI(w http.ResponseWriter, r *http.Request) {
	kpi, err := h.kpiService.GetKPI(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToRetrieveKPI, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, kpi)
}

func (h *KPIHandler) CreateKPI(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateKPIRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	kpi, err := h.kpiService.CreateKPI(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToCreateKPI, err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, kpi)
}

func (h *KPIHandler) UpdateKPI(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateKPIRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	kpi, err := h.kpiService.UpdateKPI(r.Context(), chi.URLParam(r, "uuid"), req)
	if err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToUpdateKPI, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, kpi)
}

func (h *KPIHandler) DeleteKPI(w http.ResponseWriter, r *http.Request) {
	if err := h.kpiService.DeleteKPI(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToDeleteKPI, err)
		return
	}

	response.RespondNoContent(w)
}
