package handlers

import (
	"net/http"

	"github.com/yang-ventures/portfolio-backend/internal/api/response"
	"github.com/yang-ventures/portfolio-backend/internal/config"
	"github.com/yang-ventures/portfolio-backend/internal/model"
)

// ReferenceHandler serves the value lists used to fill form drop-downs.
type ReferenceHandler struct {
	data ReferenceResponse
}

// ReferenceResponse lists every allowed value of the enumerated fields.
type ReferenceResponse struct {
	Funds           []string          `json:"funds"`
	Industries      []string          `json:"industries"`
	Countries       []string          `json:"countries"`
	CompanyStatuses []string          `json:"companyStatuses"`
	InvestmentTypes []string          `json:"investmentTypes"`
	RoundStages     []string          `json:"roundStages"`
	Currencies      []string          `json:"currencies"`
	EventTypes      []model.EventKind `json:"eventTypes"`
}

// NewReferenceHandler creates a ReferenceHandler over the configured lists.
func NewReferenceHandler(funds []string, ref config.ReferenceConfig) *ReferenceHandler {
	return &ReferenceHandler{
		data: ReferenceResponse{
			Funds:           funds,
			Industries:      ref.Industries,
			Countries:       ref.Countries,
			CompanyStatuses: model.CompanyStatuses,
			InvestmentTypes: ref.InvestmentTypes,
			RoundStages:     ref.RoundStages,
			Currencies:      ref.Currencies,
			EventTypes:      model.EventKinds,
		},
	}
}

// Reference handles GET /api/reference.
func (h *ReferenceHandler) Reference(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.data)
}
