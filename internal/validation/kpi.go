package validation

import (
	"math"
	"strings"

	"github.com/yang-ventures/portfolio-backend/internal/api/request"
)

// ValidateCreateKPI validates a KPI creation request.
func (c *Catalog) ValidateCreateKPI(req request.CreateKPIRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.CompanyID); err != nil {
		errors["companyId"] = "companyId must be a valid UUID"
	}
	validateKPIName(errors, req.Name)
	if math.IsNaN(req.Value) || math.IsInf(req.Value, 0) {
		errors["value"] = "value must be a finite number"
	}
	c.validatePastDate(errors, "date", req.Date)
	if len(req.Units) > 50 {
		errors["units"] = "units must be 50 characters or less"
	}
	validateNotes(errors, req.Notes)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateKPI validates the fields present in a partial KPI update.
func (c *Catalog) ValidateUpdateKPI(req request.UpdateKPIRequest) error {
	errors := make(map[string]string)

	if req.CompanyID != nil {
		if err := ValidateUUID(*req.CompanyID); err != nil {
			errors["companyId"] = "companyId must be a valid UUID"
		}
	}
	if req.Name != nil {
		validateKPIName(errors, *req.Name)
	}
	if req.Value != nil && (math.IsNaN(*req.Value) || math.IsInf(*req.Value, 0)) {
		errors["value"] = "value must be a finite number"
	}
	if req.Date != nil {
		c.validatePastDate(errors, "date", *req.Date)
	}
	if req.Units != nil && len(*req.Units) > 50 {
		errors["units"] = "units must be 50 characters or less"
	}
	if req.Notes != nil {
		validateNotes(errors, *req.Notes)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func validateKPIName(errors map[string]string, name string) {
	if strings.TrimSpace(name) == "" {
		errors["name"] = "name is required"
	} else if len(name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}
}
