package validation

import (
	"fmt"
	"strings"

	"github.com/yang-ventures/portfolio-backend/internal/api/request"
)

// ValidateCreateInvestment validates an investment creation request.
//
// Required fields:
//   - fund: One of the configured funds
//   - companyId: Must be a valid UUID
//   - type, roundStage: From the reference lists
//   - roundNumber: At least 1
//   - date: YYYY-MM-DD, not in the future
//   - amount: Must be positive
//
// Optional fields (validated if provided):
//   - totalRoundSize, postMoneyValuation: Must not be negative
func (c *Catalog) ValidateCreateInvestment(req request.CreateInvestmentRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.CompanyID); err != nil {
		errors["companyId"] = "companyId must be a valid UUID"
	}
	c.validateFund(errors, req.Fund)
	c.validateInvestmentType(errors, req.Type)
	c.validateRoundStage(errors, req.RoundStage)
	if req.RoundNumber < 1 {
		errors["roundNumber"] = "roundNumber must be at least 1"
	}
	c.validatePastDate(errors, "date", req.Date)
	if !(req.Amount > 0) {
		errors["amount"] = "amount must be positive"
	}
	validateOptionalNonNegative(errors, "totalRoundSize", req.TotalRoundSize)
	validateOptionalNonNegative(errors, "postMoneyValuation", req.PostMoneyValuation)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateInvestment validates the fields present in a partial investment update.
func (c *Catalog) ValidateUpdateInvestment(req request.UpdateInvestmentRequest) error {
	errors := make(map[string]string)

	if req.CompanyID != nil {
		if err := ValidateUUID(*req.CompanyID); err != nil {
			errors["companyId"] = "companyId must be a valid UUID"
		}
	}
	if req.Fund != nil {
		c.validateFund(errors, *req.Fund)
	}
	if req.Type != nil {
		c.validateInvestmentType(errors, *req.Type)
	}
	if req.RoundStage != nil {
		c.validateRoundStage(errors, *req.RoundStage)
	}
	if req.RoundNumber != nil && *req.RoundNumber < 1 {
		errors["roundNumber"] = "roundNumber must be at least 1"
	}
	if req.Date != nil {
		c.validatePastDate(errors, "date", *req.Date)
	}
	if req.Amount != nil && !(*req.Amount > 0) {
		errors["amount"] = "amount must be positive"
	}
	validateOptionalNonNegative(errors, "totalRoundSize", req.TotalRoundSize)
	validateOptionalNonNegative(errors, "postMoneyValuation", req.PostMoneyValuation)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func (c *Catalog) validateFund(errors map[string]string, fund string) {
	if strings.TrimSpace(fund) == "" {
		errors["fund"] = "fund is required"
	} else if !c.HasFund(fund) {
		errors["fund"] = fmt.Sprintf("unknown fund: %s", fund)
	}
}

func (c *Catalog) validateInvestmentType(errors map[string]string, t string) {
	if strings.TrimSpace(t) == "" {
		errors["type"] = "type is required"
	} else if !c.HasInvestmentType(t) {
		errors["type"] = fmt.Sprintf("invalid investment type: %s", t)
	}
}

func (c *Catalog) validateRoundStage(errors map[string]string, stage string) {
	if strings.TrimSpace(stage) == "" {
		errors["roundStage"] = "roundStage is required"
	} else if !c.HasRoundStage(stage) {
		errors["roundStage"] = fmt.Sprintf("invalid round stage: %s", stage)
	}
}

func validateOptionalNonNegative(errors map[string]string, field string, v *float64) {
	if v != nil && !(*v >= 0) {
		errors[field] = field + " cannot be negative"
	}
}
