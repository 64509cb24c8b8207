package validation

import (
	"fmt"
	"strings"

	"github.com/yang-ventures/portfolio-backend/internal/api/request"
	"github.com/yang-ventures/portfolio-backend/internal/model"
)

// ValidateCreateEvent validates an event creation request.
//
// Required fields:
//   - companyId: Must be a valid UUID
//   - date: YYYY-MM-DD, not in the future
//   - type: Exit, Dividend or Valuation Update
//
// Amounts depend on the type, see ValidateEventAmounts.
// Optional fields: currency (from the reference list), notes (up to 1000 characters).
func (c *Catalog) ValidateCreateEvent(req request.CreateEventRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.CompanyID); err != nil {
		errors["companyId"] = "companyId must be a valid UUID"
	}
	c.validatePastDate(errors, "date", req.Date)
	c.validateCurrency(errors, req.Currency)
	validateNotes(errors, req.Notes)

	kind := model.EventKind(req.Type)
	if strings.TrimSpace(req.Type) == "" {
		errors["type"] = "type is required"
	} else if !kind.Valid() {
		errors["type"] = fmt.Sprintf("invalid event type: %s", req.Type)
	} else {
		ValidateEventAmounts(errors, kind, req.CashFlowAmount, req.PercentHoldingSold, req.HoldingValuation)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateEvent validates a complete event, typically the result of applying an update
// to a stored event.
func (c *Catalog) ValidateEvent(ev *model.Event) error {
	errors := make(map[string]string)

	if err := ValidateUUID(ev.CompanyID); err != nil {
		errors["companyId"] = "companyId must be a valid UUID"
	}
	if ev.Date.IsZero() {
		errors["date"] = "date is required"
	} else if ev.Date.After(c.today()) {
		errors["date"] = "date cannot be in the future"
	}
	c.validateCurrency(errors, ev.Currency)
	validateNotes(errors, ev.Notes)

	if !ev.Type.Valid() {
		errors["type"] = fmt.Sprintf("invalid event type: %s", ev.Type)
	} else {
		ValidateEventAmounts(errors, ev.Type, ev.CashFlowAmount, ev.PercentHoldingSold, ev.HoldingValuation)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateEventAmounts records errors for amounts that the event kind requires or forbids.
//
//   - Exit: cashFlowAmount, percentHoldingSold (0 to 1) and holdingValuation are required
//   - Dividend: cashFlowAmount is required, percentHoldingSold is not allowed
//   - Valuation Update: holdingValuation is required, the other two are not allowed
//
// Amounts that are present must not be negative.
func ValidateEventAmounts(errors map[string]string, kind model.EventKind, cash, percentSold, valuation *float64) {
	switch kind {
	case model.EventExit:
		requireAmount(errors, "cashFlowAmount", cash)
		requireAmount(errors, "percentHoldingSold", percentSold)
		requireAmount(errors, "holdingValuation", valuation)
	case model.EventDividend:
		requireAmount(errors, "cashFlowAmount", cash)
		forbidAmount(errors, "percentHoldingSold", percentSold, kind)
	case model.EventValuationUpdate:
		requireAmount(errors, "holdingValuation", valuation)
		forbidAmount(errors, "cashFlowAmount", cash, kind)
		forbidAmount(errors, "percentHoldingSold", percentSold, kind)
	}

	if _, set := errors["cashFlowAmount"]; !set {
		validateOptionalNonNegative(errors, "cashFlowAmount", cash)
	}
	if _, set := errors["holdingValuation"]; !set {
		validateOptionalNonNegative(errors, "holdingValuation", valuation)
	}
	if _, set := errors["percentHoldingSold"]; !set && percentSold != nil {
		if !(*percentSold >= 0 && *percentSold <= 1) {
			errors["percentHoldingSold"] = "percentHoldingSold must be between 0 and 1"
		}
	}
}

// ApplyEventDefaults fills in the currency when none was given.
func ApplyEventDefaults(ev *model.Event) {
	if strings.TrimSpace(ev.Currency) == "" {
		ev.Currency = "USD"
	}
}

func (c *Catalog) validateCurrency(errors map[string]string, code string) {
	if code != "" && !c.HasCurrency(code) {
		errors["currency"] = fmt.Sprintf("invalid currency: %s", code)
	}
}

func validateNotes(errors map[string]string, notes string) {
	if len(notes) > 1000 {
		errors["notes"] = "notes must be 1000 characters or less"
	}
}

func requireAmount(errors map[string]string, field string, v *float64) {
	if v == nil {
		errors[field] = field + " is required"
	}
}

func forbidAmount(errors map[string]string, field string, v *float64, kind model.EventKind) {
	if v != nil {
		errors[field] = fmt.Sprintf("%s is not allowed for %s events", field, kind)
	}
}
