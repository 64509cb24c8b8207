package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yang-ventures/portfolio-backend/internal/config"
)

// Common validation errors
var (
	ErrInvalidUUID      = fmt.Errorf("invalid UUID format")
	ErrInvalidDateRange = fmt.Errorf("invalid date range")
	ErrEmptySlice       = fmt.Errorf("slice cannot be empty")
)

const dateLayout = "2006-01-02"

// ValidateUUID checks if a string is a valid UUID
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidUUID, id)
	}
	return nil
}

// ValidateUUIDs validates a slice of UUIDs
func ValidateUUIDs(ids []string) error {
	if len(ids) == 0 {
		return ErrEmptySlice
	}
	for _, id := range ids {
		if err := ValidateUUID(id); err != nil {
			return err
		}
	}
	return nil
}

// Catalog holds the allowed values for enumerated request fields.
// It is built once from configuration and shared by the services.
type Catalog struct {
	Funds           []string
	Industries      []string
	InvestmentTypes []string
	RoundStages     []string
	Currencies      []string

	// now is the clock used to reject future dates.
	now func() time.Time
}

// NewCatalog builds a Catalog from the configured funds and reference lists.
func NewCatalog(funds []string, ref config.ReferenceConfig) *Catalog {
	return &Catalog{
		Funds:           funds,
		Industries:      ref.Industries,
		InvestmentTypes: ref.InvestmentTypes,
		RoundStages:     ref.RoundStages,
		Currencies:      ref.Currencies,
		now:             time.Now,
	}
}

// WithClock returns a copy of the catalog that uses now as the current time.
func (c *Catalog) WithClock(now func() time.Time) *Catalog {
	cp := *c
	cp.now = now
	return &cp
}

// HasFund reports whether name is a configured fund.
func (c *Catalog) HasFund(name string) bool { return contains(c.Funds, name) }

// HasIndustry reports whether name is an allowed industry.
func (c *Catalog) HasIndustry(name string) bool { return contains(c.Industries, name) }

// HasInvestmentType reports whether name is an allowed investment type.
func (c *Catalog) HasInvestmentType(name string) bool { return contains(c.InvestmentTypes, name) }

// HasRoundStage reports whether name is an allowed round stage.
func (c *Catalog) HasRoundStage(name string) bool { return contains(c.RoundStages, name) }

// HasCurrency reports whether code is an allowed currency code.
func (c *Catalog) HasCurrency(code string) bool { return contains(c.Currencies, code) }

func (c *Catalog) today() time.Time {
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	t := now().UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date string as a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(s))
}

// validatePastDate records an error on field when s is missing, malformed or after today.
func (c *Catalog) validatePastDate(errors map[string]string, field, s string) {
	if strings.TrimSpace(s) == "" {
		errors[field] = "date is required"
		return
	}
	d, err := ParseDate(s)
	if err != nil {
		errors[field] = "date must be in YYYY-MM-DD format"
		return
	}
	if d.After(c.today()) {
		errors[field] = "date cannot be in the future"
	}
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
