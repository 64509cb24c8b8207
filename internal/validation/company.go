package validation

import (
	"fmt"
	"strings"

	"github.com/yang-ventures/portfolio-backend/internal/api/request"
	"github.com/yang-ventures/portfolio-backend/internal/model"
)

const minYearFounded = 1900

// ValidateCreateCompany validates a company creation request.
//
// Required fields:
//   - name: 1-100 characters
//   - yearFounded: Between 1900 and next year
//   - industries: At least one, each from the reference list, no duplicates
//   - country: 1-100 characters
//
// Optional fields:
//   - status: Active or Inactive (callers default it to Active)
func (c *Catalog) ValidateCreateCompany(req request.CreateCompanyRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	c.validateYearFounded(errors, req.YearFounded)
	c.validateIndustries(errors, req.Industries)

	if strings.TrimSpace(req.Country) == "" {
		errors["country"] = "country is required"
	} else if len(req.Country) > 100 {
		errors["country"] = "country must be 100 characters or less"
	}

	if req.Status != "" && !validStatus(req.Status) {
		errors["status"] = fmt.Sprintf("invalid status: %s", req.Status)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateCompany validates the fields present in a partial company update.
func (c *Catalog) ValidateUpdateCompany(req request.UpdateCompanyRequest) error {
	errors := make(map[string]string)

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			errors["name"] = "name cannot be empty"
		} else if len(*req.Name) > 100 {
			errors["name"] = "name must be 100 characters or less"
		}
	}
	if req.YearFounded != nil {
		c.validateYearFounded(errors, *req.YearFounded)
	}
	if req.Industries != nil {
		c.validateIndustries(errors, req.Industries)
	}
	if req.Country != nil {
		if strings.TrimSpace(*req.Country) == "" {
			errors["country"] = "country cannot be empty"
		} else if len(*req.Country) > 100 {
			errors["country"] = "country must be 100 characters or less"
		}
	}
	if req.Status != nil && !validStatus(*req.Status) {
		errors["status"] = fmt.Sprintf("invalid status: %s", *req.Status)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func (c *Catalog) validateYearFounded(errors map[string]string, year int) {
	maxYear := c.today().Year() + 1
	if year < minYearFounded || year > maxYear {
		errors["yearFounded"] = fmt.Sprintf("yearFounded must be between %d and %d", minYearFounded, maxYear)
	}
}

func (c *Catalog) validateIndustries(errors map[string]string, industries []string) {
	if len(industries) == 0 {
		errors["industries"] = "at least one industry is required"
		return
	}
	seen := make(map[string]bool, len(industries))
	for _, ind := range industries {
		if !c.HasIndustry(ind) {
			errors["industries"] = fmt.Sprintf("invalid industry: %s", ind)
			return
		}
		if seen[ind] {
			errors["industries"] = fmt.Sprintf("duplicate industry: %s", ind)
			return
		}
		seen[ind] = true
	}
}

func validStatus(status string) bool {
	return contains(model.CompanyStatuses, status)
}
