package request

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yang-ventures/portfolio-backend/internal/model"
)

const (
	defaultRecentLimit = 5
	maxRecentLimit     = 50
)

// HistoryFilters holds the parsed query of a returns history request.
type HistoryFilters struct {
	Fund      string
	StartDate time.Time
	EndDate   time.Time
}

// ParseHistoryFilters extracts and validates returns history filters from query parameters.
// All parameters are optional.
//
// Validation rules:
//   - startDate/endDate: Must be valid date/datetime strings (YYYY-MM-DD or RFC3339)
//   - endDate defaults to today, startDate to one year before endDate
//   - startDate must not be after endDate
func ParseHistoryFilters(fundParam, startDateParam, endDateParam string, now time.Time) (*HistoryFilters, error) {
	filters := &HistoryFilters{
		Fund:    strings.TrimSpace(fundParam),
		EndDate: truncateDay(now),
	}

	if endDateParam != "" {
		endTime, err := parseFilterTime(endDateParam)
		if err != nil {
			return nil, fmt.Errorf("invalid end_date format: %w", err)
		}
		filters.EndDate = truncateDay(endTime)
	}

	filters.StartDate = filters.EndDate.AddDate(-1, 0, 0)
	if startDateParam != "" {
		startTime, err := parseFilterTime(startDateParam)
		if err != nil {
			return nil, fmt.Errorf("invalid start_date format: %w", err)
		}
		filters.StartDate = truncateDay(startTime)
	}

	if filters.StartDate.After(filters.EndDate) {
		return nil, fmt.Errorf("invalid date range: start_date is after end_date")
	}

	return filters, nil
}

// ParseRecentLimit parses the limit of a recent activity request.
// Defaults to 5 and must be between 1 and 50.
func ParseRecentLimit(limitParam string) (int, error) {
	if limitParam == "" {
		return defaultRecentLimit, nil
	}
	limit, err := strconv.Atoi(limitParam)
	if err != nil {
		return 0, fmt.Errorf("invalid limit: must be a number")
	}
	if limit < 1 || limit > maxRecentLimit {
		return 0, fmt.Errorf("invalid limit: must be between 1 and %d", maxRecentLimit)
	}
	return limit, nil
}

// ParseCompanyStatus validates an optional company status filter.
func ParseCompanyStatus(statusParam string) (string, error) {
	if statusParam == "" {
		return "", nil
	}
	for _, s := range model.CompanyStatuses {
		if strings.EqualFold(s, statusParam) {
			return s, nil
		}
	}
	return "", fmt.Errorf("invalid status: %s", statusParam)
}

// ParseDate parses an optional date parameter, returning fallback when empty.
func ParseDate(param string, fallback time.Time) (time.Time, error) {
	if param == "" {
		return truncateDay(fallback), nil
	}
	t, err := parseFilterTime(param)
	if err != nil {
		return time.Time{}, err
	}
	return truncateDay(t), nil
}

// parseFilterTime parses date strings for filter parameters.
// Accepts YYYY-MM-DD, RFC3339, and RFC3339 with milliseconds formats.
func parseFilterTime(str string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05.000Z07:00"} {
		if t, err := time.Parse(layout, str); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a date or datetime", str)
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
