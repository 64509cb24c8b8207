package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrCompanyNotFound indicates that a portfolio company with the given ID or name does not exist.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrFundNotFound indicates that the fund is not one of the configured funds.
	ErrFundNotFound = errors.New("fund not found")

	// ErrInvestmentNotFound indicates that an investment with the given ID does not exist.
	ErrInvestmentNotFound = errors.New("investment not found")

	// ErrEventNotFound indicates that an event with the given ID does not exist.
	ErrEventNotFound = errors.New("event not found")

	// ErrKPINotFound indicates that a KPI record with the given ID does not exist.
	ErrKPINotFound = errors.New("kpi not found")

	// ErrKPISeriesNotFound indicates that a company has no values recorded for a KPI name.
	ErrKPISeriesNotFound = errors.New("kpi series not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrDuplicateEntry indicates that an entity with the same unique constraint already exists.
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrInvalidCSVHeaders indicates that an uploaded CSV lacks required columns.
	ErrInvalidCSVHeaders = errors.New("invalid CSV headers")

	// ErrEmptyImport indicates that an uploaded CSV contains no data rows.
	ErrEmptyImport = errors.New("import contains no rows")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
// These errors indicate that an operation failed, but not due to missing entities or validation issues.
var (
	ErrFailedToRetrieveCompanies   = errors.New("failed to retrieve companies")
	ErrFailedToRetrieveCompany     = errors.New("failed to retrieve company")
	ErrFailedToRetrieveInvestments = errors.New("failed to retrieve investments")
	ErrFailedToRetrieveInvestment  = errors.New("failed to retrieve investment")
	ErrFailedToRetrieveEvents      = errors.New("failed to retrieve events")
	ErrFailedToRetrieveEvent       = errors.New("failed to retrieve event")
	ErrFailedToRetrieveKPIs        = errors.New("failed to retrieve kpis")
	ErrFailedToRetrieveKPI         = errors.New("failed to retrieve kpi")
	ErrFailedToRetrieveKPISummary  = errors.New("failed to retrieve kpi summary")

	ErrFailedToCreateCompany    = errors.New("failed to create company")
	ErrFailedToUpdateCompany    = errors.New("failed to update company")
	ErrFailedToDeleteCompany    = errors.New("failed to delete company")
	ErrFailedToCreateInvestment = errors.New("failed to create investment")
	ErrFailedToUpdateInvestment = errors.New("failed to update investment")
	ErrFailedToDeleteInvestment = errors.New("failed to delete investment")
	ErrFailedToCreateEvent      = errors.New("failed to create event")
	ErrFailedToUpdateEvent      = errors.New("failed to update event")
	ErrFailedToDeleteEvent      = errors.New("failed to delete event")
	ErrFailedToCreateKPI        = errors.New("failed to create kpi")
	ErrFailedToUpdateKPI        = errors.New("failed to update kpi")
	ErrFailedToDeleteKPI        = errors.New("failed to delete kpi")

	ErrFailedToCalculateReturns      = errors.New("failed to calculate fund returns")
	ErrFailedToRetrieveReturnHistory = errors.New("failed to retrieve fund return history")
	ErrFailedToMaterializeReturns    = errors.New("failed to materialize fund returns")

	ErrFailedToGetDashboardSummary = errors.New("failed to get dashboard summary")
	ErrFailedToGetRecentActivity   = errors.New("failed to get recent activity")

	ErrFailedToImportInvestments = errors.New("failed to import investments")
	ErrFailedToImportEvents      = errors.New("failed to import events")

	ErrFailedToGetVersionInfo = errors.New("failed to get version information")
)
