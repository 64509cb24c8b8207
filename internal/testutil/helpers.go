package testutil

import (
	"database/sql"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yang-ventures/portfolio-backend/internal/config"
	"github.com/yang-ventures/portfolio-backend/internal/logger"
	"github.com/yang-ventures/portfolio-backend/internal/repository"
	"github.com/yang-ventures/portfolio-backend/internal/service"
	"github.com/yang-ventures/portfolio-backend/internal/validation"
)

// TestFunds is the fund list used by test services.
var TestFunds = []string{"Yang Fund 1", "Yang Fund 2", "Yang Fund 3"}

// NewTestCatalog returns the validation catalog built from the default reference lists.
func NewTestCatalog(t *testing.T) *validation.Catalog {
	t.Helper()
	return validation.NewCatalog(TestFunds, config.Default().Reference)
}

func NewTestCompanyService(t *testing.T, db *sql.DB) *service.CompanyService {
	t.Helper()

	return service.NewCompanyService(
		repository.NewCompanyRepository(db),
		repository.NewInvestmentRepository(db),
		repository.NewEventRepository(db),
		repository.NewKPIRepository(db),
		NewTestCatalog(t),
	)
}

func NewTestInvestmentService(t *testing.T, db *sql.DB) *service.InvestmentService {
	t.Helper()

	return service.NewInvestmentService(
		repository.NewInvestmentRepository(db),
		repository.NewCompanyRepository(db),
		NewTestCatalog(t),
	)
}

func NewTestEventService(t *testing.T, db *sql.DB) *service.EventService {
	t.Helper()

	return service.NewEventService(
		repository.NewEventRepository(db),
		repository.NewCompanyRepository(db),
		NewTestCatalog(t),
	)
}

func NewTestKPIService(t *testing.T, db *sql.DB) *service.KPIService {
	t.Helper()

	return service.NewKPIService(
		repository.NewKPIRepository(db),
		repository.NewCompanyRepository(db),
		NewTestCatalog(t),
	)
}

// NewTestReturnsService builds a ReturnsService over db whose "today" is now.
func NewTestReturnsService(t *testing.T, db *sql.DB, now time.Time) *service.ReturnsService {
	t.Helper()

	store := repository.NewRecordStore(db, logger.Nop())
	return service.NewReturnsService(store, TestFunds).WithClock(func() time.Time { return now })
}

func NewTestSnapshotService(t *testing.T, db *sql.DB, now time.Time) *service.SnapshotService {
	t.Helper()

	return service.NewSnapshotService(
		repository.NewSnapshotRepository(db),
		NewTestReturnsService(t, db, now),
		logger.Nop(),
	)
}

func NewTestDashboardService(t *testing.T, db *sql.DB) *service.DashboardService {
	t.Helper()

	return service.NewDashboardService(
		repository.NewCompanyRepository(db),
		repository.NewInvestmentRepository(db),
		repository.NewEventRepository(db),
	)
}

func NewTestImportService(t *testing.T, db *sql.DB) *service.ImportService {
	t.Helper()

	return service.NewImportService(
		db,
		repository.NewCompanyRepository(db),
		repository.NewInvestmentRepository(db),
		repository.NewEventRepository(db),
		NewTestCatalog(t),
		logger.Nop(),
	)
}

func NewTestSeedService(t *testing.T, db *sql.DB) *service.SeedService {
	t.Helper()

	return service.NewSeedService(
		db,
		repository.NewCompanyRepository(db),
		repository.NewInvestmentRepository(db),
		repository.NewKPIRepository(db),
		repository.NewEventRepository(db),
		logger.Nop(),
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()
	return service.NewSystemService(db)
}

// MakeID generates a new UUID string for testing.
func MakeID() string {
	return uuid.New().String()
}

// MakeCompanyName generates a unique company name for testing.
//
// Example usage:
//
//	name := testutil.MakeCompanyName("Acme")
//	// Returns: "Acme XYZ789"
func MakeCompanyName(base string) string {
	if base == "" {
		base = "Company"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}

// Ptr returns a pointer to v. Handy for optional request fields.
func Ptr[T any](v T) *T {
	return &v
}
