package service

import (
	"database/sql"

	"go.uber.org/zap"

	"github.com/yang-ventures/portfolio-backend/internal/config"
	"github.com/yang-ventures/portfolio-backend/internal/repository"
	"github.com/yang-ventures/portfolio-backend/internal/validation"
)

// Services bundles every service of the application over one database.
type Services struct {
	System     *SystemService
	Company    *CompanyService
	Investment *InvestmentService
	Event      *EventService
	KPI        *KPIService
	Returns    *ReturnsService
	Snapshot   *SnapshotService
	Dashboard  *DashboardService
	Import     *ImportService
	Seed       *SeedService
}

// NewServices wires repositories and services for db using the configured funds
// and reference lists.
func NewServices(db *sql.DB, cfg *config.Config, log *zap.SugaredLogger) *Services {
	companyRepo := repository.NewCompanyRepository(db)
	investmentRepo := repository.NewInvestmentRepository(db)
	eventRepo := repository.NewEventRepository(db)
	kpiRepo := repository.NewKPIRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	store := repository.NewRecordStore(db, log)

	catalog := validation.NewCatalog(cfg.Funds, cfg.Reference)
	returnsService := NewReturnsService(store, cfg.Funds)

	return &Services{
		System:     NewSystemService(db),
		Company:    NewCompanyService(companyRepo, investmentRepo, eventRepo, kpiRepo, catalog),
		Investment: NewInvestmentService(investmentRepo, companyRepo, catalog),
		Event:      NewEventService(eventRepo, companyRepo, catalog),
		KPI:        NewKPIService(kpiRepo, companyRepo, catalog),
		Returns:    returnsService,
		Snapshot:   NewSnapshotService(snapshotRepo, returnsService, log),
		Dashboard:  NewDashboardService(companyRepo, investmentRepo, eventRepo),
		Import:     NewImportService(db, companyRepo, investmentRepo, eventRepo, catalog, log),
		Seed:       NewSeedService(db, companyRepo, investmentRepo, kpiRepo, eventRepo, log),
	}
}
