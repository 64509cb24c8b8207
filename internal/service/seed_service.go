package service

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/yang-ventures/portfolio-backend/internal/repository"
	"github.com/yang-ventures/portfolio-backend/internal/seed"
)

// SeedResult counts the records inserted by SeedService.Seed.
type SeedResult struct {
	Companies   int `json:"companies"`
	Investments int `json:"investments"`
	KPIs        int `json:"kpis"`
	Events      int `json:"events"`
}

// SeedService fills the database with a generated demo portfolio.
type SeedService struct {
	db             *sql.DB
	companyRepo    *repository.CompanyRepository
	investmentRepo *repository.InvestmentRepository
	kpiRepo        *repository.KPIRepository
	eventRepo      *repository.EventRepository
	log            *zap.SugaredLogger
}

// NewSeedService creates a new SeedService.
func NewSeedService(
	db *sql.DB,
	companyRepo *repository.CompanyRepository,
	investmentRepo *repository.InvestmentRepository,
	kpiRepo *repository.KPIRepository,
	eventRepo *repository.EventRepository,
	log *zap.SugaredLogger,
) *SeedService {
	return &SeedService{
		db:             db,
		companyRepo:    companyRepo,
		investmentRepo: investmentRepo,
		kpiRepo:        kpiRepo,
		eventRepo:      eventRepo,
		log:            log,
	}
}

// Seed generates a data set from opts and inserts it in a single transaction.
// Seeding fails without changes if a generated company name already exists.
func (s *SeedService) Seed(ctx context.Context, opts seed.Options) (*SeedResult, error) {
	ds, err := seed.Generate(opts)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	companies := s.companyRepo.WithTx(tx)
	investments := s.investmentRepo.WithTx(tx)
	kpis := s.kpiRepo.WithTx(tx)
	events := s.eventRepo.WithTx(tx)

	for i := range ds.Companies {
		if err := companies.InsertCompany(ctx, &ds.Companies[i]); err != nil {
			return nil, err
		}
	}
	for i := range ds.Investments {
		if err := investments.InsertInvestment(ctx, &ds.Investments[i]); err != nil {
			return nil, err
		}
	}
	for i := range ds.KPIs {
		if err := kpis.InsertKPI(ctx, &ds.KPIs[i]); err != nil {
			return nil, err
		}
	}
	for i := range ds.Events {
		if err := events.InsertEvent(ctx, &ds.Events[i]); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit seed data: %w", err)
	}

	result := &SeedResult{
		Companies:   len(ds.Companies),
		Investments: len(ds.Investments),
		KPIs:        len(ds.KPIs),
		Events:      len(ds.Events),
	}
	s.log.Infow("seeded database",
		"seed", opts.Seed,
		"companies", result.Companies,
		"investments", result.Investments,
		"kpis", result.KPIs,
		"events", result.Events,
	)
	return result, nil
}
