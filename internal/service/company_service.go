package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/yang-ventures/portfolio-backend/internal/api/request"
	"github.com/yang-ventures/portfolio-backend/internal/model"
	"github.com/yang-ventures/portfolio-backend/internal/repository"
	"github.com/yang-ventures/portfolio-backend/internal/validation"
)

// CompanyService handles portfolio company business logic.
type CompanyService struct {
	companyRepo    *repository.CompanyRepository
	investmentRepo *repository.InvestmentRepository
	eventRepo      *repository.EventRepository
	kpiRepo        *repository.KPIRepository
	catalog        *validation.Catalog
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(
	companyRepo *repository.CompanyRepository,
	investmentRepo *repository.InvestmentRepository,
	eventRepo *repository.EventRepository,
	kpiRepo *repository.KPIRepository,
	catalog *validation.Catalog,
) *CompanyService {
	return &CompanyService{
		companyRepo:    companyRepo,
		investmentRepo: investmentRepo,
		eventRepo:      eventRepo,
		kpiRepo:        kpiRepo,
		catalog:        catalog,
	}
}

// GetCompanies retrieves companies ordered by name, optionally filtered by status.
func (s *CompanyService) GetCompanies(ctx context.Context, filter model.CompanyFilter) ([]model.Company, error) {
	return s.companyRepo.GetCompanies(ctx, filter)
}

// GetCompany retrieves a single company without its related records.
func (s *CompanyService) GetCompany(ctx context.Context, id string) (model.Company, error) {
	return s.companyRepo.GetCompany(ctx, id)
}

// GetCompanyDetail retrieves a company with its investments, events and KPIs.
// The related records are loaded concurrently once the company is known to exist.
func (s *CompanyService) GetCompanyDetail(ctx context.Context, id string) (*model.CompanyDetail, error) {
	company, err := s.companyRepo.GetCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &model.CompanyDetail{Company: company}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		detail.Investments, err = s.investmentRepo.GetInvestments(gctx, model.InvestmentFilter{CompanyID: id})
		return err
	})
	g.Go(func() error {
		var err error
		detail.Events, err = s.eventRepo.GetEvents(gctx, model.EventFilter{CompanyID: id})
		return err
	})
	g.Go(func() error {
		var err error
		detail.KPIs, err = s.kpiRepo.GetKPIs(gctx, model.KPIFilter{CompanyID: id})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, inv := range detail.Investments {
		detail.TotalInvested += inv.Amount
	}

	return detail, nil
}

// CreateCompany validates and stores a new company. Status defaults to Active.
// Returns apperrors.ErrDuplicateEntry when the name (case-insensitive) is taken.
func (s *CompanyService) CreateCompany(ctx context.Context, req request.CreateCompanyRequest) (*model.Company, error) {
	if err := s.catalog.ValidateCreateCompany(req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.CompanyStatusActive
	}

	company := &model.Company{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(req.Name),
		YearFounded: req.YearFounded,
		Industries:  req.Industries,
		Country:     strings.TrimSpace(req.Country),
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.companyRepo.InsertCompany(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	return company, nil
}

// UpdateCompany applies a partial update to an existing company.
// Only provided fields in the request are updated; omitted fields remain unchanged.
func (s *CompanyService) UpdateCompany(ctx context.Context, id string, req request.UpdateCompanyRequest) (*model.Company, error) {
	if err := s.catalog.ValidateUpdateCompany(req); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.GetCompany(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		company.Name = strings.TrimSpace(*req.Name)
	}
	if req.YearFounded != nil {
		company.YearFounded = *req.YearFounded
	}
	if req.Industries != nil {
		company.Industries = req.Industries
	}
	if req.Country != nil {
		company.Country = strings.TrimSpace(*req.Country)
	}
	if req.Status != nil {
		company.Status = *req.Status
	}

	if err := s.companyRepo.UpdateCompany(ctx, &company); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	return &company, nil
}

// DeleteCompany removes a company together with its investments, events and KPIs.
func (s *CompanyService) DeleteCompany(ctx context.Context, id string) error {
	if err := s.companyRepo.DeleteCompany(ctx, id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}
