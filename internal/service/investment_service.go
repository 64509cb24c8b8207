package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yang-ventures/portfolio-backend/internal/api/request"
	"github.com/yang-ventures/portfolio-backend/internal/model"
	"github.com/yang-ventures/portfolio-backend/internal/repository"
	"github.com/yang-ventures/portfolio-backend/internal/validation"
)

// InvestmentService handles investment round business logic.
type InvestmentService struct {
	investmentRepo *repository.InvestmentRepository
	companyRepo    *repository.CompanyRepository
	catalog        *validation.Catalog
}

// NewInvestmentService creates a new InvestmentService.
func NewInvestmentService(
	investmentRepo *repository.InvestmentRepository,
	companyRepo *repository.CompanyRepository,
	catalog *validation.Catalog,
) *InvestmentService {
	return &InvestmentService{
		investmentRepo: investmentRepo,
		companyRepo:    companyRepo,
		catalog:        catalog,
	}
}

// GetInvestments retrieves investments newest first, filtered by fund and/or company.
func (s *InvestmentService) GetInvestments(ctx context.Context, filter model.InvestmentFilter) ([]model.Investment, error) {
	return s.investmentRepo.GetInvestments(ctx, filter)
}

// GetInvestment retrieves a single investment.
func (s *InvestmentService) GetInvestment(ctx context.Context, id string) (model.Investment, error) {
	return s.investmentRepo.GetInvestment(ctx, id)
}

// CreateInvestment validates and stores a new investment.
// Returns apperrors.ErrCompanyNotFound when the company does not exist.
func (s *InvestmentService) CreateInvestment(ctx context.Context, req request.CreateInvestmentRequest) (*model.Investment, error) {
	if err := s.catalog.ValidateCreateInvestment(req); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.GetCompany(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}

	date, _ := validation.ParseDate(req.Date)
	inv := &model.Investment{
		ID:                 uuid.New().String(),
		Fund:               req.Fund,
		CompanyID:          company.ID,
		CompanyName:        company.Name,
		Type:               req.Type,
		RoundNumber:        req.RoundNumber,
		RoundStage:         req.RoundStage,
		Date:               date,
		Amount:             req.Amount,
		TotalRoundSize:     req.TotalRoundSize,
		PostMoneyValuation: req.PostMoneyValuation,
		CreatedAt:          time.Now().UTC(),
	}

	if err := s.investmentRepo.InsertInvestment(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	return inv, nil
}

// UpdateInvestment applies a partial update to an existing investment.
func (s *InvestmentService) UpdateInvestment(ctx context.Context, id string, req request.UpdateInvestmentRequest) (*model.Investment, error) {
	if err := s.catalog.ValidateUpdateInvestment(req); err != nil {
		return nil, err
	}

	inv, err := s.investmentRepo.GetInvestment(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Fund != nil {
		inv.Fund = *req.Fund
	}
	if req.CompanyID != nil && *req.CompanyID != inv.CompanyID {
		company, err := s.companyRepo.GetCompany(ctx, *req.CompanyID)
		if err != nil {
			return nil, err
		}
		inv.CompanyID = company.ID
		inv.CompanyName = company.Name
	}
	if req.Type != nil {
		inv.Type = *req.Type
	}
	if req.RoundNumber != nil {
		inv.RoundNumber = *req.RoundNumber
	}
	if req.RoundStage != nil {
		inv.RoundStage = *req.RoundStage
	}
	if req.Date != nil {
		inv.Date, _ = validation.ParseDate(*req.Date)
	}
	if req.Amount != nil {
		inv.Amount = *req.Amount
	}
	if req.TotalRoundSize != nil {
		inv.TotalRoundSize = req.TotalRoundSize
	}
	if req.PostMoneyValuation != nil {
		inv.PostMoneyValuation = req.PostMoneyValuation
	}

	if err := s.investmentRepo.UpdateInvestment(ctx, &inv); err != nil {
		return nil, fmt.Errorf("failed to update investment: %w", err)
	}

	return &inv, nil
}

// DeleteInvestment removes an investment.
func (s *InvestmentService) DeleteInvestment(ctx context.Context, id string) error {
	if err := s.investmentRepo.DeleteInvestment(ctx, id); err != nil {
		return fmt.Errorf("failed to delete investment: %w", err)
	}
	return nil
}
