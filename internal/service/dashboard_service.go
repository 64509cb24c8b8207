package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/yang-ventures/portfolio-backend/internal/apperrors"
	"github.com/yang-ventures/portfolio-backend/internal/model"
	"github.com/yang-ventures/portfolio-backend/internal/repository"
)

// DashboardService computes the headline numbers and activity feed of the home page.
type DashboardService struct {
	companyRepo    *repository.CompanyRepository
	investmentRepo *repository.InvestmentRepository
	eventRepo      *repository.EventRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	companyRepo *repository.CompanyRepository,
	investmentRepo *repository.InvestmentRepository,
	eventRepo *repository.EventRepository,
) *DashboardService {
	return &DashboardService{
		companyRepo:    companyRepo,
		investmentRepo: investmentRepo,
		eventRepo:      eventRepo,
	}
}

// Summary returns company counts, the total invested across all funds and the estimated
// current value of active holdings.
func (s *DashboardService) Summary(ctx context.Context) (*model.DashboardSummary, error) {
	summary := &model.DashboardSummary{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary.TotalCompanies, summary.ActiveCompanies, err = s.companyRepo.CountCompanies(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		summary.TotalInvested, err = s.investmentRepo.TotalInvested(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		summary.CurrentValue, err = s.eventRepo.CurrentValue(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToGetDashboardSummary, err)
	}
	return summary, nil
}

// RecentActivity returns the newest limit investments and events.
func (s *DashboardService) RecentActivity(ctx context.Context, limit int) (*model.RecentActivity, error) {
	activity := &model.RecentActivity{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		activity.Investments, err = s.investmentRepo.GetRecentInvestments(gctx, limit)
		return err
	})
	g.Go(func() error {
		var err error
		activity.Events, err = s.eventRepo.GetRecentEvents(gctx, limit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToGetRecentActivity, err)
	}
	return activity, nil
}
