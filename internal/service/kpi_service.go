package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"

	"github.com/yang-ventures/portfolio-backend/internal/api/request"
	"github.com/yang-ventures/portfolio-backend/internal/apperrors"
	"github.com/yang-ventures/portfolio-backend/internal/model"
	"github.com/yang-ventures/portfolio-backend/internal/repository"
	"github.com/yang-ventures/portfolio-backend/internal/validation"
)

// KPIService handles company KPI business logic.
type KPIService struct {
	kpiRepo     *repository.KPIRepository
	companyRepo *repository.CompanyRepository
	catalog     *validation.Catalog
}

// NewKPIService creates a new KPIService.
func NewKPIService(
	kpiRepo *repository.KPIRepository,
	companyRepo *repository.CompanyRepository,
	catalog *validation.Catalog,
) *KPIService {
	return &KPIService{
		kpiRepo:     kpiRepo,
		companyRepo: companyRepo,
		catalog:     catalog,
	}
}

// GetKPIs retrieves KPI values, optionally for one company and/or one KPI name.
func (s *KPIService) GetKPIs(ctx context.Context, filter model.KPIFilter) ([]model.KPI, error) {
	return s.kpiRepo.GetKPIs(ctx, filter)
}

// GetKPI retrieves a single KPI value.
func (s *KPIService) GetKPI(ctx context.Context, id string) (model.KPI, error) {
	return s.kpiRepo.GetKPI(ctx, id)
}

// CreateKPI validates and stores a new KPI value.
func (s *KPIService) CreateKPI(ctx context.Context, req request.CreateKPIRequest) (*model.KPI, error) {
	if err := s.catalog.ValidateCreateKPI(req); err != nil {
		return nil, err
	}

	if _, err := s.companyRepo.GetCompany(ctx, req.CompanyID); err != nil {
		return nil, err
	}

	date, _ := validation.ParseDate(req.Date)
	kpi := &model.KPI{
		ID:        uuid.New().String(),
		CompanyID: req.CompanyID,
		Name:      strings.TrimSpace(req.Name),
		Value:     req.Value,
		Date:      date,
		Units:     strings.TrimSpace(req.Units),
		Notes:     strings.TrimSpace(req.Notes),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.kpiRepo.InsertKPI(ctx, kpi); err != nil {
		return nil, fmt.Errorf("failed to create kpi: %w", err)
	}

	return kpi, nil
}

// UpdateKPI applies a partial update to an existing KPI value.
func (s *KPIService) UpdateKPI(ctx context.Context, id string, req request.UpdateKPIRequest) (*model.KPI, error) {
	if err := s.catalog.ValidateUpdateKPI(req); err != nil {
		return nil, err
	}

	kpi, err := s.kpiRepo.GetKPI(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.CompanyID != nil && *req.CompanyID != kpi.CompanyID {
		if _, err := s.companyRepo.GetCompany(ctx, *req.CompanyID); err != nil {
			return nil, err
		}
		kpi.CompanyID = *req.CompanyID
	}
	if req.Name != nil {
		kpi.Name = strings.TrimSpace(*req.Name)
	}
	if req.Value != nil {
		kpi.Value = *req.Value
	}
	if req.Date != nil {
		kpi.Date, _ = validation.ParseDate(*req.Date)
	}
	if req.Units != nil {
		kpi.Units = strings.TrimSpace(*req.Units)
	}
	if req.Notes != nil {
		kpi.Notes = strings.TrimSpace(*req.Notes)
	}

	if err := s.kpiRepo.UpdateKPI(ctx, &kpi); err != nil {
		return nil, fmt.Errorf("failed to update kpi: %w", err)
	}

	return &kpi, nil
}

// DeleteKPI removes a KPI value.
func (s *KPIService) DeleteKPI(ctx context.Context, id string) error {
	if err := s.kpiRepo.DeleteKPI(ctx, id); err != nil {
		return fmt.Errorf("failed to delete kpi: %w", err)
	}
	return nil
}

// Summary describes the series of one KPI for one company.
//
// The series is ordered by date. Change is (latest - first) / |first| and is nil when the
// first value is zero. The standard deviation is the sample deviation and is 0 for a
// single value.
//
// Returns apperrors.ErrCompanyNotFound for an unknown company and
// apperrors.ErrKPISeriesNotFound when the company has no values for name.
func (s *KPIService) Summary(ctx context.Context, companyID, name string) (*model.KPISummary, error) {
	if _, err := s.companyRepo.GetCompany(ctx, companyID); err != nil {
		return nil, err
	}

	series, err := s.kpiRepo.GetKPIs(ctx, model.KPIFilter{CompanyID: companyID, Name: strings.TrimSpace(name)})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveKPISummary, err)
	}
	if len(series) == 0 {
		return nil, apperrors.ErrKPISeriesNotFound
	}

	values := make([]float64, len(series))
	for i, k := range series {
		values[i] = k.Value
	}

	first, latest := series[0], series[len(series)-1]
	summary := &model.KPISummary{
		CompanyID:   companyID,
		Name:        latest.Name,
		Units:       latest.Units,
		Count:       len(series),
		FirstDate:   first.Date,
		FirstValue:  first.Value,
		LatestDate:  latest.Date,
		LatestValue: latest.Value,
	}

	if summary.Mean, err = stats.Mean(values); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveKPISummary, err)
	}
	if summary.Median, err = stats.Median(values); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveKPISummary, err)
	}
	if summary.Min, err = stats.Min(values); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveKPISummary, err)
	}
	if summary.Max, err = stats.Max(values); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveKPISummary, err)
	}
	if len(values) > 1 {
		if summary.StdDev, err = stats.StandardDeviationSample(values); err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveKPISummary, err)
		}
	}

	if first.Value != 0 {
		change := (latest.Value - first.Value) / math.Abs(first.Value)
		summary.Change = &change
	}

	return summary, nil
}
