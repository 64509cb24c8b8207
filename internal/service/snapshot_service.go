package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yang-ventures/portfolio-backend/internal/apperrors"
	"github.com/yang-ventures/portfolio-backend/internal/format"
	"github.com/yang-ventures/portfolio-backend/internal/model"
	"github.com/yang-ventures/portfolio-backend/internal/repository"
)

// Snapshots keep money to the cent and rates to six decimals.
const (
	moneyPlaces = 2
	ratePlaces  = 6
)

// SnapshotService stores and reads back dated copies of fund returns.
// Snapshots make the return history cheap to chart: the history endpoint reads stored rows
// instead of recomputing every fund for every date.
type SnapshotService struct {
	snapshotRepo   *repository.SnapshotRepository
	returnsService *ReturnsService
	log            *zap.SugaredLogger
	now            func() time.Time
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(
	snapshotRepo *repository.SnapshotRepository,
	returnsService *ReturnsService,
	log *zap.SugaredLogger,
) *SnapshotService {
	return &SnapshotService{
		snapshotRepo:   snapshotRepo,
		returnsService: returnsService,
		log:            log,
		now:            time.Now,
	}
}

// Materialize computes the returns of every configured fund as of asOf and stores one
// snapshot per fund for that date, replacing earlier snapshots for the same date.
//
// Returns the stored snapshots in fund order.
func (s *SnapshotService) Materialize(ctx context.Context, asOf time.Time) ([]model.FundReturnSnapshot, error) {
	results, err := s.returnsService.ReturnsAsOf(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToMaterializeReturns, err)
	}

	date := truncateDay(asOf)
	calculatedAt := s.now().UTC()

	snapshots := make([]model.FundReturnSnapshot, 0, len(results))
	for _, r := range results {
		snap := model.FundReturnSnapshot{
			ID:              uuid.New().String(),
			Fund:            r.Fund,
			Date:            date,
			TotalInvested:   format.Round(r.TotalInvested, moneyPlaces),
			TotalRealized:   format.Round(r.TotalRealized, moneyPlaces),
			TotalUnrealized: format.Round(r.TotalUnrealized, moneyPlaces),
			TotalValue:      format.Round(r.TotalValue, moneyPlaces),
			MOIC:            format.Round(r.MOIC, ratePlaces),
			IRR:             format.RoundPtr(r.IRR, ratePlaces),
			XIRR:            format.RoundPtr(r.XIRR, ratePlaces),
			CalculatedAt:    calculatedAt,
		}
		if err := s.snapshotRepo.UpsertSnapshot(ctx, &snap); err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToMaterializeReturns, err)
		}
		snapshots = append(snapshots, snap)
	}

	s.log.Infow("materialized fund returns",
		"date", date.Format("2006-01-02"),
		"funds", len(snapshots),
	)

	return snapshots, nil
}

// History retrieves stored snapshots between start and end (inclusive), grouped by date.
// When fund is empty every configured fund is included.
//
// Returns apperrors.ErrInvalidDateRange when start is after end and
// apperrors.ErrFundNotFound for an unknown fund.
func (s *SnapshotService) History(ctx context.Context, fund string, start, end time.Time) ([]model.FundReturnHistory, error) {
	if start.After(end) {
		return nil, apperrors.ErrInvalidDateRange
	}

	funds := s.returnsService.Funds()
	if fund != "" {
		if !s.returnsService.hasFund(fund) {
			return nil, apperrors.ErrFundNotFound
		}
		funds = []string{fund}
	}

	history := []model.FundReturnHistory{}
	err := s.snapshotRepo.GetSnapshotHistory(ctx, funds, start, end,
		func(record model.FundReturnSnapshot) error {
			n := len(history)
			if n == 0 || !history[n-1].Date.Equal(record.Date) {
				history = append(history, model.FundReturnHistory{Date: record.Date})
				n++
			}
			history[n-1].Funds = append(history[n-1].Funds, record)
			return nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToRetrieveReturnHistory, err)
	}

	return history, nil
}
