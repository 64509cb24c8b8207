package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yang-ventures/portfolio-backend/internal/apperrors"
	"github.com/yang-ventures/portfolio-backend/internal/model"
	"github.com/yang-ventures/portfolio-backend/internal/returns"
)

// RecordStore supplies the raw investment and event records the return calculation runs on.
type RecordStore interface {
	InvestmentRecords(ctx context.Context) ([]model.InvestmentRecord, error)
	EventRecords(ctx context.Context) ([]model.EventRecord, error)
}

// ReturnsService computes fund-level returns for the configured funds.
// It loads every investment and event once per call and hands them to the return aggregator,
// which does its own filtering per fund.
type ReturnsService struct {
	store RecordStore
	funds []string
	now   func() time.Time
}

// NewReturnsService creates a new ReturnsService over the given record store.
// funds is the configured fund list; results are returned in this order.
func NewReturnsService(store RecordStore, funds []string) *ReturnsService {
	return &ReturnsService{
		store: store,
		funds: funds,
		now:   time.Now,
	}
}

// WithClock returns a copy of the service that uses now for "today".
func (s *ReturnsService) WithClock(now func() time.Time) *ReturnsService {
	cp := *s
	cp.now = now
	return &cp
}

// Funds returns the configured fund names.
func (s *ReturnsService) Funds() []string {
	return s.funds
}

// GetAllFundReturns computes the returns of every configured fund as of today.
func (s *ReturnsService) GetAllFundReturns(ctx context.Context) ([]model.FundReturn, error) {
	investments, events, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	agg := returns.NewAggregator(returns.WithClock(s.now))
	results := make([]model.FundReturn, 0, len(s.funds))
	for _, fund := range s.funds {
		results = append(results, agg.ComputeFundReturns(fund, investments, events))
	}
	return results, nil
}

// GetFundReturn computes the returns of a single fund.
// Returns apperrors.ErrFundNotFound when fund is not configured.
func (s *ReturnsService) GetFundReturn(ctx context.Context, fund string) (model.FundReturn, error) {
	if !s.hasFund(fund) {
		return model.FundReturn{}, apperrors.ErrFundNotFound
	}

	investments, events, err := s.loadRecords(ctx)
	if err != nil {
		return model.FundReturn{}, err
	}

	agg := returns.NewAggregator(returns.WithClock(s.now))
	return agg.ComputeFundReturns(fund, investments, events), nil
}

// ReturnsAsOf computes the returns of every configured fund using only records dated on or
// before asOf, with asOf standing in for today. Used to backfill snapshots.
func (s *ReturnsService) ReturnsAsOf(ctx context.Context, asOf time.Time) ([]model.FundReturn, error) {
	investments, events, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := truncateDay(asOf)
	investments = filterInvestments(investments, cutoff)
	events = filterEvents(events, cutoff)

	agg := returns.NewAggregator(returns.WithClock(func() time.Time { return cutoff }))
	results := make([]model.FundReturn, 0, len(s.funds))
	for _, fund := range s.funds {
		results = append(results, agg.ComputeFundReturns(fund, investments, events))
	}
	return results, nil
}

// loadRecords fetches investments and events concurrently.
func (s *ReturnsService) loadRecords(ctx context.Context) ([]model.InvestmentRecord, []model.EventRecord, error) {
	var (
		investments []model.InvestmentRecord
		events      []model.EventRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		investments, err = s.store.InvestmentRecords(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		events, err = s.store.EventRecords(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToCalculateReturns, err)
	}
	return investments, events, nil
}

func (s *ReturnsService) hasFund(fund string) bool {
	for _, f := range s.funds {
		if f == fund {
			return true
		}
	}
	return false
}

func filterInvestments(records []model.InvestmentRecord, cutoff time.Time) []model.InvestmentRecord {
	out := make([]model.InvestmentRecord, 0, len(records))
	for _, r := range records {
		if !r.Date.After(cutoff) {
			out = append(out, r)
		}
	}
	return out
}

func filterEvents(records []model.EventRecord, cutoff time.Time) []model.EventRecord {
	out := make([]model.EventRecord, 0, len(records))
	for _, r := range records {
		if !r.Date.After(cutoff) {
			out = append(out, r)
		}
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
