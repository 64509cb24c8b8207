package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/yang-ventures/portfolio-backend/internal/model"
)

// RecordStore loads the minimal investment and event records used for return calculations.
// Rows are returned in insertion order. Rows whose dates cannot be parsed are skipped and
// logged rather than failing the whole load.
type RecordStore struct {
	db  *sql.DB
	log *zap.SugaredLogger
}

// NewRecordStore creates a new RecordStore.
func NewRecordStore(db *sql.DB, log *zap.SugaredLogger) *RecordStore {
	return &RecordStore{db: db, log: log}
}

// InvestmentRecords returns every investment across all funds.
func (s *RecordStore) InvestmentRecords(ctx context.Context) ([]model.InvestmentRecord, error) {
	query := `
		SELECT rowid, fund_name, company_id, date, amount
		FROM investment
		ORDER BY rowid ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query investment table: %w", err)
	}
	defer rows.Close()

	records := []model.InvestmentRecord{}
	for rows.Next() {
		var (
			rowID   int64
			rec     model.InvestmentRecord
			dateStr string
		)
		if err := rows.Scan(&rowID, &rec.Fund, &rec.CompanyID, &dateStr, &rec.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan investment table results: %w", err)
		}

		rec.Date, err = ParseTime(dateStr)
		if err != nil || rec.CompanyID == "" {
			s.log.Warnw("skipping malformed investment row", "rowid", rowID, "date", dateStr, "error", err)
			continue
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating investment table: %w", err)
	}

	return records, nil
}

// EventRecords returns every event across all companies.
func (s *RecordStore) EventRecords(ctx context.Context) ([]model.EventRecord, error) {
	query := `
		SELECT rowid, company_id, date, type, cash_flow_amount, holding_valuation
		FROM event
		ORDER BY rowid ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query event table: %w", err)
	}
	defer rows.Close()

	records := []model.EventRecord{}
	for rows.Next() {
		var (
			rowID           int64
			rec             model.EventRecord
			dateStr, kind   string
			cash, valuation sql.NullFloat64
		)
		if err := rows.Scan(&rowID, &rec.CompanyID, &dateStr, &kind, &cash, &valuation); err != nil {
			return nil, fmt.Errorf("failed to scan event table results: %w", err)
		}

		rec.Kind = model.EventKind(kind)
		rec.CashFlowAmount = floatPtr(cash)
		rec.HoldingValuation = floatPtr(valuation)

		rec.Date, err = ParseTime(dateStr)
		if err != nil || rec.CompanyID == "" || !rec.Kind.Valid() {
			s.log.Warnw("skipping malformed event row", "rowid", rowID, "date", dateStr, "type", kind, "error", err)
			continue
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event table: %w", err)
	}

	return records, nil
}
