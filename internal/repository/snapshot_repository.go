package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/yang-ventures/portfolio-backend/internal/model"
)

// SnapshotRepository provides data access methods for the fund_return_snapshot table.
type SnapshotRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewSnapshotRepository creates a new repository instance.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// WithTx returns a new SnapshotRepository scoped to the provided transaction.
func (r *SnapshotRepository) WithTx(tx *sql.Tx) *SnapshotRepository {
	return &SnapshotRepository{
		db: r.db,
		tx: tx,
	}
}

func (r *SnapshotRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// UpsertSnapshot stores a snapshot, replacing any existing one for the same fund and date.
func (r *SnapshotRepository) UpsertSnapshot(ctx context.Context, s *model.FundReturnSnapshot) error {
	query := `
		INSERT INTO fund_return_snapshot (id, fund_name, date, total_invested, total_realized,
		       total_unrealized, total_value, moic, irr, xirr, calculated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(fund_name, date) DO UPDATE SET
			total_invested = excluded.total_invested,
			total_realized = excluded.total_realized,
			total_unrealized = excluded.total_unrealized,
			total_value = excluded.total_value,
			moic = excluded.moic,
			irr = excluded.irr,
			xirr = excluded.xirr,
			calculated_at = excluded.calculated_at
	`

	_, err := r.getQuerier().ExecContext(ctx, query,
		s.ID,
		s.Fund,
		formatDate(s.Date),
		s.TotalInvested,
		s.TotalRealized,
		s.TotalUnrealized,
		s.TotalValue,
		s.MOIC,
		nullFloat(s.IRR),
		nullFloat(s.XIRR),
		formatTimestamp(s.CalculatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert fund_return_snapshot: %w", err)
	}
	return nil
}

// GetSnapshotHistory retrieves stored snapshots for the given funds between startDate and
// endDate (both inclusive), ordered by date then fund.
//
// Results are streamed to callback one record at a time; an error returned by the
// callback stops iteration and is returned as is.
func (r *SnapshotRepository) GetSnapshotHistory(
	ctx context.Context,
	funds []string,
	startDate, endDate time.Time,
	callback func(record model.FundReturnSnapshot) error,
) error {
	if len(funds) == 0 {
		return nil
	}

	query := `
		SELECT id, fund_name, date, total_invested, total_realized, total_unrealized,
		       total_value, moic, irr, xirr, calculated_at
		FROM fund_return_snapshot
		WHERE fund_name IN (` + placeholders(len(funds)) + `)
		AND date >= ?
		AND date <= ?
		ORDER BY date ASC, fund_name ASC
	`

	args := make([]any, 0, len(funds)+2)
	for _, f := range funds {
		args = append(args, f)
	}
	args = append(args, formatDate(startDate), formatDate(endDate))

	rows, err := r.getQuerier().QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to query fund_return_snapshot: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			record                   model.FundReturnSnapshot
			dateStr, calculatedAtStr string
			irr, xirr                sql.NullFloat64
		)

		err := rows.Scan(
			&record.ID,
			&record.Fund,
			&dateStr,
			&record.TotalInvested,
			&record.TotalRealized,
			&record.TotalUnrealized,
			&record.TotalValue,
			&record.MOIC,
			&irr,
			&xirr,
			&calculatedAtStr,
		)
		if err != nil {
			return fmt.Errorf("failed to scan row: %w", err)
		}

		record.IRR = floatPtr(irr)
		record.XIRR = floatPtr(xirr)

		record.Date, err = ParseTime(dateStr)
		if err != nil {
			return fmt.Errorf("failed to parse date: %w", err)
		}

		record.CalculatedAt, err = ParseTime(calculatedAtStr)
		if err != nil {
			return fmt.Errorf("failed to parse calculated_at: %w", err)
		}

		if err := callback(record); err != nil {
			return err
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating rows: %w", err)
	}

	return nil
}
