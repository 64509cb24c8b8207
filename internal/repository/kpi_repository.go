package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/yang-ventures/portfolio-backend/internal/apperrors"
	"github.com/yang-ventures/portfolio-backend/internal/model"
)

// KPIRepository provides data access methods for the kpi table.
type KPIRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewKPIRepository creates a new KPIRepository with the provided database connection.
func NewKPIRepository(db *sql.DB) *KPIRepository {
	return &KPIRepository{db: db}
}

// WithTx returns a new KPIRepository scoped to the provided transaction.
func (r *KPIRepository) WithTx(tx *sql.Tx) *KPIRepository {
	return &KPIRepository{
		db: r.db,
		tx: tx,
	}
}

func (r *KPIRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const kpiColumns = `id, company_id, name, value, date, units, notes, created_at`

// GetKPIs retrieves KPIs matching the filter, ordered by company, name and date.
// The name filter is case-insensitive.
func (r *KPIRepository) GetKPIs(ctx context.Context, filter model.KPIFilter) ([]model.KPI, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.CompanyID != "" {
		conditions = append(conditions, "company_id = ?")
		args = append(args, filter.CompanyID)
	}
	if filter.Name != "" {
		conditions = append(conditions, "name = ? COLLATE NOCASE")
		args = append(args, filter.Name)
	}

	query := `SELECT ` + kpiColumns + ` FROM kpi`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY company_id, name, date ASC, rowid ASC"

	rows, err := r.getQuerier().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query kpi table: %w", err)
	}
	defer rows.Close()

	kpis := []model.KPI{}
	for rows.Next() {
		k, err := scanKPI(rows)
		if err != nil {
			return nil, err
		}
		kpis = append(kpis, k)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating kpi table: %w", err)
	}

	return kpis, nil
}

// GetKPI retrieves a single KPI by ID.
// Returns apperrors.ErrKPINotFound if no KPI matches.
func (r *KPIRepository) GetKPI(ctx context.Context, id string) (model.KPI, error) {
	row := r.getQuerier().QueryRowContext(ctx, `SELECT `+kpiColumns+` FROM kpi WHERE id = ?`, id)
	k, err := scanKPI(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.KPI{}, apperrors.ErrKPINotFound
	}
	return k, err
}

// InsertKPI stores a new KPI value.
func (r *KPIRepository) InsertKPI(ctx context.Context, k *model.KPI) error {
	query := `INSERT INTO kpi (` + kpiColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.getQuerier().ExecContext(ctx, query,
		k.ID,
		k.CompanyID,
		k.Name,
		k.Value,
		formatDate(k.Date),
		k.Units,
		k.Notes,
		formatTimestamp(k.CreatedAt),
	)
	if isForeignKeyViolation(err) {
		return apperrors.ErrCompanyNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to insert kpi: %w", err)
	}

	return nil
}

// UpdateKPI overwrites all mutable fields of an existing KPI.
func (r *KPIRepository) UpdateKPI(ctx context.Context, k *model.KPI) error {
	query := `
		UPDATE kpi
		SET company_id = ?, name = ?, value = ?, date = ?, units = ?, notes = ?
		WHERE id = ?
	`

	result, err := r.getQuerier().ExecContext(ctx, query,
		k.CompanyID,
		k.Name,
		k.Value,
		formatDate(k.Date),
		k.Units,
		k.Notes,
		k.ID,
	)
	if isForeignKeyViolation(err) {
		return apperrors.ErrCompanyNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update kpi: %w", err)
	}

	return checkAffected(result, apperrors.ErrKPINotFound)
}

// DeleteKPI removes a KPI value.
func (r *KPIRepository) DeleteKPI(ctx context.Context, id string) error {
	result, err := r.getQuerier().ExecContext(ctx, `DELETE FROM kpi WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete kpi: %w", err)
	}

	return checkAffected(result, apperrors.ErrKPINotFound)
}

func scanKPI(s scanner) (model.KPI, error) {
	var (
		k                     model.KPI
		dateStr, createdAtStr string
	)

	err := s.Scan(&k.ID, &k.CompanyID, &k.Name, &k.Value, &dateStr, &k.Units, &k.Notes, &createdAtStr)
	if errors.Is(err, sql.ErrNoRows) {
		return model.KPI{}, err
	}
	if err != nil {
		return model.KPI{}, fmt.Errorf("failed to scan kpi table results: %w", err)
	}

	k.Date, err = ParseTime(dateStr)
	if err != nil {
		return model.KPI{}, fmt.Errorf("failed to parse date: %w", err)
	}
	k.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.KPI{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return k, nil
}
