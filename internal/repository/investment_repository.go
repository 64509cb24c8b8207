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

// InvestmentRepository provides data access methods for the investment table.
type InvestmentRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewInvestmentRepository creates a new InvestmentRepository with the provided database connection.
func NewInvestmentRepository(db *sql.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

// WithTx returns a new InvestmentRepository scoped to the provided transaction.
func (r *InvestmentRepository) WithTx(tx *sql.Tx) *InvestmentRepository {
	return &InvestmentRepository{
		db: r.db,
		tx: tx,
	}
}

func (r *InvestmentRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const investmentSelect = `
	SELECT i.id, i.fund_name, i.company_id, c.name, i.investment_type, i.round_number,
	       i.round_stage, i.date, i.amount, i.total_round_size, i.post_money_valuation, i.created_at
	FROM investment i
	INNER JOIN company c ON c.id = i.company_id
`

// GetInvestments retrieves investments matching the filter, newest first.
// Returns an empty slice if none are found.
func (r *InvestmentRepository) GetInvestments(ctx context.Context, filter model.InvestmentFilter) ([]model.Investment, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.Fund != "" {
		conditions = append(conditions, "i.fund_name = ?")
		args = append(args, filter.Fund)
	}
	if filter.CompanyID != "" {
		conditions = append(conditions, "i.company_id = ?")
		args = append(args, filter.CompanyID)
	}

	query := investmentSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY i.date DESC, i.rowid DESC"

	return r.queryInvestments(ctx, query, args...)
}

// GetRecentInvestments returns the latest limit investments by date.
func (r *InvestmentRepository) GetRecentInvestments(ctx context.Context, limit int) ([]model.Investment, error) {
	return r.queryInvestments(ctx, investmentSelect+" ORDER BY i.date DESC, i.rowid DESC LIMIT ?", limit)
}

// GetInvestment retrieves a single investment by ID.
// Returns apperrors.ErrInvestmentNotFound if no investment matches.
func (r *InvestmentRepository) GetInvestment(ctx context.Context, id string) (model.Investment, error) {
	row := r.getQuerier().QueryRowContext(ctx, investmentSelect+" WHERE i.id = ?", id)
	inv, err := scanInvestment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Investment{}, apperrors.ErrInvestmentNotFound
	}
	return inv, err
}

func (r *InvestmentRepository) queryInvestments(ctx context.Context, query string, args ...any) ([]model.Investment, error) {
	rows, err := r.getQuerier().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query investment table: %w", err)
	}
	defer rows.Close()

	investments := []model.Investment{}
	for rows.Next() {
		inv, err := scanInvestment(rows)
		if err != nil {
			return nil, err
		}
		investments = append(investments, inv)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating investment table: %w", err)
	}

	return investments, nil
}

// InsertInvestment stores a new investment.
// Returns apperrors.ErrCompanyNotFound when the referenced company does not exist.
func (r *InvestmentRepository) InsertInvestment(ctx context.Context, inv *model.Investment) error {
	query := `
		INSERT INTO investment (id, fund_name, company_id, investment_type, round_number, round_stage,
		                        date, amount, total_round_size, post_money_valuation, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.getQuerier().ExecContext(ctx, query,
		inv.ID,
		inv.Fund,
		inv.CompanyID,
		inv.Type,
		inv.RoundNumber,
		inv.RoundStage,
		formatDate(inv.Date),
		inv.Amount,
		nullFloat(inv.TotalRoundSize),
		nullFloat(inv.PostMoneyValuation),
		formatTimestamp(inv.CreatedAt),
	)
	if isForeignKeyViolation(err) {
		return apperrors.ErrCompanyNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to insert investment: %w", err)
	}

	return nil
}

// UpdateInvestment overwrites all mutable fields of an existing investment.
func (r *InvestmentRepository) UpdateInvestment(ctx context.Context, inv *model.Investment) error {
	query := `
		UPDATE investment
		SET fund_name = ?, company_id = ?, investment_type = ?, round_number = ?, round_stage = ?,
		    date = ?, amount = ?, total_round_size = ?, post_money_valuation = ?
		WHERE id = ?
	`

	result, err := r.getQuerier().ExecContext(ctx, query,
		inv.Fund,
		inv.CompanyID,
		inv.Type,
		inv.RoundNumber,
		inv.RoundStage,
		formatDate(inv.Date),
		inv.Amount,
		nullFloat(inv.TotalRoundSize),
		nullFloat(inv.PostMoneyValuation),
		inv.ID,
	)
	if isForeignKeyViolation(err) {
		return apperrors.ErrCompanyNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update investment: %w", err)
	}

	return checkAffected(result, apperrors.ErrInvestmentNotFound)
}

// DeleteInvestment removes an investment.
func (r *InvestmentRepository) DeleteInvestment(ctx context.Context, id string) error {
	result, err := r.getQuerier().ExecContext(ctx, `DELETE FROM investment WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete investment: %w", err)
	}

	return checkAffected(result, apperrors.ErrInvestmentNotFound)
}

// TotalInvested sums every investment amount across all funds.
func (r *InvestmentRepository) TotalInvested(ctx context.Context) (float64, error) {
	var total float64
	err := r.getQuerier().QueryRowContext(ctx, `SELECT COALESCE(SUM(amount), 0) FROM investment`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum investment amounts: %w", err)
	}
	return total, nil
}

func scanInvestment(s scanner) (model.Investment, error) {
	var (
		inv                   model.Investment
		dateStr, createdAtStr string
		roundSize, postMoney  sql.NullFloat64
	)

	err := s.Scan(
		&inv.ID,
		&inv.Fund,
		&inv.CompanyID,
		&inv.CompanyName,
		&inv.Type,
		&inv.RoundNumber,
		&inv.RoundStage,
		&dateStr,
		&inv.Amount,
		&roundSize,
		&postMoney,
		&createdAtStr,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Investment{}, err
	}
	if err != nil {
		return model.Investment{}, fmt.Errorf("failed to scan investment table results: %w", err)
	}

	inv.TotalRoundSize = floatPtr(roundSize)
	inv.PostMoneyValuation = floatPtr(postMoney)

	inv.Date, err = ParseTime(dateStr)
	if err != nil {
		return model.Investment{}, fmt.Errorf("failed to parse date: %w", err)
	}
	inv.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Investment{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return inv, nil
}
