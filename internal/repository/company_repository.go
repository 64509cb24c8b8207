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

// CompanyRepository provides data access methods for the company table.
type CompanyRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewCompanyRepository creates a new CompanyRepository with the provided database connection.
func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// WithTx returns a new CompanyRepository scoped to the provided transaction.
func (r *CompanyRepository) WithTx(tx *sql.Tx) *CompanyRepository {
	return &CompanyRepository{
		db: r.db,
		tx: tx,
	}
}

// getQuerier returns the active transaction if one is set, otherwise the database connection.
func (r *CompanyRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const companyColumns = `id, name, year_founded, industry_classification, establishment_country, status, created_at`

// GetCompanies retrieves companies ordered by name, optionally filtered by status.
// Returns an empty slice if no companies are found.
func (r *CompanyRepository) GetCompanies(ctx context.Context, filter model.CompanyFilter) ([]model.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM company`
	var args []any
	if filter.Status != "" {
		query += ` WHERE status = ?`
		args = append(args, filter.Status)
	}
	query += ` ORDER BY name COLLATE NOCASE ASC`

	rows, err := r.getQuerier().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query company table: %w", err)
	}
	defer rows.Close()

	companies := []model.Company{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company table: %w", err)
	}

	return companies, nil
}

// GetCompany retrieves a single company by ID.
// Returns apperrors.ErrCompanyNotFound if no company matches.
func (r *CompanyRepository) GetCompany(ctx context.Context, id string) (model.Company, error) {
	row := r.getQuerier().QueryRowContext(ctx, `SELECT `+companyColumns+` FROM company WHERE id = ?`, id)
	c, err := scanCompany(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Company{}, apperrors.ErrCompanyNotFound
	}
	return c, err
}

// GetCompanyByName retrieves a company by its case-insensitive name.
// Returns apperrors.ErrCompanyNotFound if no company matches.
func (r *CompanyRepository) GetCompanyByName(ctx context.Context, name string) (model.Company, error) {
	row := r.getQuerier().QueryRowContext(ctx,
		`SELECT `+companyColumns+` FROM company WHERE name = ? COLLATE NOCASE`, strings.TrimSpace(name))
	c, err := scanCompany(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Company{}, apperrors.ErrCompanyNotFound
	}
	return c, err
}

// InsertCompany stores a new company.
// Returns apperrors.ErrDuplicateEntry when the name is already taken.
func (r *CompanyRepository) InsertCompany(ctx context.Context, c *model.Company) error {
	query := `
		INSERT INTO company (` + companyColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.getQuerier().ExecContext(ctx, query,
		c.ID,
		c.Name,
		nullYear(c.YearFounded),
		joinIndustries(c.Industries),
		c.Country,
		c.Status,
		formatTimestamp(c.CreatedAt),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: company %q already exists", apperrors.ErrDuplicateEntry, c.Name)
	}
	if err != nil {
		return fmt.Errorf("failed to insert company: %w", err)
	}

	return nil
}

// UpdateCompany overwrites all mutable fields of an existing company.
func (r *CompanyRepository) UpdateCompany(ctx context.Context, c *model.Company) error {
	query := `
		UPDATE company
		SET name = ?, year_founded = ?, industry_classification = ?, establishment_country = ?, status = ?
		WHERE id = ?
	`

	result, err := r.getQuerier().ExecContext(ctx, query,
		c.Name,
		nullYear(c.YearFounded),
		joinIndustries(c.Industries),
		c.Country,
		c.Status,
		c.ID,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: company %q already exists", apperrors.ErrDuplicateEntry, c.Name)
	}
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}

	return checkAffected(result, apperrors.ErrCompanyNotFound)
}

// DeleteCompany removes a company. Investments, events and KPIs cascade.
func (r *CompanyRepository) DeleteCompany(ctx context.Context, id string) error {
	result, err := r.getQuerier().ExecContext(ctx, `DELETE FROM company WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	return checkAffected(result, apperrors.ErrCompanyNotFound)
}

// CountCompanies returns the total number of companies and the number of active ones.
func (r *CompanyRepository) CountCompanies(ctx context.Context) (total, active int, err error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0)
		FROM company
	`
	if err := r.getQuerier().QueryRowContext(ctx, query, model.CompanyStatusActive).Scan(&total, &active); err != nil {
		return 0, 0, fmt.Errorf("failed to count companies: %w", err)
	}
	return total, active, nil
}

func scanCompany(s scanner) (model.Company, error) {
	var (
		c            model.Company
		year         sql.NullInt64
		industries   string
		createdAtStr string
	)

	err := s.Scan(&c.ID, &c.Name, &year, &industries, &c.Country, &c.Status, &createdAtStr)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Company{}, err
	}
	if err != nil {
		return model.Company{}, fmt.Errorf("failed to scan company table results: %w", err)
	}

	if year.Valid {
		c.YearFounded = int(year.Int64)
	}
	c.Industries = splitIndustries(industries)
	c.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Company{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return c, nil
}

func nullYear(year int) sql.NullInt64 {
	if year == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(year), Valid: true}
}

// Industries are persisted as a comma separated list.
func joinIndustries(industries []string) string {
	return strings.Join(industries, ", ")
}

func splitIndustries(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
