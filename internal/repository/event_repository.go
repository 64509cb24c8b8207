package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/yang-ventures/portfolio-backend/internal/apperrors"
	"github.com/yang-ventures/portfolio-backend/internal/model"
)

// EventRepository provides data access methods for the event table.
type EventRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewEventRepository creates a new EventRepository with the provided database connection.
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// WithTx returns a new EventRepository scoped to the provided transaction.
func (r *EventRepository) WithTx(tx *sql.Tx) *EventRepository {
	return &EventRepository{
		db: r.db,
		tx: tx,
	}
}

func (r *EventRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const eventSelect = `
	SELECT e.id, e.company_id, c.name, e.date, e.type, e.cash_flow_amount, e.currency,
	       e.percent_holding_sold, e.holding_valuation, e.notes, e.created_at
	FROM event e
	INNER JOIN company c ON c.id = e.company_id
`

// GetEvents retrieves events, newest first, optionally for a single company.
func (r *EventRepository) GetEvents(ctx context.Context, filter model.EventFilter) ([]model.Event, error) {
	query := eventSelect
	var args []any
	if filter.CompanyID != "" {
		query += " WHERE e.company_id = ?"
		args = append(args, filter.CompanyID)
	}
	query += " ORDER BY e.date DESC, e.rowid DESC"

	return r.queryEvents(ctx, query, args...)
}

// GetRecentEvents returns the latest limit events by date.
func (r *EventRepository) GetRecentEvents(ctx context.Context, limit int) ([]model.Event, error) {
	return r.queryEvents(ctx, eventSelect+" ORDER BY e.date DESC, e.rowid DESC LIMIT ?", limit)
}

// GetEvent retrieves a single event by ID.
// Returns apperrors.ErrEventNotFound if no event matches.
func (r *EventRepository) GetEvent(ctx context.Context, id string) (model.Event, error) {
	row := r.getQuerier().QueryRowContext(ctx, eventSelect+" WHERE e.id = ?", id)
	ev, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Event{}, apperrors.ErrEventNotFound
	}
	return ev, err
}

func (r *EventRepository) queryEvents(ctx context.Context, query string, args ...any) ([]model.Event, error) {
	rows, err := r.getQuerier().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query event table: %w", err)
	}
	defer rows.Close()

	events := []model.Event{}
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event table: %w", err)
	}

	return events, nil
}

// InsertEvent stores a new event.
// Returns apperrors.ErrCompanyNotFound when the referenced company does not exist.
func (r *EventRepository) InsertEvent(ctx context.Context, ev *model.Event) error {
	query := `
		INSERT INTO event (id, company_id, date, type, cash_flow_amount, currency,
		                   percent_holding_sold, holding_valuation, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.getQuerier().ExecContext(ctx, query,
		ev.ID,
		ev.CompanyID,
		formatDate(ev.Date),
		string(ev.Type),
		nullFloat(ev.CashFlowAmount),
		ev.Currency,
		nullFloat(ev.PercentHoldingSold),
		nullFloat(ev.HoldingValuation),
		ev.Notes,
		formatTimestamp(ev.CreatedAt),
	)
	if isForeignKeyViolation(err) {
		return apperrors.ErrCompanyNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	return nil
}

// UpdateEvent overwrites all mutable fields of an existing event.
func (r *EventRepository) UpdateEvent(ctx context.Context, ev *model.Event) error {
	query := `
		UPDATE event
		SET company_id = ?, date = ?, type = ?, cash_flow_amount = ?, currency = ?,
		    percent_holding_sold = ?, holding_valuation = ?, notes = ?
		WHERE id = ?
	`

	result, err := r.getQuerier().ExecContext(ctx, query,
		ev.CompanyID,
		formatDate(ev.Date),
		string(ev.Type),
		nullFloat(ev.CashFlowAmount),
		ev.Currency,
		nullFloat(ev.PercentHoldingSold),
		nullFloat(ev.HoldingValuation),
		ev.Notes,
		ev.ID,
	)
	if isForeignKeyViolation(err) {
		return apperrors.ErrCompanyNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	return checkAffected(result, apperrors.ErrEventNotFound)
}

// DeleteEvent removes an event.
func (r *EventRepository) DeleteEvent(ctx context.Context, id string) error {
	result, err := r.getQuerier().ExecContext(ctx, `DELETE FROM event WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return checkAffected(result, apperrors.ErrEventNotFound)
}

// CurrentValue sums, over active companies, the most recent non-null holding valuation.
// Events on the same date are ordered by insertion, the latest one winning.
func (r *EventRepository) CurrentValue(ctx context.Context) (float64, error) {
	query := `
		WITH ranked AS (
			SELECT e.holding_valuation,
			       ROW_NUMBER() OVER (PARTITION BY e.company_id ORDER BY e.date DESC, e.rowid DESC) AS rn
			FROM event e
			INNER JOIN company c ON c.id = e.company_id
			WHERE c.status = ? AND e.holding_valuation IS NOT NULL
		)
		SELECT COALESCE(SUM(holding_valuation), 0) FROM ranked WHERE rn = 1
	`

	var total float64
	if err := r.getQuerier().QueryRowContext(ctx, query, model.CompanyStatusActive).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum latest holding valuations: %w", err)
	}
	return total, nil
}

func scanEvent(s scanner) (model.Event, error) {
	var (
		ev                          model.Event
		dateStr, createdAtStr, kind string
		cash, sold, valuation       sql.NullFloat64
	)

	err := s.Scan(
		&ev.ID,
		&ev.CompanyID,
		&ev.CompanyName,
		&dateStr,
		&kind,
		&cash,
		&ev.Currency,
		&sold,
		&valuation,
		&ev.Notes,
		&createdAtStr,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Event{}, err
	}
	if err != nil {
		return model.Event{}, fmt.Errorf("failed to scan event table results: %w", err)
	}

	ev.Type = model.EventKind(kind)
	ev.CashFlowAmount = floatPtr(cash)
	ev.PercentHoldingSold = floatPtr(sold)
	ev.HoldingValuation = floatPtr(valuation)

	ev.Date, err = ParseTime(dateStr)
	if err != nil {
		return model.Event{}, fmt.Errorf("failed to parse date: %w", err)
	}
	ev.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Event{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return ev, nil
}
