package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yang-ventures/portfolio-backend/internal/api/request"
	"github.com/yang-ventures/portfolio-backend/internal/model"
	"github.com/yang-ventures/portfolio-backend/internal/repository"
	"github.com/yang-ventures/portfolio-backend/internal/validation"
)

// EventService handles company event business logic: exits, dividends and valuation updates.
type EventService struct {
	eventRepo   *repository.EventRepository
	companyRepo *repository.CompanyRepository
	catalog     *validation.Catalog
}

// NewEventService creates a new EventService.
func NewEventService(
	eventRepo *repository.EventRepository,
	companyRepo *repository.CompanyRepository,
	catalog *validation.Catalog,
) *EventService {
	return &EventService{
		eventRepo:   eventRepo,
		companyRepo: companyRepo,
		catalog:     catalog,
	}
}

// GetEvents retrieves events newest first, optionally for one company.
func (s *EventService) GetEvents(ctx context.Context, filter model.EventFilter) ([]model.Event, error) {
	return s.eventRepo.GetEvents(ctx, filter)
}

// GetEvent retrieves a single event.
func (s *EventService) GetEvent(ctx context.Context, id string) (model.Event, error) {
	return s.eventRepo.GetEvent(ctx, id)
}

// CreateEvent validates and stores a new event. Currency defaults to USD.
func (s *EventService) CreateEvent(ctx context.Context, req request.CreateEventRequest) (*model.Event, error) {
	if err := s.catalog.ValidateCreateEvent(req); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.GetCompany(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}

	date, _ := validation.ParseDate(req.Date)
	ev := &model.Event{
		ID:                 uuid.New().String(),
		CompanyID:          company.ID,
		CompanyName:        company.Name,
		Date:               date,
		Type:               model.EventKind(req.Type),
		CashFlowAmount:     req.CashFlowAmount,
		Currency:           req.Currency,
		PercentHoldingSold: req.PercentHoldingSold,
		HoldingValuation:   req.HoldingValuation,
		Notes:              strings.TrimSpace(req.Notes),
		CreatedAt:          time.Now().UTC(),
	}
	validation.ApplyEventDefaults(ev)

	if err := s.eventRepo.InsertEvent(ctx, ev); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return ev, nil
}

// UpdateEvent applies a partial update to an existing event.
//
// When the request changes the type, the three amounts are replaced as a group so that
// amounts belonging to the old type do not linger. The merged event is validated as a whole.
func (s *EventService) UpdateEvent(ctx context.Context, id string, req request.UpdateEventRequest) (*model.Event, error) {
	ev, err := s.eventRepo.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	fieldErrors := make(map[string]string)

	if req.CompanyID != nil && *req.CompanyID != ev.CompanyID {
		if err := validation.ValidateUUID(*req.CompanyID); err != nil {
			return nil, &validation.Error{Fields: map[string]string{"companyId": "companyId must be a valid UUID"}}
		}
		company, err := s.companyRepo.GetCompany(ctx, *req.CompanyID)
		if err != nil {
			return nil, err
		}
		ev.CompanyID = company.ID
		ev.CompanyName = company.Name
	}
	if req.Date != nil {
		d, err := validation.ParseDate(*req.Date)
		if err != nil {
			fieldErrors["date"] = "date must be in YYYY-MM-DD format"
		}
		ev.Date = d
	}
	if req.Type != nil {
		ev.Type = model.EventKind(*req.Type)
		ev.CashFlowAmount = req.CashFlowAmount
		ev.PercentHoldingSold = req.PercentHoldingSold
		ev.HoldingValuation = req.HoldingValuation
	} else {
		if req.CashFlowAmount != nil {
			ev.CashFlowAmount = req.CashFlowAmount
		}
		if req.PercentHoldingSold != nil {
			ev.PercentHoldingSold = req.PercentHoldingSold
		}
		if req.HoldingValuation != nil {
			ev.HoldingValuation = req.HoldingValuation
		}
	}
	if req.Currency != nil {
		ev.Currency = *req.Currency
	}
	if req.Notes != nil {
		ev.Notes = strings.TrimSpace(*req.Notes)
	}
	validation.ApplyEventDefaults(&ev)

	if len(fieldErrors) > 0 {
		return nil, &validation.Error{Fields: fieldErrors}
	}
	if err := s.catalog.ValidateEvent(&ev); err != nil {
		return nil, err
	}

	if err := s.eventRepo.UpdateEvent(ctx, &ev); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return &ev, nil
}

// DeleteEvent removes an event.
func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	if err := s.eventRepo.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
