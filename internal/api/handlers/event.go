package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yang-ventures/portfolio-backend/internal/api/request"
	"github.com/yang-ventures/portfolio-backend/internal/api/response"
	"github.com/yang-ventures/portfolio-backend/internal/apperrors"
	"github.com/yang-ventures/portfolio-backend/internal/model"
	"github.com/yang-ventures/portfolio-backend/internal/service"
	"github.com/yang-ventures/portfolio-backend/internal/validation"
)

// EventHandler handles HTTP requests for company event endpoints.
type EventHandler struct {
	eventService *service.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// Events handles GET requests to list events, newest first.
//
// Endpoint: GET /api/event
// Query Parameters: companyId (optional UUID)
func (h *EventHandler) Events(w http.ResponseWriter, r *http.Request) {
	companyID := r.URL.Query().Get("companyId")
	if companyID != "" {
		if err := validation.ValidateUUID(companyID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid filter parameters", err.Error())
			return
		}
	}

	events, err := h.eventService.GetEvents(r.Context(), model.EventFilter{CompanyID: companyID})
	if err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToRetrieveEvents, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, events)
}

// GetEvent handles GET requests for a single event.
//
// Endpoint: GET /api/event/{uuid}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	ev, err := h.eventService.GetEvent(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToRetrieveEvent, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, ev)
}

// CreateEvent handles POST requests to record an exit, dividend or valuation update.
// Which amounts are required depends on the event type.
//
// Endpoint: POST /api/event
// Request Body: CreateEventRequest
// Response: 201 Created with Event
// Error: 400 Bad Request if validation fails
// Error: 404 Not Found if the company does not exist
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateEventRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	ev, err := h.eventService.CreateEvent(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToCreateEvent, err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, ev)
}

// UpdateEvent handles PUT requests to update an event.
// Sending a type replaces all three amounts; omitted amounts are cleared.
//
// Endpoint: PUT /api/event/{uuid}
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateEventRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	ev, err := h.eventService.UpdateEvent(r.Context(), chi.URLParam(r, "uuid"), req)
	if err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToUpdateEvent, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, ev)
}

// DeleteEvent handles DELETE requests.
//
// Endpoint: DELETE /api/event/{uuid}
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.eventService.DeleteEvent(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		writeServiceError(w, r, apperrors.ErrFailedToDeleteEvent, err)
		return
	}

	response.RespondNoContent(w)
}
