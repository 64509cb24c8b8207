package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yang-ventures/portfolio-backend/internal/api/handlers"
	"github.com/yang-ventures/portfolio-backend/internal/model"
	"github.com/yang-ventures/portfolio-backend/internal/testutil"
)

func TestEventHandler_CreateEvent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewEventHandler(testutil.NewTestEventService(t, db))
	company := testutil.CreateCompany(t, db, "Orchid Semis")

	t.Run("valuation update", func(t *testing.T) {
		body := fmt.Sprintf(`{"companyId":%q,"date":"2024-12-31","type":"Valuation Update","holdingValuation":750000}`, company.ID)
		req := testutil.NewJSONRequest(http.MethodPost, "/api/event", body, nil)
		w := httptest.NewRecorder()

		handler.CreateEvent(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}
		var ev model.Event
		if err := json.NewDecoder(w.Body).Decode(&ev); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if ev.Type != model.EventValuationUpdate || ev.Currency != "USD" {
			t.Errorf("Unexpected event: %+v", ev)
		}
	})

	// WHY: A valuation update carrying cash would be counted as realized proceeds by the
	// returns calculation; the API must refuse it.
	t.Run("cash on valuation update returns 400", func(t *testing.T) {
		body := fmt.Sprintf(`{"companyId":%q,"date":"2024-12-31","type":"Valuation Update","holdingValuation":1,"cashFlowAmount":5}`, company.ID)
		req := testutil.NewJSONRequest(http.MethodPost, "/api/event", body, nil)
		w := httptest.NewRecorder()

		handler.CreateEvent(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown company returns 404", func(t *testing.T) {
		body := fmt.Sprintf(`{"companyId":%q,"date":"2024-12-31","type":"Dividend","cashFlowAmount":5}`, testutil.MakeID())
		req := testutil.NewJSONRequest(http.MethodPost, "/api/event", body, nil)
		w := httptest.NewRecorder()

		handler.CreateEvent(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestEventHandler_Events(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewEventHandler(testutil.NewTestEventService(t, db))
	company := testutil.CreateCompany(t, db, "Pioneer Agri")
	other := testutil.CreateCompany(t, db, "Quasar Media")
	testutil.NewEvent(company.ID).Build(t, db)
	testutil.NewEvent(other.ID).Build(t, db)

	req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/event", map[string]string{"companyId": company.ID})
	w := httptest.NewRecorder()

	handler.Events(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var events []model.Event
	if err := json.NewDecoder(w.Body).Decode(&events); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(events) != 1 || events[0].CompanyID != company.ID {
		t.Errorf("Expected one event for %s, got %+v", company.ID, events)
	}

	req = testutil.NewRequestWithQueryParams(http.MethodGet, "/api/event", map[string]string{"companyId": "nope"})
	w = httptest.NewRecorder()

	handler.Events(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for invalid companyId, got %d", w.Code)
	}
}
