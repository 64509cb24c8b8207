package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yang-ventures/portfolio-backend/internal/api/handlers"
	"github.com/yang-ventures/portfolio-backend/internal/config"
	"github.com/yang-ventures/portfolio-backend/internal/model"
	"github.com/yang-ventures/portfolio-backend/internal/testutil"
)

func TestReferenceHandler_Reference(t *testing.T) {
	handler := handlers.NewReferenceHandler(testutil.TestFunds, config.Default().Reference)

	req := httptest.NewRequest(http.MethodGet, "/api/reference", nil)
	w := httptest.NewRecorder()

	handler.Reference(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp handlers.ReferenceResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Funds) != 3 {
		t.Errorf("Expected 3 funds, got %v", resp.Funds)
	}
	if len(resp.EventTypes) != 3 || resp.EventTypes[2] != model.EventValuationUpdate {
		t.Errorf("Unexpected event types: %v", resp.EventTypes)
	}
	if len(resp.CompanyStatuses) != 2 {
		t.Errorf("Unexpected statuses: %v", resp.CompanyStatuses)
	}
}
