package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yang-ventures/portfolio-backend/internal/api/handlers"
	"github.com/yang-ventures/portfolio-backend/internal/model"
	"github.com/yang-ventures/portfolio-backend/internal/testutil"
)

func TestDashboardHandler_Summary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewDashboardHandler(testutil.NewTestDashboardService(t, db), "USD")

	company := testutil.CreateCompany(t, db, "Umbra Games")
	testutil.NewInvestment(company.ID).WithAmount(1234567.891).Build(t, db)
	testutil.NewEvent(company.ID).ValuationUpdate(2000000).Build(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
	w := httptest.NewRecorder()

	handler.Summary(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp handlers.DashboardSummaryResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.ActiveCompanies != 1 || resp.CurrentValue != 2000000 {
		t.Errorf("Unexpected summary: %+v", resp.DashboardSummary)
	}
	if resp.Display.TotalInvested != "$1,234,567.89" {
		t.Errorf("Expected $1,234,567.89, got %q", resp.Display.TotalInvested)
	}
	if resp.Display.CurrentValue != "$2,000,000.00" {
		t.Errorf("Expected $2,000,000.00, got %q", resp.Display.CurrentValue)
	}
}

func TestDashboardHandler_Recent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewDashboardHandler(testutil.NewTestDashboardService(t, db), "USD")

	company := testutil.CreateCompany(t, db, "Vesper Audio")
	for i := 0; i < 7; i++ {
		testutil.NewInvestment(company.ID).Build(t, db)
	}

	t.Run("defaults to five", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/recent", nil)
		w := httptest.NewRecorder()

		handler.Recent(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		var activity model.RecentActivity
		if err := json.NewDecoder(w.Body).Decode(&activity); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(activity.Investments) != 5 {
			t.Errorf("Expected 5 investments, got %d", len(activity.Investments))
		}
		if activity.Investments[0].CompanyName != "Vesper Audio" {
			t.Errorf("Expected company name to be joined, got %q", activity.Investments[0].CompanyName)
		}
	})

	t.Run("limit out of range returns 400", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/dashboard/recent", map[string]string{"limit": "51"})
		w := httptest.NewRecorder()

		handler.Recent(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}
