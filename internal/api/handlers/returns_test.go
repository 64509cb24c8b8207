package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/yang-ventures/portfolio-backend/internal/api/handlers"
	"github.com/yang-ventures/portfolio-backend/internal/model"
	"github.com/yang-ventures/portfolio-backend/internal/testutil"
)

var today = time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

func setupReturns(t *testing.T) *handlers.ReturnsHandler {
	t.Helper()
	db := testutil.SetupTestDB(t)

	company := testutil.CreateCompany(t, db, "Tango Freight")
	testutil.NewInvestment(company.ID).
		WithDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).
		WithAmount(100000).
		Build(t, db)
	testutil.NewEvent(company.ID).
		ValuationUpdate(150000).
		WithDate(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)).
		Build(t, db)

	return handlers.NewReturnsHandler(
		testutil.NewTestReturnsService(t, db, today),
		testutil.NewTestSnapshotService(t, db, today),
		"USD",
	)
}

// TestReturnsHandler_Returns tests GET /api/returns.
//
// WHY: This is the main output of the application. The response must carry both the
// raw numbers for charts and the formatted strings shown in the table.
func TestReturnsHandler_Returns(t *testing.T) {
	handler := setupReturns(t)

	req := httptest.NewRequest(http.MethodGet, "/api/returns", nil)
	w := httptest.NewRecorder()

	handler.Returns(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp []handlers.FundReturnResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp) != 3 {
		t.Fatalf("Expected 3 funds, got %d", len(resp))
	}

	fund1 := resp[0]
	if fund1.Fund != "Yang Fund 1" {
		t.Errorf("Expected Yang Fund 1 first, got %s", fund1.Fund)
	}
	if fund1.TotalValue != 150000 {
		t.Errorf("Expected total value 150000, got %v", fund1.TotalValue)
	}

	want := map[string]string{
		"totalInvested": "$100,000.00",
		"totalValue":    "$150,000.00",
		"moic":          "1.50x",
		"irr":           "50.0%",
	}
	got := map[string]string{
		"totalInvested": fund1.Display.TotalInvested,
		"totalValue":    fund1.Display.TotalValue,
		"moic":          fund1.Display.MOIC,
		"irr":           fund1.Display.IRR,
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("Expected display %s %q, got %q", k, v, got[k])
		}
	}

	if resp[1].Display.IRR != "-" {
		t.Errorf("Expected missing IRR to display as '-', got %q", resp[1].Display.IRR)
	}
}

func TestReturnsHandler_FundReturn(t *testing.T) {
	handler := setupReturns(t)

	t.Run("configured fund", func(t *testing.T) {
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/returns/fund/Yang%20Fund%201",
			map[string]string{"fund": "Yang%20Fund%201"})
		w := httptest.NewRecorder()

		handler.FundReturn(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp handlers.FundReturnResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Fund != "Yang Fund 1" || resp.CompanyCount != 1 {
			t.Errorf("Unexpected fund return: %+v", resp.FundReturn)
		}
	})

	t.Run("unknown fund returns 404", func(t *testing.T) {
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/returns/fund/Other",
			map[string]string{"fund": "Other"})
		w := httptest.NewRecorder()

		handler.FundReturn(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

func TestReturnsHandler_SnapshotAndHistory(t *testing.T) {
	handler := setupReturns(t)

	t.Run("snapshot for a past date", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams(http.MethodPost, "/api/returns/snapshot",
			map[string]string{"date": "2024-12-31"})
		w := httptest.NewRecorder()

		handler.Snapshot(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}
		var snapshots []model.FundReturnSnapshot
		if err := json.NewDecoder(w.Body).Decode(&snapshots); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(snapshots) != 3 {
			t.Errorf("Expected 3 snapshots, got %d", len(snapshots))
		}
	})

	t.Run("snapshot in the future returns 400", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams(http.MethodPost, "/api/returns/snapshot",
			map[string]string{"date": "2999-01-01"})
		w := httptest.NewRecorder()

		handler.Snapshot(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("history for one fund", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/returns/history", map[string]string{
			"fund":       "Yang Fund 1",
			"start_date": "2024-01-01",
			"end_date":   "2024-12-31",
		})
		w := httptest.NewRecorder()

		handler.History(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		var history []model.FundReturnHistory
		if err := json.NewDecoder(w.Body).Decode(&history); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(history) != 1 || len(history[0].Funds) != 1 {
			t.Fatalf("Expected one date with one fund, got %+v", history)
		}
		if history[0].Funds[0].TotalValue != 150000 {
			t.Errorf("Expected total value 150000, got %v", history[0].Funds[0].TotalValue)
		}
	})

	t.Run("inverted range returns 400", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/returns/history", map[string]string{
			"start_date": "2024-12-31",
			"end_date":   "2024-01-01",
		})
		w := httptest.NewRecorder()

		handler.History(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}
