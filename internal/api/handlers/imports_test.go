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

func TestImportHandler_Investments(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewImportHandler(testutil.NewTestImportService(t, db))
	testutil.CreateCompany(t, db, "Willow Bank")

	t.Run("imports rows", func(t *testing.T) {
		csv := "fund,company,type,round,stage,date,amount\n" +
			"Yang Fund 3,Willow Bank,Equity,1,Pre-Seed,2022-08-15,75000\n"
		req := testutil.NewCSVRequest("/api/import/investments", csv)
		w := httptest.NewRecorder()

		handler.Investments(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}
		var result model.ImportResult
		if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if result.Imported != 1 {
			t.Errorf("Expected 1 imported row, got %d", result.Imported)
		}
	})

	t.Run("missing headers return 400", func(t *testing.T) {
		req := testutil.NewCSVRequest("/api/import/investments", "fund,amount\nYang Fund 1,10\n")
		w := httptest.NewRecorder()

		handler.Investments(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("row errors return 400 keyed by row", func(t *testing.T) {
		csv := "fund,company,type,round,stage,date,amount\n" +
			"Yang Fund 1,Nobody,Equity,1,Seed,2022-08-15,75000\n"
		req := testutil.NewCSVRequest("/api/import/investments", csv)
		w := httptest.NewRecorder()

		handler.Investments(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected status 400, got %d", w.Code)
		}
		var resp struct {
			Details map[string]string `json:"details"`
		}
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Details["row 2 company"] != "unknown company: Nobody" {
			t.Errorf("Unexpected details: %v", resp.Details)
		}
	})
}

func TestImportHandler_Events(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewImportHandler(testutil.NewTestImportService(t, db))
	testutil.CreateCompany(t, db, "Xylem Water")

	csv := "company,date,type,cash_flow\nXylem Water,2024-04-30,Dividend,1200\n"
	req := testutil.NewCSVRequest("/api/import/events", csv)
	w := httptest.NewRecorder()

	handler.Events(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	testutil.AssertRowCount(t, db, "event", 1)
}
