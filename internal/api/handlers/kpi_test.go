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

func TestKPIHandler_Summary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewKPIHandler(testutil.NewTestKPIService(t, db))

	company := testutil.CreateCompany(t, db, "Radiant Pay")
	testutil.NewKPI(company.ID).WithValue(200, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)).Build(t, db)
	testutil.NewKPI(company.ID).WithValue(300, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)).Build(t, db)

	t.Run("returns summary", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/kpi/summary",
			map[string]string{"companyId": company.ID, "name": "ARR"})
		w := httptest.NewRecorder()

		handler.Summary(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		var summary model.KPISummary
		if err := json.NewDecoder(w.Body).Decode(&summary); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if summary.Count != 2 || summary.LatestValue != 300 {
			t.Errorf("Unexpected summary: %+v", summary)
		}
		if summary.Change == nil || *summary.Change != 0.5 {
			t.Errorf("Expected change 0.5, got %v", summary.Change)
		}
	})

	t.Run("missing parameters return 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/kpi/summary", nil)
		w := httptest.NewRecorder()

		handler.Summary(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("unknown series returns 404", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/kpi/summary",
			map[string]string{"companyId": company.ID, "name": "Churn"})
		w := httptest.NewRecorder()

		handler.Summary(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

func TestKPIHandler_CreateKPI(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewKPIHandler(testutil.NewTestKPIService(t, db))
	company := testutil.CreateCompany(t, db, "Summit Cloud")

	req := testutil.NewJSONRequest(http.MethodPost, "/api/kpi",
		`{"companyId":"`+company.ID+`","name":"Headcount","value":25,"date":"2024-06-30"}`, nil)
	w := httptest.NewRecorder()

	handler.CreateKPI(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	testutil.AssertRowCount(t, db, "kpi", 1)

	req = testutil.NewJSONRequest(http.MethodPost, "/api/kpi",
		`{"companyId":"`+company.ID+`","name":"Headcount","value":25,"date":"2999-01-01"}`, nil)
	w = httptest.NewRecorder()

	handler.CreateKPI(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for a future date, got %d", w.Code)
	}
}
