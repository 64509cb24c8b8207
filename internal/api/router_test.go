package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yang-ventures/portfolio-backend/internal/api"
	"github.com/yang-ventures/portfolio-backend/internal/config"
	"github.com/yang-ventures/portfolio-backend/internal/logger"
	"github.com/yang-ventures/portfolio-backend/internal/model"
	"github.com/yang-ventures/portfolio-backend/internal/service"
	"github.com/yang-ventures/portfolio-backend/internal/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	db := testutil.SetupTestDB(t)
	cfg := config.Default()
	return api.NewRouter(service.NewServices(db, cfg, logger.Nop()), cfg, logger.Nop())
}

func TestRouter_CompanyLifecycle(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/company/",
		strings.NewReader(`{"name":"Aster Robotics","yearFounded":2019,"industries":["Industrials"],"country":"Japan"}`)))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created model.Company
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	assert.NotEmpty(t, created.ID)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/company/"+created.ID+"/", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/company/"+created.ID+"/", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/company/"+created.ID+"/", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_RejectsMalformedIDs(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/api/company/abc/", "/api/investment/abc/", "/api/event/abc/", "/api/kpi/abc/"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestRouter_Returns(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/returns/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var returns []json.RawMessage
	require.NoError(t, json.NewDecoder(w.Body).Decode(&returns))
	assert.Len(t, returns, 3)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/returns/fund/Yang%20Fund%209", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/portfolio", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
