package testutil

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
)

// withURLParams attaches a chi route context holding params, so handlers can call
// chi.URLParam without going through the router.
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	if len(params) == 0 {
		return req
	}
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// NewRequestWithURLParams creates a body-less request with chi URL parameters, e.g.
//
//	req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/company/"+id, map[string]string{"uuid": id})
func NewRequestWithURLParams(method, path string, params map[string]string) *http.Request {
	return withURLParams(httptest.NewRequest(method, path, nil), params)
}

// NewRequestWithQueryParams creates a body-less request with an encoded query string.
func NewRequestWithQueryParams(method, path string, queryParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)

	q := req.URL.Query()
	for key, value := range queryParams {
		q.Set(key, value)
	}
	req.URL.RawQuery = q.Encode()

	return req
}

// NewJSONRequest creates a request with a JSON body and optional chi URL parameters.
func NewJSONRequest(method, path, body string, params map[string]string) *http.Request {
	return newBodyRequest(method, path, "application/json", strings.NewReader(body), params)
}

// NewCSVRequest creates a POST request carrying a CSV file body.
func NewCSVRequest(path, body string) *http.Request {
	return newBodyRequest(http.MethodPost, path, "text/csv", strings.NewReader(body), nil)
}

func newBodyRequest(method, path, contentType string, body io.Reader, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", contentType)
	return withURLParams(req, params)
}
