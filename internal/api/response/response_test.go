package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yang-ventures/portfolio-backend/internal/api/response"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name    string
		details interface{}
		want    string
	}{
		{"string details", "boom", `{"error":"failed","details":"boom"}`},
		{"empty details omitted", "", `{"error":"failed"}`},
		{"field map", map[string]string{"name": "name is required"}, `{"error":"failed","details":{"name":"name is required"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			response.RespondError(w, http.StatusBadRequest, "failed", tt.details)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}
}

func TestRespondNoContent(t *testing.T) {
	w := httptest.NewRecorder()
	response.RespondNoContent(w)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, w.Body.Len())
}
