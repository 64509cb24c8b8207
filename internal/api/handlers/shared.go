package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/yang-ventures/portfolio-backend/internal/api/response"
	"github.com/yang-ventures/portfolio-backend/internal/apperrors"
	"github.com/yang-ventures/portfolio-backend/internal/logger"
	"github.com/yang-ventures/portfolio-backend/internal/validation"
)

// maxBodyBytes caps JSON and CSV request bodies.
const maxBodyBytes = 10 << 20

// parseJSON decodes the request body into T. Unknown fields are rejected so that typos in
// optional fields do not silently become "unchanged".
func parseJSON[T any](r *http.Request) (T, error) {
	var req T
	if r.Body == nil {
		return req, errors.New("request body is empty")
	}

	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, fmt.Errorf("failed to decode JSON: %w", err)
	}
	return req, nil
}

var notFoundErrors = []error{
	apperrors.ErrCompanyNotFound,
	apperrors.ErrFundNotFound,
	apperrors.ErrInvestmentNotFound,
	apperrors.ErrEventNotFound,
	apperrors.ErrKPINotFound,
	apperrors.ErrKPISeriesNotFound,
}

var badRequestErrors = []error{
	apperrors.ErrInvalidDateRange,
	apperrors.ErrInvalidUUID,
	apperrors.ErrInvalidCSVHeaders,
	apperrors.ErrEmptyImport,
}

// writeServiceError translates an error returned by a service into an HTTP error response.
// op names the failed operation and is used as the message of unexpected errors.
//
//   - *validation.Error: 400 with the field errors as details
//   - not found sentinels: 404
//   - apperrors.ErrDuplicateEntry: 409
//   - bad input sentinels: 400
//   - anything else: 500, logged
func writeServiceError(w http.ResponseWriter, r *http.Request, op error, err error) {
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		response.RespondError(w, http.StatusBadRequest, "validation failed", vErr.Fields)
		return
	}

	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			response.RespondError(w, http.StatusNotFound, target.Error(), err.Error())
			return
		}
	}

	if errors.Is(err, apperrors.ErrDuplicateEntry) {
		response.RespondError(w, http.StatusConflict, apperrors.ErrDuplicateEntry.Error(), err.Error())
		return
	}

	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			response.RespondError(w, http.StatusBadRequest, target.Error(), err.Error())
			return
		}
	}

	logger.FromContext(r.Context()).Errorw(op.Error(),
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	response.RespondError(w, http.StatusInternalServerError, op.Error(), err.Error())
}
