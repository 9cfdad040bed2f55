package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-entry-keeper/internal/app"
	"github.com/MKhiriev/go-entry-keeper/internal/pagination"
	"github.com/MKhiriev/go-entry-keeper/internal/service"
	"github.com/MKhiriev/go-entry-keeper/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first matching target wins.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{pagination.ErrMalformedCursor, errorResponse{http.StatusBadRequest, app.MsgMalformedCursor}},
	{service.ErrValidation, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},

	{store.ErrEntryNotFound, errorResponse{http.StatusNotFound, app.MsgEntryNotFound}},
	{store.ErrEntryAlreadyExists, errorResponse{http.StatusConflict, app.MsgEntryAlreadyExists}},

	{store.ErrEntryNotSaved, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrBuildingSQLQuery, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrExecutingQuery, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrExecutingStatement, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrScanningRow, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrScanningRows, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
}

func responseFromError(err error) errorResponse {
	for _, candidate := range errorResponses {
		if errors.Is(err, candidate.target) {
			return candidate.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}
