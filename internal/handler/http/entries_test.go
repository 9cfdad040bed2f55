package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-entry-keeper/internal/app"
	"github.com/MKhiriev/go-entry-keeper/internal/logger"
	"github.com/MKhiriev/go-entry-keeper/internal/mock"
	"github.com/MKhiriev/go-entry-keeper/internal/service"
	"github.com/MKhiriev/go-entry-keeper/internal/store"
	"github.com/MKhiriev/go-entry-keeper/internal/validators"
	"github.com/MKhiriev/go-entry-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (http.Handler, *mock.MockEntryService) {
	t.Helper()
	entries := mock.NewMockEntryService(gomock.NewController(t))
	h := NewHandler(&service.Services{EntryService: entries}, logger.Nop())
	return h.Init(), entries
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeFailure(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var failure models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &failure))
	assert.False(t, failure.Success)
	return failure
}

func TestListEntries_FirstPage(t *testing.T) {
	router, entries := newTestRouter(t)

	page := models.EntriesPage{
		Entries:          []models.Entry{{ID: "b", UserID: "u1", LastModified: 20, Title: "t", Description: "d"}},
		LastEvaluatedKey: &models.Cursor{ID: "b", UserID: "u1", LastModified: 20},
	}
	entries.EXPECT().ListEntries(gomock.Any(), models.EntriesRequest{UserID: "u1"}).Return(page, nil)

	rec := serve(router, http.MethodGet, "/entries?user_id=u1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"entries":[{"id":"b","user_id":"u1","last_modified":20,"title":"t","description":"d"}],
		  "last_evaluated_key":{"id":"b","user_id":"u1","last_modified":20}}`,
		rec.Body.String())
}

func TestListEntries_WithCursorAndLimit(t *testing.T) {
	router, entries := newTestRouter(t)

	entries.EXPECT().
		ListEntries(gomock.Any(), models.EntriesRequest{UserID: "u1", After: &models.Cursor{ID: "b", LastModified: 20}, Limit: 5}).
		Return(models.EntriesPage{}, nil)

	rec := serve(router, http.MethodGet, "/entries?user_id=u1&id=b&last_modified=20&limit=5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"entries":[],"last_evaluated_key":null}`, rec.Body.String())
}

func TestListEntries_BadRequests(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		wantMessage string
	}{
		{name: "no user", target: "/entries", wantMessage: app.MsgNoUserIDProvided},
		{name: "id without last_modified", target: "/entries?user_id=u1&id=b", wantMessage: app.MsgMalformedCursor},
		{name: "non numeric last_modified", target: "/entries?user_id=u1&id=b&last_modified=x", wantMessage: app.MsgMalformedCursor},
		{name: "negative limit", target: "/entries?user_id=u1&limit=-1", wantMessage: app.MsgInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t)

			rec := serve(router, http.MethodGet, tt.target, "")

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeFailure(t, rec).Message)
		})
	}
}

func TestCreateEntry(t *testing.T) {
	router, entries := newTestRouter(t)

	req := models.CreateEntryRequest{UserID: "u1", Title: "A", Description: "B"}
	created := models.Entry{ID: "new", UserID: "u1", LastModified: 100, Title: "A", Description: "B"}
	entries.EXPECT().CreateEntry(gomock.Any(), req).Return(created, nil)

	rec := serve(router, http.MethodPost, "/entries", `{"user_id":"u1","title":"A","description":"B"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got models.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, created, got)
}

func TestCreateEntry_InvalidJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, http.MethodPost, "/entries", `{"user_id":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, decodeFailure(t, rec).Message)
}

func TestCreateEntry_ValidationError(t *testing.T) {
	router, entries := newTestRouter(t)

	entries.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).
		Return(models.Entry{}, fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrEmptyTitle))

	rec := serve(router, http.MethodPost, "/entries", `{"user_id":"u1","title":"","description":"B"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, decodeFailure(t, rec).Message)
}

func TestGetEntry_BothPaths(t *testing.T) {
	for _, target := range []string{"/entries/x", "/events/x"} {
		t.Run(target, func(t *testing.T) {
			router, entries := newTestRouter(t)
			entries.EXPECT().GetEntry(gomock.Any(), "x").Return(models.Entry{ID: "x", UserID: "u1"}, nil)

			rec := serve(router, http.MethodGet, target, "")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `"id":"x"`)
		})
	}
}

func TestUpdateEntry_Partial(t *testing.T) {
	router, entries := newTestRouter(t)

	title := "T"
	updated := models.Entry{ID: "x", UserID: "u1", LastModified: 200, Title: "T", Description: "old"}
	entries.EXPECT().UpdateEntry(gomock.Any(), "x", models.UpdateEntryRequest{Title: &title}).Return(updated, nil)

	rec := serve(router, http.MethodPut, "/entries/x", `{"title":"T"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"description":"old"`)
}

func TestUpdateEntry_NotFound(t *testing.T) {
	router, entries := newTestRouter(t)

	entries.EXPECT().UpdateEntry(gomock.Any(), "x", gomock.Any()).Return(models.Entry{}, store.ErrEntryNotFound)

	rec := serve(router, http.MethodPut, "/entries/x", `{"title":"T"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgEntryNotFound, decodeFailure(t, rec).Message)
}

func TestDeleteEntry(t *testing.T) {
	router, entries := newTestRouter(t)

	gomock.InOrder(
		entries.EXPECT().DeleteEntry(gomock.Any(), "x").Return(nil),
		entries.EXPECT().DeleteEntry(gomock.Any(), "x").Return(store.ErrEntryNotFound),
	)

	rec := serve(router, http.MethodDelete, "/entries/x", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())

	rec = serve(router, http.MethodDelete, "/entries/x", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnsupportedMethod_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, http.MethodPatch, "/entries/x", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	decodeFailure(t, rec)
}
