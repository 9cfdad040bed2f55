package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-entry-keeper/internal/adapter"
	"github.com/MKhiriev/go-entry-keeper/internal/app"
	"github.com/MKhiriev/go-entry-keeper/internal/collection"
	"github.com/MKhiriev/go-entry-keeper/internal/logger"
	"github.com/MKhiriev/go-entry-keeper/internal/mock"
	"github.com/MKhiriev/go-entry-keeper/internal/pagination"
	"github.com/MKhiriev/go-entry-keeper/internal/sorting"
	"github.com/MKhiriev/go-entry-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSession(t *testing.T, userID string) (ClientEntrySession, *mock.MockServerAdapter) {
	t.Helper()
	srv := mock.NewMockServerAdapter(gomock.NewController(t))
	session := NewClientServices(srv, logger.Nop()).Session
	require.NoError(t, session.SelectUser(userID))
	return session, srv
}

func TestSession_NoUserSelected(t *testing.T) {
	session, _ := newTestSession(t, "")

	assert.ErrorIs(t, session.LoadFirst(context.Background()), ErrNoUserSelected)
	_, err := session.Create(context.Background(), "A", "B")
	assert.ErrorIs(t, err, ErrNoUserSelected)
	assert.NoError(t, session.CurrentError())
	assert.False(t, session.HasMore())
}

func TestSession_PagesUntilExhausted(t *testing.T) {
	session, srv := newTestSession(t, "u1")
	ctx := context.Background()

	key := &models.Cursor{ID: "b", UserID: "u1", LastModified: 20}
	gomock.InOrder(
		srv.EXPECT().GetEntries(gomock.Any(), models.EntriesRequest{UserID: "u1"}).
			Return(models.EntriesPage{Entries: []models.Entry{entryFixture("c", 30), entryFixture("b", 20)}, LastEvaluatedKey: key}, nil),
		// an overlapping page must not duplicate b
		srv.EXPECT().GetEntries(gomock.Any(), models.EntriesRequest{UserID: "u1", After: key}).
			Return(models.EntriesPage{Entries: []models.Entry{entryFixture("b", 20), entryFixture("a", 10)}}, nil),
	)

	require.NoError(t, session.LoadFirst(ctx))
	assert.True(t, session.HasMore())

	require.NoError(t, session.LoadMore(ctx))
	assert.False(t, session.HasMore())
	assert.Equal(t, 3, session.Len())
	assert.Equal(t, []string{"c", "b", "a"}, entryIDs(session.View()))

	assert.ErrorIs(t, session.LoadMore(ctx), ErrNoMorePages)
	assert.NoError(t, session.CurrentError())
}

func TestSession_LoadFirst_FailureKeepsStore(t *testing.T) {
	session, srv := newTestSession(t, "u1")
	ctx := context.Background()

	srv.EXPECT().GetEntries(gomock.Any(), gomock.Any()).
		Return(models.EntriesPage{Entries: []models.Entry{entryFixture("a", 10)}, LastEvaluatedKey: &models.Cursor{ID: "a", LastModified: 10}}, nil)
	srv.EXPECT().GetEntries(gomock.Any(), gomock.Any()).
		Return(models.EntriesPage{}, adapter.NewResponseError(http.StatusInternalServerError, ""))

	require.NoError(t, session.LoadFirst(ctx))
	err := session.LoadFirst(ctx)

	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.Equal(t, 1, session.Len())
	assert.True(t, session.HasMore())
}

func TestSession_ErrorMustBeCleared(t *testing.T) {
	session, srv := newTestSession(t, "u1")
	ctx := context.Background()

	_, err := session.Create(ctx, "", "B")
	require.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, session.CurrentError(), ErrValidation)

	assert.ErrorIs(t, session.LoadFirst(ctx), ErrUncleared)
	// refusals do not replace the current error
	assert.ErrorIs(t, session.CurrentError(), ErrValidation)

	session.ClearError()
	srv.EXPECT().GetEntries(gomock.Any(), gomock.Any()).Return(models.EntriesPage{}, nil)
	assert.NoError(t, session.LoadFirst(ctx))
}

func TestSession_LoadMore_UnclearedBeforeExhausted(t *testing.T) {
	session, srv := newTestSession(t, "u1")
	ctx := context.Background()

	srv.EXPECT().GetEntries(gomock.Any(), gomock.Any()).
		Return(models.EntriesPage{Entries: []models.Entry{entryFixture("a", 10)}}, nil)
	require.NoError(t, session.LoadFirst(ctx))
	require.False(t, session.HasMore())

	_, err := session.Update(ctx, "a", "", "")
	require.ErrorIs(t, err, ErrValidation)

	assert.ErrorIs(t, session.LoadMore(ctx), ErrUncleared)

	session.ClearError()
	assert.ErrorIs(t, session.LoadMore(ctx), ErrNoMorePages)
	assert.False(t, session.Busy())
}

func TestSession_MalformedCursorRestartsScan(t *testing.T) {
	session, srv := newTestSession(t, "u1")
	ctx := context.Background()

	key := &models.Cursor{ID: "a", LastModified: 10}
	srv.EXPECT().GetEntries(gomock.Any(), models.EntriesRequest{UserID: "u1"}).
		Return(models.EntriesPage{Entries: []models.Entry{entryFixture("a", 10)}, LastEvaluatedKey: key}, nil)
	srv.EXPECT().GetEntries(gomock.Any(), models.EntriesRequest{UserID: "u1", After: key}).
		Return(models.EntriesPage{}, adapter.NewResponseError(http.StatusBadRequest, app.MsgMalformedCursor))

	require.NoError(t, session.LoadFirst(ctx))
	err := session.LoadMore(ctx)

	assert.ErrorIs(t, err, pagination.ErrMalformedCursor)
	assert.Zero(t, session.Len())
	assert.True(t, session.HasMore())

	session.ClearError()
	srv.EXPECT().GetEntries(gomock.Any(), models.EntriesRequest{UserID: "u1"}).
		Return(models.EntriesPage{Entries: []models.Entry{entryFixture("a", 10)}}, nil)
	require.NoError(t, session.LoadMore(ctx))
	assert.Equal(t, 1, session.Len())
}

func TestSession_SelectUserDiscardsState(t *testing.T) {
	session, srv := newTestSession(t, "u1")
	ctx := context.Background()

	srv.EXPECT().GetEntries(gomock.Any(), gomock.Any()).
		Return(models.EntriesPage{Entries: []models.Entry{entryFixture("a", 10)}}, nil)
	require.NoError(t, session.LoadFirst(ctx))
	require.False(t, session.HasMore())

	require.NoError(t, session.SelectUser("u2"))

	assert.Equal(t, "u2", session.UserID())
	assert.Zero(t, session.Len())
	assert.True(t, session.HasMore())
	assert.NoError(t, session.CurrentError())
}

func TestSession_CreateDeleteScenario(t *testing.T) {
	session, srv := newTestSession(t, "u1")
	ctx := context.Background()

	created := models.Entry{ID: "fresh-id", UserID: "u1", LastModified: 100, Title: "A", Description: "B"}
	srv.EXPECT().CreateEntry(gomock.Any(), models.CreateEntryRequest{UserID: "u1", Title: "A", Description: "B"}).Return(created, nil)
	srv.EXPECT().DeleteEntry(gomock.Any(), "fresh-id").Return(nil)

	got, err := session.Create(ctx, "A", "B")
	require.NoError(t, err)
	view := session.View()
	require.Len(t, view, 1)
	assert.Equal(t, "A", view[0].Title)
	assert.Equal(t, "B", view[0].Description)
	assert.NotEmpty(t, view[0].ID)

	require.NoError(t, session.Delete(ctx, got.ID))
	assert.Zero(t, session.Len())

	assert.ErrorIs(t, session.Delete(ctx, got.ID), collection.ErrNotFound)
}

func TestSession_SortOnlyChangesView(t *testing.T) {
	session, srv := newTestSession(t, "u1")

	srv.EXPECT().GetEntries(gomock.Any(), gomock.Any()).Return(models.EntriesPage{Entries: []models.Entry{
		{ID: "1", Title: "b", LastModified: 3},
		{ID: "2", Title: "a", LastModified: 2},
		{ID: "3", Title: "a", LastModified: 1},
	}}, nil)
	require.NoError(t, session.LoadFirst(context.Background()))

	assert.Equal(t, sorting.DefaultDescriptor(), session.Sort())

	session.ToggleSort(sorting.ColumnTitle)
	assert.Equal(t, []string{"2", "3", "1"}, entryIDs(session.View()))

	session.ToggleSort(sorting.ColumnTitle)
	assert.Equal(t, sorting.Descending, session.Sort().Direction)

	session.SetSort(sorting.Descriptor{Column: sorting.ColumnLastModified, Direction: sorting.Ascending})
	assert.Equal(t, []string{"3", "2", "1"}, entryIDs(session.View()))
}
