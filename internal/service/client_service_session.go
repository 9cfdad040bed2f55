package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/MKhiriev/go-entry-keeper/internal/adapter"
	"github.com/MKhiriev/go-entry-keeper/internal/collection"
	"github.com/MKhiriev/go-entry-keeper/internal/logger"
	"github.com/MKhiriev/go-entry-keeper/internal/pagination"
	"github.com/MKhiriev/go-entry-keeper/internal/sorting"
	"github.com/MKhiriev/go-entry-keeper/models"
)

type clientEntrySession struct {
	fetcher       ClientEntryFetcher
	serverAdapter adapter.ServerAdapter

	mu sync.Mutex

	userID  string
	store   *collection.Store
	gateway ClientEntryGateway

	// next is the cursor of the page to load; exhausted is set once the
	// backend answered without a continuation key.
	next      *models.Cursor
	exhausted bool

	sort       sorting.Descriptor
	busy       bool
	currentErr error

	logger *logger.Logger
}

func NewClientEntrySession(fetcher ClientEntryFetcher, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientEntrySession {
	s := &clientEntrySession{
		fetcher:       fetcher,
		serverAdapter: serverAdapter,
		sort:          sorting.DefaultDescriptor(),
		logger:        logger,
	}
	s.resetScope("")
	return s
}

// resetScope installs a fresh store and gateway. Callers hold s.mu.
func (s *clientEntrySession) resetScope(userID string) {
	s.userID = userID
	s.store = collection.New()
	s.gateway = NewClientEntryGateway(s.serverAdapter, s.store, s.logger)
	s.next = nil
	s.exhausted = false
	s.currentErr = nil
}

func (s *clientEntrySession) SelectUser(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy {
		return ErrBusy
	}

	s.resetScope(strings.TrimSpace(userID))
	s.logger.Info().Str("func", "clientEntrySession.SelectUser").Str("user_id", s.userID).Msg("user scope changed")
	return nil
}

func (s *clientEntrySession) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.userID
}

// operation is the state captured when an operation is admitted.
type operation struct {
	userID  string
	store   *collection.Store
	gateway ClientEntryGateway
	next    *models.Cursor
}

// begin admits one operation or returns the refusal. needMore additionally
// refuses once the scan of the current scope is exhausted.
func (s *clientEntrySession) begin(needMore bool) (operation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy {
		return operation{}, ErrBusy
	}
	if s.currentErr != nil {
		return operation{}, ErrUncleared
	}
	if s.userID == "" {
		return operation{}, ErrNoUserSelected
	}
	if needMore && s.exhausted {
		return operation{}, ErrNoMorePages
	}

	s.busy = true
	return operation{userID: s.userID, store: s.store, gateway: s.gateway, next: s.next}, nil
}

// finish ends the running operation and records err as the current error.
func (s *clientEntrySession) finish(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.busy = false
	if err != nil {
		s.currentErr = err
		if errors.Is(err, pagination.ErrMalformedCursor) {
			// the scan cannot be resumed; the next load starts from the top
			s.store.Reset()
			s.next = nil
			s.exhausted = false
		}
	}
	return err
}

func (s *clientEntrySession) LoadFirst(ctx context.Context) error {
	op, err := s.begin(false)
	if err != nil {
		return err
	}

	entries, next, err := s.fetcher.FetchPage(ctx, op.userID, nil)
	if err != nil {
		return s.finish(err)
	}

	op.store.ResetWith(entries)
	s.advance(next)
	return s.finish(nil)
}

func (s *clientEntrySession) LoadMore(ctx context.Context) error {
	op, err := s.begin(true)
	if err != nil {
		return err
	}

	entries, next, err := s.fetcher.FetchPage(ctx, op.userID, op.next)
	if err != nil {
		return s.finish(err)
	}

	added := op.store.AppendPage(entries)
	s.advance(next)

	s.logger.Debug().
		Str("func", "clientEntrySession.LoadMore").
		Int("added", added).
		Int("skipped", len(entries)-added).
		Msg("page appended")

	return s.finish(nil)
}

func (s *clientEntrySession) advance(next *models.Cursor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next = next
	s.exhausted = next == nil
}

func (s *clientEntrySession) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.userID != "" && !s.exhausted
}

func (s *clientEntrySession) Create(ctx context.Context, title, description string) (models.Entry, error) {
	op, err := s.begin(false)
	if err != nil {
		return models.Entry{}, err
	}

	created, err := op.gateway.Create(ctx, op.userID, title, description)
	return created, s.finish(err)
}

func (s *clientEntrySession) Update(ctx context.Context, id, title, description string) (models.Entry, error) {
	op, err := s.begin(false)
	if err != nil {
		return models.Entry{}, err
	}

	updated, err := op.gateway.Update(ctx, id, title, description)
	return updated, s.finish(err)
}

func (s *clientEntrySession) Delete(ctx context.Context, id string) error {
	op, err := s.begin(false)
	if err != nil {
		return err
	}

	return s.finish(op.gateway.Delete(ctx, id))
}

func (s *clientEntrySession) Get(ctx context.Context, id string) (models.Entry, error) {
	op, err := s.begin(false)
	if err != nil {
		return models.Entry{}, err
	}

	entry, err := op.gateway.Get(ctx, id)
	return entry, s.finish(err)
}

func (s *clientEntrySession) View() []models.Entry {
	s.mu.Lock()
	store, d := s.store, s.sort
	s.mu.Unlock()

	return sorting.Project(store.Entries(), d)
}

func (s *clientEntrySession) Len() int {
	s.mu.Lock()
	store := s.store
	s.mu.Unlock()

	return store.Len()
}

func (s *clientEntrySession) Sort() sorting.Descriptor {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sort
}

func (s *clientEntrySession) SetSort(d sorting.Descriptor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sort = d
}

func (s *clientEntrySession) ToggleSort(column sorting.Column) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sort = s.sort.Toggle(column)
}

func (s *clientEntrySession) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.busy
}

func (s *clientEntrySession) CurrentError() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.currentErr
}

func (s *clientEntrySession) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentErr = nil
}
