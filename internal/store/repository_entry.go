package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-entry-keeper/internal/logger"
	"github.com/MKhiriev/go-entry-keeper/models"
)

const defaultListLimit = 25

type entryRepository struct {
	*DB
	logger *logger.Logger
}

// NewEntryRepository returns the SQL implementation of [EntryRepository].
//
// The logger parameter is stored for fallback logging; methods prefer the
// context-scoped logger obtained via [logger.FromContext].
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	return &entryRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (models.Entry, error) {
	var entry models.Entry
	err := row.Scan(&entry.ID, &entry.UserID, &entry.Title, &entry.Description, &entry.LastModified)
	return entry, err
}

func (r *entryRepository) CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertEntryQuery(r.builder, entry)
	if err != nil {
		log.Err(err).Str("func", "entryRepository.CreateEntry").Msg("failed to build query")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Entry{}, ErrEntryAlreadyExists
		}
		log.Err(err).
			Str("func", "entryRepository.CreateEntry").
			Str("user_id", entry.UserID).
			Bool("retryable", r.isRetryable(err)).
			Msg("failed to insert entry")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return models.Entry{}, ErrEntryNotSaved
	}

	return entry, nil
}

func (r *entryRepository) GetEntry(ctx context.Context, id string) (models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEntryQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "entryRepository.GetEntry").Msg("failed to build query")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry, err := scanEntry(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entry{}, ErrEntryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.GetEntry").
			Str("id", id).
			Bool("retryable", r.isRetryable(err)).
			Msg("failed to get entry")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

func (r *entryRepository) UpdateEntry(ctx context.Context, id string, update models.UpdateEntryRequest, lastModified int64) (models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateEntryQuery(r.builder, id, update, lastModified)
	if err != nil {
		log.Err(err).Str("func", "entryRepository.UpdateEntry").Msg("failed to build query")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entry, err := scanEntry(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entry{}, ErrEntryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.UpdateEntry").
			Str("id", id).
			Bool("retryable", r.isRetryable(err)).
			Msg("failed to update entry")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

func (r *entryRepository) DeleteEntry(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEntryQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "entryRepository.DeleteEntry").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.DeleteEntry").
			Str("id", id).
			Bool("retryable", r.isRetryable(err)).
			Msg("failed to delete entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// ListEntries runs the keyset scan. A non-positive limit falls back to
// defaultListLimit.
func (r *entryRepository) ListEntries(ctx context.Context, req models.EntriesRequest) (models.EntriesPage, error) {
	log := logger.FromContext(ctx)

	if req.Limit <= 0 {
		req.Limit = defaultListLimit
	}

	query, args, err := buildListEntriesQuery(r.builder, req)
	if err != nil {
		log.Err(err).Str("func", "entryRepository.ListEntries").Msg("failed to build query")
		return models.EntriesPage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.ListEntries").
			Str("user_id", req.UserID).
			Bool("retryable", r.isRetryable(err)).
			Msg("failed to execute list query")
		return models.EntriesPage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.Entry, 0, req.Limit+1)
	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "entryRepository.ListEntries").
				Str("user_id", req.UserID).
				Msg("failed to scan entry row")
			return models.EntriesPage{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "entryRepository.ListEntries").
			Str("user_id", req.UserID).
			Msg("error occurred during rows iteration")
		return models.EntriesPage{}, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	page := models.EntriesPage{Entries: entries}
	if len(entries) > req.Limit {
		page.Entries = entries[:req.Limit]
		key := page.Entries[req.Limit-1].Cursor()
		page.LastEvaluatedKey = &key
	}

	return page, nil
}
