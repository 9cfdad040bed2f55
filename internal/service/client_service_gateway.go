package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-entry-keeper/internal/adapter"
	"github.com/MKhiriev/go-entry-keeper/internal/collection"
	"github.com/MKhiriev/go-entry-keeper/internal/logger"
	"github.com/MKhiriev/go-entry-keeper/internal/validators"
	"github.com/MKhiriev/go-entry-keeper/models"
)

type clientEntryGateway struct {
	serverAdapter adapter.ServerAdapter
	store         *collection.Store
	validator     validators.Validator

	logger *logger.Logger
}

// NewClientEntryGateway binds a gateway to store. A gateway must be rebuilt
// together with the store when the user changes.
func NewClientEntryGateway(serverAdapter adapter.ServerAdapter, store *collection.Store, logger *logger.Logger) ClientEntryGateway {
	return &clientEntryGateway{
		serverAdapter: serverAdapter,
		store:         store,
		validator:     validators.NewEntryValidator(),
		logger:        logger,
	}
}

func (g *clientEntryGateway) Create(ctx context.Context, userID, title, description string) (models.Entry, error) {
	req := models.CreateEntryRequest{
		UserID:      strings.TrimSpace(userID),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
	}
	if err := g.validator.Validate(ctx, req); err != nil {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	created, err := g.serverAdapter.CreateEntry(ctx, req)
	if err != nil {
		g.logger.Err(err).Str("func", "clientEntryGateway.Create").Msg("create failed")
		return models.Entry{}, mapAdapterError(err, ErrMutationFailed, "create")
	}

	if err = g.store.InsertOne(created); err != nil {
		return models.Entry{}, err
	}

	return created, nil
}

func (g *clientEntryGateway) Update(ctx context.Context, id, title, description string) (models.Entry, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	err := g.validator.Validate(ctx, models.Entry{ID: id, Title: title, Description: description},
		validators.FieldID, validators.FieldTitle, validators.FieldDescription)
	if err != nil {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if !g.store.Has(id) {
		return models.Entry{}, fmt.Errorf("update %q: %w", id, collection.ErrNotFound)
	}

	updated, err := g.serverAdapter.UpdateEntry(ctx, id, models.UpdateEntryRequest{
		Title:       &title,
		Description: &description,
	})
	if err != nil {
		g.logger.Err(err).Str("func", "clientEntryGateway.Update").Str("id", id).Msg("update failed")
		return models.Entry{}, mapAdapterError(err, ErrMutationFailed, "update")
	}

	if err = g.store.ReplaceOne(updated); err != nil {
		return models.Entry{}, err
	}

	return updated, nil
}

func (g *clientEntryGateway) Delete(ctx context.Context, id string) error {
	if err := g.validator.Validate(ctx, models.Entry{ID: id}, validators.FieldID); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if !g.store.Has(id) {
		return fmt.Errorf("delete %q: %w", id, collection.ErrNotFound)
	}

	if err := g.serverAdapter.DeleteEntry(ctx, id); err != nil {
		g.logger.Err(err).Str("func", "clientEntryGateway.Delete").Str("id", id).Msg("delete failed")
		return mapAdapterError(err, ErrMutationFailed, "delete")
	}

	return g.store.RemoveOne(id)
}

func (g *clientEntryGateway) Get(ctx context.Context, id string) (models.Entry, error) {
	if err := g.validator.Validate(ctx, models.Entry{ID: id}, validators.FieldID); err != nil {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	entry, err := g.serverAdapter.GetEntry(ctx, id)
	if err != nil {
		return models.Entry{}, mapAdapterError(err, ErrFetchFailed, "get")
	}

	return entry, nil
}
