package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-entry-keeper/internal/validators"
	"github.com/MKhiriev/go-entry-keeper/models"
)

// EntryValidationService rejects invalid requests with [ErrValidation]
// before they reach the wrapped EntryService.
type EntryValidationService struct {
	inner     EntryService
	validator validators.Validator
}

func NewEntryValidationService() EntryServiceWrapper {
	return &EntryValidationService{
		validator: validators.NewEntryValidator(),
	}
}

func (v *EntryValidationService) ListEntries(ctx context.Context, req models.EntriesRequest) (models.EntriesPage, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.EntriesPage{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.ListEntries(ctx, req)
}

func (v *EntryValidationService) GetEntry(ctx context.Context, id string) (models.Entry, error) {
	if err := v.validateID(ctx, id); err != nil {
		return models.Entry{}, err
	}

	return v.inner.GetEntry(ctx, id)
}

func (v *EntryValidationService) CreateEntry(ctx context.Context, req models.CreateEntryRequest) (models.Entry, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.CreateEntry(ctx, req)
}

func (v *EntryValidationService) UpdateEntry(ctx context.Context, id string, req models.UpdateEntryRequest) (models.Entry, error) {
	if err := v.validateID(ctx, id); err != nil {
		return models.Entry{}, err
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Entry{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.UpdateEntry(ctx, id, req)
}

func (v *EntryValidationService) DeleteEntry(ctx context.Context, id string) error {
	if err := v.validateID(ctx, id); err != nil {
		return err
	}

	return v.inner.DeleteEntry(ctx, id)
}

func (v *EntryValidationService) Wrap(wrapped EntryService) EntryService {
	v.inner = wrapped
	return v
}

func (v *EntryValidationService) validateID(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, models.Entry{ID: id}, validators.FieldID); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}
