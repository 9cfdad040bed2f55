package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-entry-keeper/internal/config"
	"github.com/MKhiriev/go-entry-keeper/internal/logger"
	"github.com/MKhiriev/go-entry-keeper/internal/store"
	"github.com/MKhiriev/go-entry-keeper/models"
)

type entryService struct {
	entryRepository store.EntryRepository
	idGenerator     IDGenerator

	// pageSize caps every page; requests asking for more are clamped.
	pageSize int
	now      func() time.Time

	logger *logger.Logger
}

func NewEntryService(entryRepository store.EntryRepository, idGenerator IDGenerator, cfg config.App, logger *logger.Logger) EntryService {
	return &entryService{
		entryRepository: entryRepository,
		idGenerator:     idGenerator,
		pageSize:        cfg.PageSize,
		now:             time.Now,
		logger:          logger,
	}
}

func (s *entryService) ListEntries(ctx context.Context, req models.EntriesRequest) (models.EntriesPage, error) {
	if req.Limit <= 0 || req.Limit > s.pageSize {
		req.Limit = s.pageSize
	}

	return s.entryRepository.ListEntries(ctx, req)
}

func (s *entryService) GetEntry(ctx context.Context, id string) (models.Entry, error) {
	return s.entryRepository.GetEntry(ctx, id)
}

func (s *entryService) CreateEntry(ctx context.Context, req models.CreateEntryRequest) (models.Entry, error) {
	entry := models.Entry{
		ID:           s.idGenerator.Generate(),
		UserID:       strings.TrimSpace(req.UserID),
		LastModified: s.now().Unix(),
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
	}

	created, err := s.entryRepository.CreateEntry(ctx, entry)
	if err != nil {
		return models.Entry{}, err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "entryService.CreateEntry").
		Str("id", created.ID).
		Str("user_id", created.UserID).
		Msg("entry created")

	return created, nil
}

func (s *entryService) UpdateEntry(ctx context.Context, id string, req models.UpdateEntryRequest) (models.Entry, error) {
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		req.Title = &title
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		req.Description = &description
	}

	return s.entryRepository.UpdateEntry(ctx, id, req, s.now().Unix())
}

func (s *entryService) DeleteEntry(ctx context.Context, id string) error {
	return s.entryRepository.DeleteEntry(ctx, id)
}
