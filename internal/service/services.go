package service

import (
	"fmt"

	"github.com/MKhiriev/go-entry-keeper/internal/config"
	"github.com/MKhiriev/go-entry-keeper/internal/logger"
	"github.com/MKhiriev/go-entry-keeper/internal/store"
	"github.com/MKhiriev/go-entry-keeper/internal/utils"
)

type Services struct {
	EntryService   EntryService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	entryService := NewEntryService(storages.EntryRepository, utils.NewUUIDGenerator(), cfg.App, logger)

	return &Services{
		EntryService:   NewEntryValidationService().Wrap(entryService),
		AppInfoService: appInfoService,
	}, nil
}
