package http

import (
	"github.com/MKhiriev/go-entry-keeper/internal/logger"
	"github.com/MKhiriev/go-entry-keeper/internal/service"
)

// Handler serves the entry REST API on top of the service layer.
type Handler struct {
	entries service.EntryService
	appInfo service.AppInfoService

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Str("func", "NewHandler").Msg("entry http handler created")
	return &Handler{
		entries: services.EntryService,
		appInfo: services.AppInfoService,
		logger:  logger,
	}
}
