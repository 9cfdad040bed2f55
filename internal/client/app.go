package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-entry-keeper/internal/config"
	"github.com/MKhiriev/go-entry-keeper/internal/logger"
	"github.com/MKhiriev/go-entry-keeper/internal/service"
	"github.com/MKhiriev/go-entry-keeper/internal/sorting"
)

type App struct {
	services *service.ClientServices
	ui       UI
	cfg      config.ClientApp
	sort     sorting.Descriptor

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, cfg config.ClientApp, logger *logger.Logger) (*App, error) {
	if services == nil || services.Session == nil {
		return nil, ErrNoClientServices
	}
	if ui == nil {
		return nil, ErrNoUI
	}

	sort, err := sorting.ParseDescriptor(cfg.SortColumn, cfg.SortDirection)
	if err != nil {
		return nil, fmt.Errorf("initial sort: %w", err)
	}

	return &App{services: services, ui: ui, cfg: cfg, sort: sort, logger: logger}, nil
}

// Run applies the configured sort, opens the configured user scope, if any,
// and hands control to the UI until the user quits or the process gets a
// termination signal.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.services.Session.SetSort(a.sort)

	if a.cfg.UserID != "" {
		if err := a.services.Session.SelectUser(a.cfg.UserID); err != nil {
			return fmt.Errorf("select user %q: %w", a.cfg.UserID, err)
		}
		a.logger.Info().Str("func", "App.Run").Str("user_id", a.cfg.UserID).Msg("user scope opened from config")
	}

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
