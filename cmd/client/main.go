package main

import (
	"fmt"

	"github.com/MKhiriev/go-entry-keeper/internal/adapter"
	"github.com/MKhiriev/go-entry-keeper/internal/client"
	"github.com/MKhiriev/go-entry-keeper/internal/config"
	"github.com/MKhiriev/go-entry-keeper/internal/logger"
	"github.com/MKhiriev/go-entry-keeper/internal/service"
	"github.com/MKhiriev/go-entry-keeper/internal/tui"
	"github.com/MKhiriev/go-entry-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("entry-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("entry-client", cfg.App.LogFile)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
