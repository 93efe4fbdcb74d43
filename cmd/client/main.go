package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-tree-keeper/internal/adapter"
	"github.com/MKhiriev/go-tree-keeper/internal/client"
	"github.com/MKhiriev/go-tree-keeper/internal/config"
	"github.com/MKhiriev/go-tree-keeper/internal/connectivity"
	"github.com/MKhiriev/go-tree-keeper/internal/logger"
	"github.com/MKhiriev/go-tree-keeper/internal/service"
	"github.com/MKhiriev/go-tree-keeper/internal/store"
	"github.com/MKhiriev/go-tree-keeper/internal/tui"
	"github.com/MKhiriev/go-tree-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("tree-keeper-agent").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("tree-keeper-agent", cfg.Agent.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, db, err := store.NewClientStorages(ctx, cfg.Storage.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer db.Close()

	// offline until the first successful health probe
	sw := connectivity.NewSwitch(false, log)
	services := service.NewClientServices(localStorage, serverAdapter, sw, log)

	var ui client.UI
	if !cfg.Agent.Headless {
		ui = tui.New(services.SyncCoordinator, sw, cfg.App.BaseURL, buildInfo, log)
	}

	app, err := client.NewApp(services, sw, serverAdapter, ui, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
