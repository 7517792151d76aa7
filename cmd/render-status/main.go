package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/render-status/internal/adapter"
	"github.com/MKhiriev/render-status/internal/client"
	"github.com/MKhiriev/render-status/internal/config"
	"github.com/MKhiriev/render-status/internal/logger"
	"github.com/MKhiriev/render-status/internal/service"
	"github.com/MKhiriev/render-status/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("render-status")

	cfg, err := config.GetConfig()
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	api, err := adapter.NewHTTPRenderAdapter(cfg.Adapter, cfg.App.APIKey, log)
	if err != nil {
		log.Error().Err(err).Msg("create render adapter")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	status := service.NewStatusService(api, cfg.Workers.DeployLookback, log)

	ui, err := tui.New(status, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating ui")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app, err := client.NewApp(cfg, api, ui, log)
	if err != nil {
		log.Error().Err(err).Msg("init app error")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("run error")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printBuildInfo() {
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
}
