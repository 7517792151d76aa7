package client

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/render-status/internal/adapter"
	"github.com/MKhiriev/render-status/internal/config"
	"github.com/MKhiriev/render-status/internal/logger"
	"github.com/MKhiriev/render-status/internal/tui"
)

type App struct {
	cfg *config.StructuredConfig
	api adapter.RenderAPI
	ui  *tui.TUI

	logger *logger.Logger
}

// NewApp assembles the application from its already-constructed parts.
func NewApp(cfg *config.StructuredConfig, api adapter.RenderAPI, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if cfg == nil || api == nil || ui == nil {
		return nil, errors.New("client: missing dependency")
	}
	return &App{cfg: cfg, api: api, ui: ui, logger: log}, nil
}

// Run executes the selected mode and releases the API connection when done.
// Single-shot prints one snapshot to stdout and returns; live runs the
// dashboard until the user quits or ctx is cancelled, then prints a
// farewell so the terminal does not end on a cleared alt screen.
func (a *App) Run(ctx context.Context) error {
	defer a.api.Close()

	if a.cfg.App.Once {
		a.logger.Info().Msg("running in single-shot mode")
		return a.ui.RunOnce(ctx, os.Stdout)
	}

	a.logger.Info().Dur("interval", a.cfg.Workers.PollInterval).Msg("running live dashboard")
	if err := a.ui.RunLive(ctx, a.cfg.Workers.PollInterval); err != nil {
		return err
	}

	fmt.Println("Stopped")
	return nil
}
