// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders status snapshots in the terminal.
//
// Two run modes are provided: [TUI.RunOnce] fetches one snapshot and prints
// it to a writer, and [TUI.RunLive] runs a bubbletea dashboard that the
// background poll job feeds with fresh snapshots until the user quits.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/render-status/internal/logger"
	"github.com/MKhiriev/render-status/internal/service"
	"github.com/MKhiriev/render-status/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	status service.StatusProvider
	logger *logger.Logger
}

func New(status service.StatusProvider, log *logger.Logger) (*TUI, error) {
	if status == nil {
		return nil, errors.New("tui: nil status provider")
	}
	return &TUI{status: status, logger: log}, nil
}

// RunOnce fetches a single snapshot and writes it to w with a
// "Last updated" header. Fetch failures are part of the rendered output,
// not an error: the returned error only reports writer failures.
func (t *TUI) RunOnce(ctx context.Context, w io.Writer) error {
	snap := t.status.Snapshot(ctx)

	header := helpStyle.Render("Last updated: " + clock(snap.TakenAt))
	_, err := fmt.Fprintf(w, "%s\n\n%s\n", header, renderSnapshot(snap, -1))
	return err
}

// RunLive runs the full-screen dashboard until the user quits or ctx is
// cancelled. A poll job refreshes the view every interval; it is stopped
// before RunLive returns. User-initiated exits (q, Ctrl+C, interrupt
// signal) are clean and return nil.
func (t *TUI) RunLive(ctx context.Context, interval time.Duration) error {
	program := tea.NewProgram(newDashboardModel(), tea.WithContext(ctx), tea.WithAltScreen())

	job := service.NewPoller(t.status, func(snap models.Snapshot) {
		program.Send(snapshotMsg{snapshot: snap})
	})
	job.Start(ctx, interval)
	defer job.Stop()

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrInterrupted) || errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
