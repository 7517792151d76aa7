// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/render-status/internal/adapter"
	"github.com/MKhiriev/render-status/internal/logger"
	"github.com/MKhiriev/render-status/models"
)

// StatusNA is the placeholder rendered when a status cannot be determined:
// a service with no deploys yet, or a cron job that has never succeeded.
const StatusNA = "N/A"

// StatusService builds [models.Snapshot] values from the Render API.
type StatusService struct {
	api      adapter.RenderAPI
	lookback int

	logger *logger.Logger
}

// NewStatusService constructs a StatusService. lookback is how many deploys
// to request per service; the snapshot only ever uses the newest one, so 1
// is the normal value.
func NewStatusService(api adapter.RenderAPI, lookback int, log *logger.Logger) *StatusService {
	if lookback <= 0 {
		lookback = 1
	}
	return &StatusService{api: api, lookback: lookback, logger: log}
}

// Snapshot implements [StatusProvider]. It lists the account's services and
// splits them into main-table rows (non-cron, annotated with their latest
// deploy) and cron-table rows (built from service details; cron services
// expose no deploy history).
//
// Failure handling is strictly local: a failed deploy lookup marks only that
// row, and only a failure of the services listing itself yields a snapshot
// with Err set. Snapshot never returns an error — whatever happened, the
// result can be rendered.
func (s *StatusService) Snapshot(ctx context.Context) models.Snapshot {
	snap := models.Snapshot{TakenAt: time.Now()}

	services, err := s.api.ListServices(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("list services failed")
		snap.Err = fmt.Errorf("fetching services: %w", err)
		return snap
	}

	for _, svc := range services {
		if svc.IsCron() {
			snap.CronRows = append(snap.CronRows, s.cronRow(svc))
			continue
		}
		snap.Rows = append(snap.Rows, s.serviceRow(ctx, svc))
	}

	return snap
}

func (s *StatusService) serviceRow(ctx context.Context, svc models.Service) models.ServiceRow {
	row := models.ServiceRow{
		ID:           svc.ID,
		Name:         svc.Name,
		Type:         svc.Type,
		DashboardURL: svc.DashboardURL,
		DeployStatus: StatusNA,
		UpdatedAt:    svc.UpdatedAt,
	}

	deploys, err := s.api.ListDeploys(ctx, svc.ID, s.lookback)
	if err != nil {
		s.logger.Warn().Err(err).Str("service", svc.Name).Msg("failed to fetch deploys")
		row.FetchErr = err
		return row
	}

	if len(deploys) > 0 {
		latest := deploys[0]
		if latest.Status != "" {
			row.DeployStatus = latest.Status
		}
		row.DeployedAt = latest.CreatedAt
	}

	return row
}

// cronRow builds the cron-table entry from service details alone. Status is
// synthesised: the jobs endpoint carries no usable history, so a recorded
// successful run is reported as "succeeded" and anything else as N/A.
func (s *StatusService) cronRow(svc models.Service) models.CronRow {
	row := models.CronRow{
		ID:           svc.ID,
		Name:         svc.Name,
		DashboardURL: svc.DashboardURL,
		Schedule:     svc.ServiceDetails.Schedule,
		LastRun:      svc.ServiceDetails.LastSuccessfulRunAt,
		Status:       StatusNA,
	}
	if row.Schedule == "" {
		row.Schedule = StatusNA
	}
	if row.LastRun != nil && *row.LastRun != "" {
		row.Status = "succeeded"
	}
	return row
}
