// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/render-status/internal/logger"
	"github.com/MKhiriev/render-status/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

// fakeRenderAPI is a test implementation of adapter.RenderAPI with
// programmable per-service deploy results.
type fakeRenderAPI struct {
	services    []models.Service
	servicesErr error

	deploys    map[string][]models.Deploy
	deployErrs map[string]error

	deployCalls []string
	jobCalls    []string
}

func (f *fakeRenderAPI) ListServices(ctx context.Context) ([]models.Service, error) {
	return f.services, f.servicesErr
}

func (f *fakeRenderAPI) ListDeploys(ctx context.Context, serviceID string, limit int) ([]models.Deploy, error) {
	f.deployCalls = append(f.deployCalls, serviceID)
	if err := f.deployErrs[serviceID]; err != nil {
		return nil, err
	}
	return f.deploys[serviceID], nil
}

func (f *fakeRenderAPI) ListJobs(ctx context.Context, serviceID string) ([]models.Job, error) {
	f.jobCalls = append(f.jobCalls, serviceID)
	return nil, nil
}

func (f *fakeRenderAPI) Close() {}

// ── Snapshot ────────────────────────────────────────────────────────────────

func TestSnapshot_SplitsWebAndCron(t *testing.T) {
	api := &fakeRenderAPI{
		services: []models.Service{
			{ID: "srv-1", Name: "api", Type: models.WebService, UpdatedAt: strptr("2025-11-25T12:00:00Z")},
			{ID: "srv-2", Name: "nightly", Type: models.CronJob, ServiceDetails: models.ServiceDetails{
				Schedule:            "0 3 * * *",
				LastSuccessfulRunAt: strptr("2025-11-25T03:00:12Z"),
			}},
		},
		deploys: map[string][]models.Deploy{
			"srv-1": {{ID: "dep-1", Status: "live", CreatedAt: strptr("2025-11-25T11:00:00Z")}},
		},
	}
	s := NewStatusService(api, 1, logger.Nop())

	snap := s.Snapshot(context.Background())

	require.NoError(t, snap.Err)
	require.Len(t, snap.Rows, 1)
	require.Len(t, snap.CronRows, 1)

	assert.Equal(t, "api", snap.Rows[0].Name)
	assert.Equal(t, "live", snap.Rows[0].DeployStatus)

	cron := snap.CronRows[0]
	assert.Equal(t, "nightly", cron.Name)
	assert.Equal(t, "0 3 * * *", cron.Schedule)
	assert.Equal(t, "succeeded", cron.Status)

	// cron services never hit the deploys endpoint
	assert.Equal(t, []string{"srv-1"}, api.deployCalls)
}

func TestSnapshot_CronWithoutRunsIsNA(t *testing.T) {
	api := &fakeRenderAPI{
		services: []models.Service{
			{ID: "srv-2", Name: "nightly", Type: models.CronJob, ServiceDetails: models.ServiceDetails{
				Schedule: "0 3 * * *",
			}},
		},
	}
	s := NewStatusService(api, 1, logger.Nop())

	snap := s.Snapshot(context.Background())

	require.Len(t, snap.CronRows, 1)
	assert.Equal(t, StatusNA, snap.CronRows[0].Status)
	assert.Nil(t, snap.CronRows[0].LastRun)
}

// TestSnapshot_CronIgnoresJobsEndpoint pins down the synthesis rule: cron
// status comes from service details only, the jobs endpoint stays unused.
func TestSnapshot_CronIgnoresJobsEndpoint(t *testing.T) {
	api := &fakeRenderAPI{
		services: []models.Service{
			{ID: "srv-2", Name: "nightly", Type: models.CronJob},
		},
	}
	s := NewStatusService(api, 1, logger.Nop())

	_ = s.Snapshot(context.Background())

	assert.Empty(t, api.jobCalls)
}

func TestSnapshot_EmptyAccount(t *testing.T) {
	api := &fakeRenderAPI{}
	s := NewStatusService(api, 1, logger.Nop())

	snap := s.Snapshot(context.Background())

	assert.NoError(t, snap.Err)
	assert.True(t, snap.Empty())
}

func TestSnapshot_ServicesListingFails(t *testing.T) {
	listErr := errors.New("boom")
	api := &fakeRenderAPI{servicesErr: listErr}
	s := NewStatusService(api, 1, logger.Nop())

	snap := s.Snapshot(context.Background())

	require.Error(t, snap.Err)
	assert.ErrorIs(t, snap.Err, listErr)
	assert.Empty(t, snap.Rows)
	assert.Empty(t, snap.CronRows)
}

// TestSnapshot_PartialDeployFailure verifies row isolation: one broken
// deploy lookup marks that row only, the others render normally.
func TestSnapshot_PartialDeployFailure(t *testing.T) {
	deployErr := errors.New("deploys unavailable")
	api := &fakeRenderAPI{
		services: []models.Service{
			{ID: "srv-1", Name: "api", Type: models.WebService},
			{ID: "srv-2", Name: "worker", Type: models.WebService},
			{ID: "srv-3", Name: "site", Type: "static_site"},
		},
		deploys: map[string][]models.Deploy{
			"srv-1": {{ID: "dep-1", Status: "live"}},
			"srv-3": {{ID: "dep-3", Status: "building"}},
		},
		deployErrs: map[string]error{"srv-2": deployErr},
	}
	s := NewStatusService(api, 1, logger.Nop())

	snap := s.Snapshot(context.Background())

	require.NoError(t, snap.Err)
	require.Len(t, snap.Rows, 3)

	assert.Equal(t, "live", snap.Rows[0].DeployStatus)
	assert.NoError(t, snap.Rows[0].FetchErr)

	assert.ErrorIs(t, snap.Rows[1].FetchErr, deployErr)

	assert.Equal(t, "building", snap.Rows[2].DeployStatus)
	assert.NoError(t, snap.Rows[2].FetchErr)
}

func TestSnapshot_NoDeploysYet(t *testing.T) {
	api := &fakeRenderAPI{
		services: []models.Service{
			{ID: "srv-1", Name: "api", Type: models.WebService},
		},
	}
	s := NewStatusService(api, 1, logger.Nop())

	snap := s.Snapshot(context.Background())

	require.Len(t, snap.Rows, 1)
	assert.Equal(t, StatusNA, snap.Rows[0].DeployStatus)
	assert.Nil(t, snap.Rows[0].DeployedAt)
}
