// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service assembles Render API responses into renderable status
// snapshots and drives the periodic refresh loop.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/render-status/models"
)

// StatusProvider produces one status snapshot per call. The returned
// snapshot is always renderable: fetch failures are folded into it (as
// Snapshot.Err or per-row FetchErr) instead of being returned.
type StatusProvider interface {
	Snapshot(ctx context.Context) models.Snapshot
}

// PollJob runs a StatusProvider on a fixed interval in the background.
type PollJob interface {
	// Start launches the poll loop. One snapshot is produced immediately,
	// then one per interval; each is handed to the callback registered at
	// construction. The loop exits when ctx is cancelled or Stop is
	// called.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the loop and blocks until it has fully exited. Safe to
	// call when the job is not running.
	Stop()
}
