// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the Render
// REST API.
//
// The primary abstraction is [RenderAPI], which decouples the status service
// from the wire protocol. The package ships an HTTP implementation
// ([NewHTTPRenderAdapter]) built on resty. Render's list endpoints return
// envelope objects (the payload nested under a named key next to a
// pagination cursor); the adapter unwraps these so callers only ever see the
// inner models.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/render-status/models"
)

// RenderAPI defines read-only access to the Render API endpoints the
// monitor consumes. Implementations are responsible for authentication
// headers, envelope unwrapping, and mapping transport-level errors to the
// sentinel values defined in this package.
type RenderAPI interface {
	// ListServices fetches every service owned by the account from
	// GET /services, unwrapped from its envelope. Returns an error if the
	// request fails or the server responds with a non-2xx status.
	ListServices(ctx context.Context) ([]models.Service, error)

	// ListDeploys fetches up to limit deploys of the given service from
	// GET /services/{id}/deploys, newest first, unwrapped from their
	// envelopes. A non-positive limit falls back to 10.
	ListDeploys(ctx context.Context, serviceID string, limit int) ([]models.Deploy, error)

	// ListJobs fetches the runs of the given cron service from
	// GET /services/{id}/jobs. Both documented wire shapes are accepted:
	// envelope-wrapped ([{"job": {...}}]) and flat ([{...}]); the result
	// is always a plain job list.
	ListJobs(ctx context.Context, serviceID string) ([]models.Job, error)

	// Close releases the adapter's idle connections. The adapter must not
	// be used afterwards.
	Close()
}
