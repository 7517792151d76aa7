// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/render-status/internal/config"
	"github.com/MKhiriev/render-status/internal/logger"
	"github.com/MKhiriev/render-status/models"
	"github.com/go-resty/resty/v2"
)

const defaultDeployLimit = 10

type httpRenderAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPRenderAdapter constructs an HTTP implementation of [RenderAPI].
// It normalises and validates the base URL from adapterCfg.BaseURL and
// configures the underlying resty client with the resolved base URL, the
// request timeout, and the headers every Render API call requires: the
// bearer credential and an explicit JSON accept.
//
// The adapter keeps one connection pool for its whole lifetime; callers own
// the resource and must release it with Close.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPRenderAdapter(adapterCfg config.Adapter, apiKey string, log *logger.Logger) (RenderAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Authorization", "Bearer "+strings.TrimSpace(apiKey)).
		SetHeader("Accept", "application/json")

	return &httpRenderAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListServices implements [RenderAPI]. It GETs /services and unwraps the
// [models.ServiceEnvelope] list into plain services.
func (h *httpRenderAdapter) ListServices(ctx context.Context) ([]models.Service, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/services")
	if err != nil {
		return nil, fmt.Errorf("list services request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelopes []models.ServiceEnvelope
	if err = json.Unmarshal(resp.Body(), &envelopes); err != nil {
		return nil, fmt.Errorf("decode services response: %w", err)
	}

	services := make([]models.Service, 0, len(envelopes))
	for _, e := range envelopes {
		services = append(services, e.Service)
	}

	h.logger.Info().Int("count", len(services)).Msg("fetched services")
	return services, nil
}

// ListDeploys implements [RenderAPI]. It GETs /services/{id}/deploys with a
// limit query parameter and unwraps the [models.DeployEnvelope] list. A
// non-positive limit falls back to 10.
func (h *httpRenderAdapter) ListDeploys(ctx context.Context, serviceID string, limit int) ([]models.Deploy, error) {
	if limit <= 0 {
		limit = defaultDeployLimit
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		Get("/services/" + url.PathEscape(serviceID) + "/deploys")
	if err != nil {
		return nil, fmt.Errorf("list deploys request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelopes []models.DeployEnvelope
	if err = json.Unmarshal(resp.Body(), &envelopes); err != nil {
		return nil, fmt.Errorf("decode deploys response: %w", err)
	}

	deploys := make([]models.Deploy, 0, len(envelopes))
	for _, e := range envelopes {
		deploys = append(deploys, e.Deploy)
	}

	h.logger.Info().Str("service_id", serviceID).Int("count", len(deploys)).Msg("fetched deploys")
	return deploys, nil
}

// ListJobs implements [RenderAPI]. It GETs /services/{id}/jobs and
// normalises the response through normalizeJobs, so both documented wire
// shapes come out as a plain job list.
func (h *httpRenderAdapter) ListJobs(ctx context.Context, serviceID string) ([]models.Job, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/services/" + url.PathEscape(serviceID) + "/jobs")
	if err != nil {
		return nil, fmt.Errorf("list jobs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	jobs, err := normalizeJobs(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("decode jobs response: %w", err)
	}

	h.logger.Info().Str("service_id", serviceID).Int("count", len(jobs)).Msg("fetched jobs")
	return jobs, nil
}

// Close implements [RenderAPI]. It shuts down the idle connections held by
// the underlying client.
func (h *httpRenderAdapter) Close() {
	h.client.GetClient().CloseIdleConnections()
}
