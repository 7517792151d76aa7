// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied by [StructuredConfig.applyDefaults] for every
// field the user has not set explicitly. The API key has no default.
const (
	DefaultBaseURL        = "https://api.render.com/v1"
	DefaultRequestTimeout = 30 * time.Second
	DefaultPollInterval   = 10 * time.Second
	DefaultDeployLookback = 1
)

// StructuredConfig is the top-level configuration container for the
// render-status monitor. It is populated by merging values from an optional
// .env file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the API credential and the
	// run mode.
	App App `envPrefix:"RENDER_"`

	// Adapter holds outbound HTTP settings for the Render API client.
	Adapter Adapter `envPrefix:"RENDER_"`

	// Workers holds settings for the background poll loop.
	Workers Workers `envPrefix:"RENDER_"`
}

// App holds application-level configuration.
type App struct {
	// APIKey is the Render API token sent as a bearer credential on every
	// request. Required; there is no default.
	// Env: RENDER_API_KEY
	APIKey string `env:"API_KEY"`

	// Once selects single-shot mode: fetch, print, exit. The live
	// dashboard is the default. Usually set via the --once flag.
	// Env: RENDER_ONCE
	Once bool `env:"ONCE"`
}

// Adapter holds network settings used by the API client.
type Adapter struct {
	// BaseURL is the Render REST endpoint, including the version prefix
	// (e.g. "https://api.render.com/v1").
	// Env: RENDER_API_URL
	BaseURL string `env:"API_URL"`

	// RequestTimeout bounds every outbound request (e.g. "30s").
	// Env: RENDER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background poll loop settings.
type Workers struct {
	// PollInterval is how long the live dashboard waits between
	// refreshes (e.g. "10s").
	// Env: RENDER_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// DeployLookback is how many deploys to request per service when
	// building the status table. The table only shows the latest one.
	// Env: RENDER_DEPLOY_LOOKBACK
	DeployLookback int `env:"DEPLOY_LOOKBACK"`
}

// GetConfig loads, merges, defaults, and validates the monitor
// configuration from all available sources.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation (notably a missing
// RENDER_API_KEY).
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotenv().
		withEnv().
		withFlags().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = DefaultBaseURL
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.PollInterval <= 0 {
		cfg.Workers.PollInterval = DefaultPollInterval
	}
	if cfg.Workers.DeployLookback <= 0 {
		cfg.Workers.DeployLookback = DefaultDeployLookback
	}
}
