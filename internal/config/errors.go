package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration is incomplete or invalid.
var (
	// ErrMissingAPIKey indicates that no Render API token was found in the
	// environment or a .env file. The process cannot start without it.
	ErrMissingAPIKey = errors.New("RENDER_API_KEY not found in environment or .env file")
	// ErrInvalidAdapterConfigs indicates invalid API client settings
	// (for example, an empty base URL or a non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates invalid poll loop settings
	// (for example, a non-positive poll interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
