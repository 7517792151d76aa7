package adapter

import "errors"

var (
	// ErrUnauthorized is returned on HTTP 401: the API key is missing,
	// revoked, or malformed.
	ErrUnauthorized = errors.New("render api: unauthorized")
	// ErrNotFound is returned on HTTP 404, e.g. a service that was
	// deleted between the listing and the per-service lookup.
	ErrNotFound = errors.New("render api: not found")
	// ErrRateLimited is returned on HTTP 429. The caller is expected to
	// surface it and let the next poll cycle retry naturally.
	ErrRateLimited = errors.New("render api: rate limited")
)
