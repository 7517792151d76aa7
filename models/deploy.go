package models

// Deploy is one release/build event of a non-cron service.
type Deploy struct {
	// ID is the Render deploy identifier (e.g. "dep-abc123").
	ID string `json:"id"`

	// Status is the deploy state as reported by the API. Known values
	// include live, building, deploying, succeeded, success, running,
	// build_failed, failed and canceled, but the field is free-form.
	Status string `json:"status"`

	// CreatedAt is the ISO-8601 timestamp the deploy was created.
	CreatedAt *string `json:"createdAt,omitempty"`

	// FinishedAt is the ISO-8601 timestamp the deploy finished, if it has.
	FinishedAt *string `json:"finishedAt,omitempty"`
}
