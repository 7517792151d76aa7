package models

// Job is one run of a cron service.
//
// The jobs endpoint is the least stable part of the Render API surface:
// depending on the service some responses wrap each job in an envelope
// ([JobEnvelope]) and some return the job objects directly. The adapter
// normalises both shapes into plain [Job] values.
type Job struct {
	// ID is the Render job identifier (e.g. "job-abc123").
	ID string `json:"id"`

	// Status is the job state (running, succeeded, failed, ...).
	Status string `json:"status"`

	// CreatedAt is the ISO-8601 timestamp the job was enqueued.
	CreatedAt *string `json:"createdAt,omitempty"`

	// StartedAt is the ISO-8601 timestamp the job started, if it did.
	StartedAt *string `json:"startedAt,omitempty"`

	// FinishedAt is the ISO-8601 timestamp the job finished, if it did.
	FinishedAt *string `json:"finishedAt,omitempty"`
}
