package models

import "time"

// Snapshot is one assembled poll result: everything the renderer needs
// for a single refresh. Snapshots are transient — each poll cycle builds
// a fresh one and the previous one is discarded.
type Snapshot struct {
	// Rows holds one entry per non-cron service, in API order.
	Rows []ServiceRow

	// CronRows holds one entry per cron service. Rendered as a separate
	// table because cron services have no deploy history.
	CronRows []CronRow

	// TakenAt is when the snapshot was assembled (local time).
	TakenAt time.Time

	// Err is set when the top-level services listing itself failed.
	// Rows and CronRows are empty in that case.
	Err error
}

// Empty reports whether the snapshot carries no services and no error.
func (s Snapshot) Empty() bool {
	return s.Err == nil && len(s.Rows) == 0 && len(s.CronRows) == 0
}

// ServiceRow is one main-table row for a non-cron service.
type ServiceRow struct {
	ID           string
	Name         string
	Type         ServiceType
	DashboardURL string

	// DeployStatus is the status of the latest deploy, or "N/A" when the
	// service has no deploys yet.
	DeployStatus string

	// DeployedAt is the latest deploy's creation timestamp, raw ISO-8601.
	DeployedAt *string

	// UpdatedAt is the service's own update timestamp, raw ISO-8601.
	UpdatedAt *string

	// FetchErr records a failed deploy lookup for this service only.
	// The row still renders; the status cell degrades to an error marker.
	FetchErr error
}

// CronRow is one cron-table row for a scheduled service.
type CronRow struct {
	ID           string
	Name         string
	DashboardURL string
	Schedule     string

	// LastRun is the last successful run timestamp, raw ISO-8601,
	// nil when the job has never succeeded.
	LastRun *string

	// Status is synthesised from LastRun: "succeeded" when a successful
	// run exists, "N/A" otherwise.
	Status string
}
