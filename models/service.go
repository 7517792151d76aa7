package models

// ServiceType is the service kind reported by the Render API.
// The API may introduce new kinds at any time, so the type stays a
// string and unknown values are passed through untouched.
type ServiceType string

const (
	// WebService is a continuously running HTTP service with deploy history.
	WebService ServiceType = "web_service"

	// CronJob is a scheduled service. Cron services expose schedule and
	// last-run metadata instead of deploy history.
	CronJob ServiceType = "cron_job"
)

// Service is a single deployed unit owned by the account.
type Service struct {
	// ID is the Render service identifier (e.g. "srv-abc123").
	ID string `json:"id"`

	// Name is the human-readable service name shown in the dashboard.
	Name string `json:"name"`

	// Type is the service kind (web_service, cron_job, ...).
	Type ServiceType `json:"type"`

	// UpdatedAt is the ISO-8601 timestamp of the last service update.
	// Kept as a raw string: formatting (and parse failures) are a
	// presentation concern.
	UpdatedAt *string `json:"updatedAt,omitempty"`

	// DashboardURL points at the service page in the Render dashboard.
	DashboardURL string `json:"dashboardUrl,omitempty"`

	// ServiceDetails carries type-specific fields. For cron services it
	// holds the schedule and the last successful run timestamp.
	ServiceDetails ServiceDetails `json:"serviceDetails,omitempty"`
}

// ServiceDetails holds the type-specific portion of a service object.
// Only the fields the monitor reads are mapped; the API returns many more.
type ServiceDetails struct {
	// Schedule is the cron expression for cron_job services.
	Schedule string `json:"schedule,omitempty"`

	// LastSuccessfulRunAt is the ISO-8601 timestamp of the last
	// successful cron run, if any run has succeeded yet.
	LastSuccessfulRunAt *string `json:"lastSuccessfulRunAt,omitempty"`

	// URL is the public URL for web services.
	URL string `json:"url,omitempty"`
}

// IsCron reports whether the service is a scheduled (cron) service.
func (s Service) IsCron() bool {
	return s.Type == CronJob
}
