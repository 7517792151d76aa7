package models

// The Render list endpoints return envelope objects: each list element
// nests the payload under a named key alongside a pagination cursor,
// e.g. [{"service": {...}, "cursor": "..."}]. The adapter unwraps these
// before anything else sees them.

// ServiceEnvelope wraps one Service in a GET /services response.
type ServiceEnvelope struct {
	Service Service `json:"service"`
	Cursor  string  `json:"cursor,omitempty"`
}

// DeployEnvelope wraps one Deploy in a GET /services/{id}/deploys response.
type DeployEnvelope struct {
	Deploy Deploy `json:"deploy"`
	Cursor string `json:"cursor,omitempty"`
}

// JobEnvelope wraps one Job in a GET /services/{id}/jobs response.
// Some job responses omit the envelope entirely; see [Job].
type JobEnvelope struct {
	Job    *Job   `json:"job,omitempty"`
	Cursor string `json:"cursor,omitempty"`
}
