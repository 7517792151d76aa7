package adapter

import (
	"encoding/json"

	"github.com/MKhiriev/render-status/models"
)

// normalizeJobs maps a jobs-endpoint response body to a canonical job list.
//
// Two wire shapes are part of the client contract:
//
//	[{"job": {"id": ...}, "cursor": ...}]   envelope-wrapped
//	[{"id": ...}]                           flat
//
// Each element is decoded as an envelope first; elements whose envelope key
// is absent are re-decoded as bare jobs. The two shapes may not be mixed
// meaningfully by the API, but handling them per element keeps the function
// total over anything it has been observed to return.
func normalizeJobs(body []byte) ([]models.Job, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	jobs := make([]models.Job, 0, len(raw))
	for _, item := range raw {
		var envelope models.JobEnvelope
		if err := json.Unmarshal(item, &envelope); err == nil && envelope.Job != nil {
			jobs = append(jobs, *envelope.Job)
			continue
		}

		var job models.Job
		if err := json.Unmarshal(item, &job); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}
