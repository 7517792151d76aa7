package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestStatusColor_Mapping pins the full mapping table down.
func TestStatusColor_Mapping(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"live", "2"},
		{"succeeded", "2"},
		{"success", "2"},
		{"building", "3"},
		{"deploying", "3"},
		{"running", "3"},
		{"build_failed", "1"},
		{"failed", "1"},
		{"canceled", "1"},
		{"unknown", "7"},
		{"update_in_progress", "7"},
		{"", "7"},
		{"N/A", "7"},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, string(statusColor(tt.status)))
		})
	}
}

// TestStatusColor_CaseInsensitive verifies the mapping ignores case.
func TestStatusColor_CaseInsensitive(t *testing.T) {
	assert.Equal(t, statusColor("live"), statusColor("LIVE"))
	assert.Equal(t, statusColor("build_failed"), statusColor("Build_Failed"))
	assert.Equal(t, statusColor("running"), statusColor("RUNNING"))
}
