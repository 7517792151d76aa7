package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFlags tests command-line parsing into a partial StructuredConfig.
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *StructuredConfig
	}{
		{
			name:     "no flags",
			args:     nil,
			expected: &StructuredConfig{},
		},
		{
			name: "once only",
			args: []string{"--once"},
			expected: &StructuredConfig{
				App: App{Once: true},
			},
		},
		{
			name: "all flags",
			args: []string{
				"--once",
				"-api-url", "https://api.render.test/v1",
				"-request-timeout", "1m",
				"-poll-interval", "30s",
			},
			expected: &StructuredConfig{
				App: App{Once: true},
				Adapter: Adapter{
					BaseURL:        "https://api.render.test/v1",
					RequestTimeout: time.Minute,
				},
				Workers: Workers{PollInterval: 30 * time.Second},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags("render-status", tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

// TestParseFlags_UnknownFlag verifies that an unrecognised flag is an error
// rather than being silently ignored.
func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags("render-status", []string{"-definitely-not-a-flag"})
	require.Error(t, err)
}

// TestParseFlags_InvalidDuration verifies that a malformed duration value
// fails parsing.
func TestParseFlags_InvalidDuration(t *testing.T) {
	_, err := parseFlags("render-status", []string{"-poll-interval", "soon"})
	require.Error(t, err)
}
