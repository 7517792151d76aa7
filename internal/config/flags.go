package config

import (
	"flag"
	"time"
)

// parseFlags parses the command-line arguments into a partial
// [StructuredConfig]. Unset flags leave their fields at zero so the merge
// step keeps the values from the environment.
//
// Flags:
//
//	--once            run single-shot: fetch once, print, exit
//	-api-url          Render API base URL
//	-request-timeout  per-request HTTP timeout (e.g., "30s", "1m")
//	-poll-interval    live mode refresh interval (e.g., "10s")
func parseFlags(prog string, args []string) (*StructuredConfig, error) {
	var once bool
	var apiURL string
	var requestTimeout time.Duration
	var pollInterval time.Duration

	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.BoolVar(&once, "once", false, "Run once and exit (no live updates)")
	fs.StringVar(&apiURL, "api-url", "", "Render API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Live refresh interval (e.g., 10s)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Once: once,
		},
		Adapter: Adapter{
			BaseURL:        apiURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			PollInterval: pollInterval,
		},
	}, nil
}
