package tui

import "time"

const notAvailable = "N/A"

const timestampLayout = "2006-01-02 15:04:05 MST"

// FormatTimestamp renders an ISO-8601 timestamp in the local timezone as
// "YYYY-MM-DD HH:MM:SS TZ". A nil or empty input yields "N/A"; an
// unparsable input is returned verbatim rather than failing the render.
func FormatTimestamp(ts *string) string {
	if ts == nil || *ts == "" {
		return notAvailable
	}

	parsed, err := time.Parse(time.RFC3339, *ts)
	if err != nil {
		return *ts
	}

	return parsed.Local().Format(timestampLayout)
}

// clock returns the current local time rendered with the same layout as
// FormatTimestamp, for the "Last updated" header line.
func clock(now time.Time) string {
	return now.Local().Format(timestampLayout)
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}
