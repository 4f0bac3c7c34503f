package core

import (
	"fmt"
	"time"
)

// isoLayout is the timestamp form stored in the bookmarks table:
// ISO-8601 without a zone, interpreted as UTC.
const isoLayout = "2006-01-02T15:04:05"

// parseISOToEpoch converts a stored timestamp back to the epoch-seconds
// form the remote text-fetch call wants. A value that does not match the
// layout is a per-bookmark failure, never a fatal one.
func parseISOToEpoch(s string) (int64, error) {
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return 0, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t.Unix(), nil
}

// epochToISO renders a remote epoch-seconds timestamp in the stored form.
func epochToISO(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(isoLayout)
}
