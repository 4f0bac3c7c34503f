package core

import "time"

// Sync defaults
const (
	// DefaultFolder is the remote folder synced when none is given.
	DefaultFolder = "archive"
	// DefaultListLimit is the single-request bookmark cap; the API does
	// not page past it and neither do we.
	DefaultListLimit = 500
)

// HTTP client configuration
const (
	DefaultRequestTimeout = 30 * time.Second
)
