package domain

import "time"

// CheckStats holds the outcome of one poll iteration, for logging only.
type CheckStats struct {
	Fetched  int
	Notified bool
	Cursor   int64
	Duration time.Duration
}
