// Package timeouts provides centralized timeout values for handler
// operations.
//
// These timeouts are used with context.WithTimeout for database
// operations in HTTP handlers. Using centralized values keeps handler
// code consistent and makes it easy to adjust timeouts in one place.
//
// Guidelines for choosing a timeout:
//   - Ping: health checks and connectivity verification
//   - Short: simple single-document reads or lookups
//   - Medium: list queries and moderate writes
package timeouts

import "time"

const (
	ping   = 2 * time.Second
	short  = 5 * time.Second
	medium = 10 * time.Second
)

// Ping returns the timeout for health checks and connectivity
// verification.
func Ping() time.Duration { return ping }

// Short returns the timeout for simple operations like single-document
// reads. Examples: get by ID, lookup by email.
func Short() time.Duration { return short }

// Medium returns the timeout for list queries and writes.
func Medium() time.Duration { return medium }
