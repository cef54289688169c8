// Package htmlsanitize strips markup from user-supplied free text
// before it is persisted. Donation requests carry free-text fields
// (request message, full address) that end up rendered in client
// dashboards, so they are reduced to plain text on the way in.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

// policy strips all HTML elements and attributes.
var policy = bluemonday.StrictPolicy()

// Plain returns s with all HTML removed.
func Plain(s string) string {
	return policy.Sanitize(s)
}
