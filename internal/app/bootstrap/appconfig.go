// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, CORS, request limits); AppConfig is everything specific to
// BloodLink. Values come from environment variables (BLOODLINK_*),
// config files, or command-line flags, loaded in LoadConfig.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session token configuration
	TokenSecret  string        // HMAC secret for signing session tokens
	TokenTTL     time.Duration // Lifetime of issued tokens (default: 1h)
	CookieDomain string        // Cookie domain (blank means current host)
}
