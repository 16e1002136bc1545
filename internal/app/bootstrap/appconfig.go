// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers the
// framework-level settings (ports, TLS, logging); everything here is
// specific to the employee/task API.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI            string        // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase       string        // Database name, used when the URI has no path
	MongoMaxPoolSize    uint64        // Max connections in the driver pool
	MongoMinPoolSize    uint64        // Min idle connections kept in the pool
	MongoConnectTimeout time.Duration // Dial timeout for new connections

	// Pagination bounds for list endpoints
	DefaultPageSize int
	MaxPageSize     int

	// When true, PATCH /api/tasks/{id} rejects an assignee that does not
	// exist. Create always checks.
	VerifyAssigneeOnUpdate bool

	// Per-request store timeouts
	TimeoutShort  time.Duration // single-document operations
	TimeoutMedium time.Duration // paged lists

	// Number of employees cmd/seed tops the collection up to
	SeedEmployeeTarget int
}
