package routes

import (
	"time"

	"github.com/cialfor/intake/internal/api/handlers"
)

// Handlers contains all the route handlers
type Handlers struct {
	Health  *handlers.HealthHandler
	Contact *handlers.ContactHandler
}

// Options configures the global middleware chain
type Options struct {
	ServiceName    string
	AllowedOrigins []string
	RequestTimeout time.Duration
	TrustProxy     bool
}
