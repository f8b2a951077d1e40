package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/cialfor/intake/internal/api/dto/v1/contact"
	"github.com/cialfor/intake/internal/api/middleware"
	"github.com/cialfor/intake/internal/logging"
)

// Setup configures all routes
func Setup(router *gin.Engine, h *Handlers, logger *logging.Logger) {
	SetupHealthRoutes(router, h.Health)
	SetupContactRoutes(router, h.Contact)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, contact.ContactResponse{Error: "Not found"})
	})

	logger.Debug("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, logger *logging.Logger, opts Options) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(logger))
	router.Use(otelgin.Middleware(opts.ServiceName))
	router.Use(middleware.RequestLogger(logger, opts.TrustProxy))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS(opts.AllowedOrigins))
	router.Use(middleware.Timeout(opts.RequestTimeout))
}
