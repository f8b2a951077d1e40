package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cialfor/intake/internal/intake"
	"github.com/cialfor/intake/internal/logging"
)

// HandleAPIError logs err with request context and responds with the
// generic body for outcome. err never reaches the client.
func HandleAPIError(c *gin.Context, logger *logging.Logger, err error, outcome intake.Outcome, message string) {
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		c.ClientIP(),
		outcome.Status(),
		message,
		err,
	)
	HandleOutcome(c, outcome)
}

// WriteAPIError is HandleAPIError for plain net/http handlers.
func WriteAPIError(w http.ResponseWriter, r *http.Request, logger *logging.Logger, clientIP string, err error, outcome intake.Outcome, message string) {
	logger.LogHTTPError(r.Method, r.URL.Path, clientIP, outcome.Status(), message, err)
	WriteOutcome(w, outcome)
}
