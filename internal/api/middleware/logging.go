package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cialfor/intake/internal/logging"
	"github.com/cialfor/intake/internal/utils"
)

// RequestLogger logs one line per served request. The logger decides
// whether request logging is enabled (LOG_REQUESTS).
func RequestLogger(logger *logging.Logger, trustProxy bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.LogHTTPRequest(
			c.Request.Method,
			path,
			utils.GetRealIP(c.Request, trustProxy),
			c.GetString(ContextKeyRequestID),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
