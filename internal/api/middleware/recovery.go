package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/cialfor/intake/internal/api/dto/v1/contact"
	"github.com/cialfor/intake/internal/intake"
	"github.com/cialfor/intake/internal/logging"
)

// Recovery turns a panic into the generic 500 body and logs the stack.
func Recovery(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}

				logger.Error("[PANIC] %s | %s | %s | %s | %v\n%s",
					c.Request.Method,
					c.Request.URL.Path,
					c.ClientIP(),
					c.GetString(ContextKeyRequestID),
					err,
					debug.Stack(),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, contact.NewContactResponse(intake.InternalError))
			}
		}()

		c.Next()
	}
}
