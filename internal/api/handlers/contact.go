package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cialfor/intake/internal/api/dto/v1/contact"
	"github.com/cialfor/intake/internal/intake"
	"github.com/cialfor/intake/internal/logging"
	"github.com/cialfor/intake/internal/utils"
)

const defaultMaxBodyBytes = 64 << 10

// ContactOptions are shared by the gin and net/http contact handlers.
type ContactOptions struct {
	MaxBodyBytes int64
	TrustProxy   bool
	Logger       *logging.Logger
}

func (o ContactOptions) withDefaults() ContactOptions {
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = defaultMaxBodyBytes
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	return o
}

type ContactHandler struct {
	service *intake.Service
	opts    ContactOptions
}

func NewContactHandler(service *intake.Service, opts ContactOptions) *ContactHandler {
	return &ContactHandler{service: service, opts: opts.withDefaults()}
}

// Submit is registered for every method so that non-POST requests get the
// JSON 405 body instead of gin's plain 404.
func (h *ContactHandler) Submit(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.Header("Allow", http.MethodPost)
		utils.HandleOutcome(c, intake.MethodNotAllowed)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.opts.MaxBodyBytes)

	var req contact.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleAPIError(c, h.opts.Logger, err, intake.InternalError, "Contact API error: invalid request body")
		return
	}

	ip := utils.GetRealIP(c.Request, h.opts.TrustProxy)
	result := h.service.Submit(c.Request.Context(), req.ToSubmission(), ip)
	utils.HandleOutcome(c, result.Outcome)
}
