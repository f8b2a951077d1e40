package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cialfor/intake/internal/api/handlers"
)

// ContactPath is where the contact form posts.
const ContactPath = "/api/contact"

// SetupContactRoutes configures contact form routes. Every method is routed
// to the handler, which answers non-POST requests with 405.
func SetupContactRoutes(router *gin.Engine, contact *handlers.ContactHandler) {
	router.Any(ContactPath, contact.Submit)
}
