package utils

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cialfor/intake/internal/api/dto/v1/contact"
	"github.com/cialfor/intake/internal/intake"
)

// HandleOutcome writes the status and body for outcome.
func HandleOutcome(c *gin.Context, outcome intake.Outcome) {
	c.JSON(outcome.Status(), contact.NewContactResponse(outcome))
}

// HandleSuccess sends {"ok":true}
func HandleSuccess(c *gin.Context) {
	HandleOutcome(c, intake.Accepted)
}

// WriteOutcome is HandleOutcome for plain net/http handlers.
func WriteOutcome(w http.ResponseWriter, outcome intake.Outcome) {
	WriteJSON(w, outcome.Status(), contact.NewContactResponse(outcome))
}

// WriteJSON encodes v as the response body.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
