package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cialfor/intake/internal/utils"
	"github.com/cialfor/intake/internal/version"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check reports liveness. The mail provider is not probed.
func (h *HealthHandler) Check(c *gin.Context) {
	c.Header("X-Intake-Version", version.Version)
	utils.HandleSuccess(c)
}

// HTTPCheck is Check for the net/http adapter.
func (h *HealthHandler) HTTPCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("X-Intake-Version", version.Version)
	utils.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
