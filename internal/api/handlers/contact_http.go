package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/cialfor/intake/internal/api/dto/v1/contact"
	"github.com/cialfor/intake/internal/intake"
	"github.com/cialfor/intake/internal/utils"
)

// NewContactHTTPHandler serves the contact endpoint on a plain net/http
// stack. It behaves exactly like ContactHandler.Submit.
func NewContactHTTPHandler(service *intake.Service, opts ContactOptions) http.Handler {
	opts = opts.withDefaults()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			utils.WriteOutcome(w, intake.MethodNotAllowed)
			return
		}

		ip := utils.GetRealIP(r, opts.TrustProxy)

		var req contact.ContactRequest
		body := http.MaxBytesReader(w, r.Body, opts.MaxBodyBytes)
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			utils.WriteAPIError(w, r, opts.Logger, ip, err, intake.InternalError, "Contact API error: invalid request body")
			return
		}

		result := service.Submit(r.Context(), req.ToSubmission(), ip)
		utils.WriteOutcome(w, result.Outcome)
	})
}
