// Package intake is the transport-independent core of the contact endpoint:
// it filters, rate limits, validates, routes, formats and dispatches one
// inquiry at a time. HTTP adapters translate a request into Submit and a
// Result back into a response.
package intake

// Submission is one contact-form payload. It is never stored.
type Submission struct {
	Name        string `json:"name" validate:"notblank"`
	Email       string `json:"email" validate:"notblank"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	InquiryType string `json:"inquiryType" validate:"notblank"`
	Message     string `json:"message" validate:"notblank"`
	ThreatLevel string `json:"threatLevel"`

	// Honeypot; real users never see or fill it.
	HPName string `json:"hp_name"`
}
