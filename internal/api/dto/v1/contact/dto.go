package contact

import "github.com/cialfor/intake/internal/intake"

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	InquiryType string `json:"inquiryType"`
	Message     string `json:"message"`
	ThreatLevel string `json:"threatLevel"`
	HPName      string `json:"hp_name"`
}

// ToSubmission converts the wire form into the core submission.
func (r ContactRequest) ToSubmission() intake.Submission {
	return intake.Submission{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Company:     r.Company,
		InquiryType: r.InquiryType,
		Message:     r.Message,
		ThreatLevel: r.ThreatLevel,
		HPName:      r.HPName,
	}
}

// ContactResponse is the body of every contact endpoint response
type ContactResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// NewContactResponse maps an outcome to its response body.
func NewContactResponse(outcome intake.Outcome) ContactResponse {
	if outcome == intake.Accepted {
		return ContactResponse{OK: true}
	}
	return ContactResponse{OK: false, Error: outcome.Message()}
}
