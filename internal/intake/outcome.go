package intake

import "net/http"

// Outcome is the terminal state of one request.
type Outcome int

const (
	Accepted Outcome = iota
	MethodNotAllowed
	TooManyRequests
	MissingFields
	InternalError
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case MethodNotAllowed:
		return "method_not_allowed"
	case TooManyRequests:
		return "too_many_requests"
	case MissingFields:
		return "missing_fields"
	default:
		return "internal_error"
	}
}

// Status is the HTTP status code for the outcome.
func (o Outcome) Status() int {
	switch o {
	case Accepted:
		return http.StatusOK
	case MethodNotAllowed:
		return http.StatusMethodNotAllowed
	case TooManyRequests:
		return http.StatusTooManyRequests
	case MissingFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Message is the client-facing error text. Empty for Accepted.
func (o Outcome) Message() string {
	switch o {
	case Accepted:
		return ""
	case MethodNotAllowed:
		return "Method not allowed"
	case TooManyRequests:
		return "Too many requests"
	case MissingFields:
		return "Missing required fields"
	default:
		return "Internal error"
	}
}

// Result is what Submit reports back to an adapter.
type Result struct {
	Outcome Outcome
	// Missing lists the blank required fields when Outcome is MissingFields.
	// Submit logs it at debug level. It is for callers and tests only and is
	// never written to the client, which only sees the generic message.
	Missing []string
	// Suppressed is set when the honeypot tripped. The caller still sees
	// Accepted.
	Suppressed bool
}
