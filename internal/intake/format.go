package intake

import (
	"bytes"
	"html/template"
	"strings"
	"unicode"

	"github.com/emersion/go-message/mail"
)

// Placeholder is shown for optional fields left empty.
const Placeholder = "-"

const subjectPrefix = "New Contact Inquiry"

// Message is a formatted inquiry ready for delivery.
type Message struct {
	Subject string
	HTML    string
	Text    string
	// ReplyTo is the submitter's address, or empty when it is not a single
	// parseable address.
	ReplyTo string
}

var htmlBody = template.Must(template.New("inquiry").Parse(`
<h2>New Contact Inquiry</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Company:</strong> {{.Company}}</p>
<p><strong>Inquiry Type:</strong> {{.InquiryType}}</p>
<p><strong>Threat Level:</strong> {{.ThreatLevel}}</p>
<hr/>
<p><strong>Message:</strong></p>
<p>{{range $i, $line := .MessageLines}}{{if $i}}<br/>{{end}}{{$line}}{{end}}</p>
<hr/>
<p style="font-size:12px;color:#666">Sent from contact form (IP: {{.IP}})</p>
`))

type htmlFields struct {
	Name, Email, Phone, Company, InquiryType, ThreatLevel, IP string
	MessageLines                                             []string
}

// FormatMessage renders the subject and both bodies for a validated
// submission. Every user value is HTML-escaped in the HTML body.
func FormatMessage(sub Submission, ip string) Message {
	name := strings.TrimSpace(sub.Name)
	email := strings.TrimSpace(sub.Email)
	inquiryType := strings.TrimSpace(sub.InquiryType)
	phone := orPlaceholder(sub.Phone)
	company := orPlaceholder(sub.Company)
	threatLevel := orPlaceholder(sub.ThreatLevel)
	message := strings.ReplaceAll(strings.TrimSpace(sub.Message), "\r\n", "\n")
	footer := "Sent from contact form (IP: " + ip + ")"

	var buf bytes.Buffer
	// The template is static and every field is a string, so Execute cannot fail.
	_ = htmlBody.Execute(&buf, htmlFields{
		Name:         name,
		Email:        email,
		Phone:        phone,
		Company:      company,
		InquiryType:  inquiryType,
		ThreatLevel:  threatLevel,
		IP:           ip,
		MessageLines: strings.Split(message, "\n"),
	})

	text := strings.Join([]string{
		"Name: " + name,
		"Email: " + email,
		"Phone: " + phone,
		"Company: " + company,
		"Inquiry Type: " + inquiryType,
		"Threat Level: " + threatLevel,
		"",
		"Message:",
		message,
		"",
		footer,
	}, "\n")

	return Message{
		Subject: Subject(inquiryType, name),
		HTML:    buf.String(),
		Text:    text,
		ReplyTo: ReplyTo(email),
	}
}

// Subject joins the fixed prefix with the header-safe inquiry type and name.
func Subject(inquiryType, name string) string {
	return subjectPrefix + " — " + SanitizeHeader(inquiryType) + " — " + SanitizeHeader(name)
}

// SanitizeHeader makes s safe to place in a single header line: CR and LF
// become spaces, other control characters are dropped and runs of
// whitespace collapse to one space.
func SanitizeHeader(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\r' || r == '\n' || r == '\t':
			b.WriteRune(' ')
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ReplyTo returns the bare address of raw when it parses as exactly one
// mailbox, else "".
func ReplyTo(raw string) string {
	cleaned := SanitizeHeader(raw)
	if cleaned == "" || cleaned != strings.TrimSpace(raw) {
		return ""
	}
	addr, err := mail.ParseAddress(cleaned)
	if err != nil {
		return ""
	}
	return addr.Address
}

func orPlaceholder(s string) string {
	if v := strings.TrimSpace(s); v != "" {
		return v
	}
	return Placeholder
}
