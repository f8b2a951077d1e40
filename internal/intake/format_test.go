package intake

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMessage(t *testing.T) {
	sub := validSubmission()
	sub.Company = "Analytical Engines Ltd"

	msg := FormatMessage(sub, "198.51.100.4")

	assert.Equal(t, "New Contact Inquiry — pentest — Ada Lovelace", msg.Subject)
	assert.Equal(t, "ada@example.com", msg.ReplyTo)

	assert.Contains(t, msg.HTML, "<p><strong>Name:</strong> Ada Lovelace</p>")
	assert.Contains(t, msg.HTML, "<p><strong>Phone:</strong> -</p>")
	assert.Contains(t, msg.HTML, "<p><strong>Company:</strong> Analytical Engines Ltd</p>")
	assert.Contains(t, msg.HTML, "<p><strong>Threat Level:</strong> -</p>")
	assert.Contains(t, msg.HTML, "<p>We need an assessment.<br/>Soon, please.</p>")
	assert.Contains(t, msg.HTML, "Sent from contact form (IP: 198.51.100.4)")

	assert.Equal(t, strings.Join([]string{
		"Name: Ada Lovelace",
		"Email: ada@example.com",
		"Phone: -",
		"Company: Analytical Engines Ltd",
		"Inquiry Type: pentest",
		"Threat Level: -",
		"",
		"Message:",
		"We need an assessment.",
		"Soon, please.",
		"",
		"Sent from contact form (IP: 198.51.100.4)",
	}, "\n"), msg.Text)
}

func TestFormatMessageEscapesHTML(t *testing.T) {
	sub := validSubmission()
	sub.Name = `<script>alert("x")</script>`
	sub.Message = "line one\r\n<b>bold</b>"

	msg := FormatMessage(sub, "ip")

	assert.NotContains(t, msg.HTML, "<script>")
	assert.NotContains(t, msg.HTML, "<b>bold</b>")
	assert.Contains(t, msg.HTML, "&lt;script&gt;")
	assert.Contains(t, msg.HTML, "line one<br/>&lt;b&gt;bold&lt;/b&gt;")
	// The text body stays raw.
	assert.Contains(t, msg.Text, "<b>bold</b>")
}

func TestSubjectStripsHeaderInjection(t *testing.T) {
	sub := validSubmission()
	sub.Name = "Mallory\r\nBcc: victim@example.com"
	sub.InquiryType = "general\nX-Injected: 1"

	msg := FormatMessage(sub, "ip")

	assert.NotContains(t, msg.Subject, "\r")
	assert.NotContains(t, msg.Subject, "\n")
	assert.Equal(t, "New Contact Inquiry — general X-Injected: 1 — Mallory Bcc: victim@example.com", msg.Subject)
}

func TestSanitizeHeader(t *testing.T) {
	tests := map[string]string{
		"plain":             "plain",
		"  padded  ":        "padded",
		"a\r\nb":            "a b",
		"tab\there":         "tab here",
		"nul\x00byte":       "nulbyte",
		"bell\x07 and\x7f":  "bell and",
		"multi   space":     "multi space",
		"ünïcödé — ok":      "ünïcödé — ok",
	}
	for in, want := range tests {
		assert.Equal(t, want, SanitizeHeader(in), "input %q", in)
	}
}

func TestReplyTo(t *testing.T) {
	tests := map[string]string{
		"ada@example.com":                   "ada@example.com",
		"  ada@example.com ":                "ada@example.com",
		"Ada <ada@example.com>":             "ada@example.com",
		"not-an-email":                      "",
		"a@example.com, b@example.com":      "",
		"ada@example.com\r\nBcc: x@evil.io": "",
		"":                                  "",
	}
	for in, want := range tests {
		assert.Equal(t, want, ReplyTo(in), "input %q", in)
	}
}

func TestFromAddress(t *testing.T) {
	assert.Equal(t, "Cialfor Contact <no-reply@contact.cialfor.com>", FromAddress("Cialfor Contact", "no-reply@contact.cialfor.com"))
	assert.Equal(t, "no-reply@contact.cialfor.com", FromAddress("", "no-reply@contact.cialfor.com"))
	assert.Equal(t, "Evil Bcc: x <a@b.c>", FromAddress("Evil\r\nBcc: x", "a@b.c"))
}
