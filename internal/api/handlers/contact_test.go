package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cialfor/intake/internal/api/dto/v1/contact"
	"github.com/cialfor/intake/internal/intake"
	"github.com/cialfor/intake/internal/mailer"
)

const validBody = `{"name":"Ada","email":"ada@example.com","inquiryType":"pentest","message":"Hello\nthere","phone":"","hp_name":""}`

type recordingSender struct {
	mu     sync.Mutex
	err    error
	emails []mailer.Email
}

func (s *recordingSender) Send(_ context.Context, email mailer.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emails = append(s.emails, email)
	return s.err
}

func (s *recordingSender) sent() []mailer.Email {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]mailer.Email(nil), s.emails...)
}

func newTestService(sender mailer.Sender) *intake.Service {
	return intake.NewService(
		intake.NewRateLimiter(intake.RateLimitConfig{Window: 10 * time.Minute, Max: 5, MaxKeys: 100}),
		intake.Router{InfoAddress: "info@cialfor.com", SalesAddress: "sales@cialfor.com"},
		intake.NewDispatcher(sender, intake.DispatchConfig{From: "Cialfor Contact <no-reply@contact.cialfor.com>"}),
	)
}

type adapterFactory func(*intake.Service, ContactOptions) http.Handler

func adapters() map[string]adapterFactory {
	gin.SetMode(gin.TestMode)

	return map[string]adapterFactory{
		"gin": func(svc *intake.Service, opts ContactOptions) http.Handler {
			router := gin.New()
			router.Any("/api/contact", NewContactHandler(svc, opts).Submit)
			return router
		},
		"stdlib": func(svc *intake.Service, opts ContactOptions) http.Handler {
			return NewContactHTTPHandler(svc, opts)
		},
	}
}

func doRequest(h http.Handler, method, body string, headers map[string]string) (*httptest.ResponseRecorder, contact.ContactResponse) {
	req := httptest.NewRequest(method, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "192.0.2.1:40000"
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp contact.ContactResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func forEachAdapter(t *testing.T, fn func(t *testing.T, build adapterFactory)) {
	for name, build := range adapters() {
		t.Run(name, func(t *testing.T) { fn(t, build) })
	}
}

func TestContactMethodNotAllowed(t *testing.T) {
	forEachAdapter(t, func(t *testing.T, build adapterFactory) {
		sender := &recordingSender{}
		h := build(newTestService(sender), ContactOptions{})

		bodies := []string{
			"{not json",
			`{"hp_name":"x","name":"Ada","email":"ada@example.com","inquiryType":"general","message":"hi"}`,
		}
		for _, body := range bodies {
			for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
				w, resp := doRequest(h, method, body, nil)

				assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method)
				assert.Equal(t, contact.ContactResponse{OK: false, Error: "Method not allowed"}, resp)
				assert.Equal(t, "POST", w.Header().Get("Allow"))
			}
		}
		assert.Empty(t, sender.sent())
	})
}

func TestContactMalformedBody(t *testing.T) {
	forEachAdapter(t, func(t *testing.T, build adapterFactory) {
		sender := &recordingSender{}
		h := build(newTestService(sender), ContactOptions{})

		for _, body := range []string{"{not json", "", `{"name": 42}`, `{"name":42,"hp_name":"bot"}`} {
			w, resp := doRequest(h, http.MethodPost, body, nil)

			assert.Equal(t, http.StatusInternalServerError, w.Code, "body %q", body)
			assert.Equal(t, contact.ContactResponse{OK: false, Error: "Internal error"}, resp)
		}
		assert.Empty(t, sender.sent())
	})
}

func TestContactBodyTooLarge(t *testing.T) {
	forEachAdapter(t, func(t *testing.T, build adapterFactory) {
		sender := &recordingSender{}
		h := build(newTestService(sender), ContactOptions{MaxBodyBytes: 64})

		body := `{"name":"Ada","email":"ada@example.com","inquiryType":"pentest","message":"` + strings.Repeat("x", 200) + `"}`
		w, resp := doRequest(h, http.MethodPost, body, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal error", resp.Error)
		assert.Empty(t, sender.sent())
	})
}

func TestContactAccepted(t *testing.T) {
	forEachAdapter(t, func(t *testing.T, build adapterFactory) {
		sender := &recordingSender{}
		h := build(newTestService(sender), ContactOptions{TrustProxy: true})

		w, resp := doRequest(h, http.MethodPost, validBody, map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.1"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, contact.ContactResponse{OK: true}, resp)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())

		sent := sender.sent()
		require.Len(t, sent, 1)
		assert.Equal(t, "sales@cialfor.com", sent[0].To)
		assert.Equal(t, "ada@example.com", sent[0].ReplyTo)
		assert.Equal(t, "New Contact Inquiry — pentest — Ada", sent[0].Subject)
		assert.Contains(t, sent[0].HTML, "Hello<br/>there")
		assert.Contains(t, sent[0].HTML, "(IP: 203.0.113.5)")
	})
}

func TestContactRoutesInfoCategories(t *testing.T) {
	forEachAdapter(t, func(t *testing.T, build adapterFactory) {
		sender := &recordingSender{}
		h := build(newTestService(sender), ContactOptions{})

		for _, inquiryType := range []string{"general", "partnership"} {
			body := `{"name":"Ada","email":"ada@example.com","inquiryType":"` + inquiryType + `","message":"hi"}`
			w, _ := doRequest(h, http.MethodPost, body, nil)
			require.Equal(t, http.StatusOK, w.Code)
		}

		sent := sender.sent()
		require.Len(t, sent, 2)
		for _, email := range sent {
			assert.Equal(t, "info@cialfor.com", email.To)
		}
	})
}

func TestContactHoneypot(t *testing.T) {
	forEachAdapter(t, func(t *testing.T, build adapterFactory) {
		sender := &recordingSender{}
		h := build(newTestService(sender), ContactOptions{})

		w, resp := doRequest(h, http.MethodPost, `{"hp_name":"i am a bot"}`, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, contact.ContactResponse{OK: true}, resp)
		assert.Empty(t, sender.sent())
	})
}

func TestContactRateLimit(t *testing.T) {
	forEachAdapter(t, func(t *testing.T, build adapterFactory) {
		sender := &recordingSender{}
		h := build(newTestService(sender), ContactOptions{TrustProxy: true})
		headers := map[string]string{"X-Forwarded-For": "203.0.113.5"}

		for i := 0; i < 5; i++ {
			w, _ := doRequest(h, http.MethodPost, validBody, headers)
			require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
		}

		w, resp := doRequest(h, http.MethodPost, validBody, headers)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, contact.ContactResponse{OK: false, Error: "Too many requests"}, resp)
		assert.Len(t, sender.sent(), 5)

		// A different client ip has its own budget.
		w, _ = doRequest(h, http.MethodPost, validBody, map[string]string{"X-Forwarded-For": "203.0.113.6"})
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestContactMissingFields(t *testing.T) {
	forEachAdapter(t, func(t *testing.T, build adapterFactory) {
		sender := &recordingSender{}
		h := build(newTestService(sender), ContactOptions{})

		for _, body := range []string{
			`{}`,
			`null`,
			`{"name":"Ada","email":"ada@example.com","inquiryType":"pentest","message":"   "}`,
			`{"name":"Ada","inquiryType":"pentest","message":"hi"}`,
		} {
			w, resp := doRequest(h, http.MethodPost, body, map[string]string{"X-Real-IP": "198.51.100.1"})

			assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
			assert.Equal(t, contact.ContactResponse{OK: false, Error: "Missing required fields"}, resp)
		}
		assert.Empty(t, sender.sent())
	})
}

func TestContactDeliveryFailureIsGeneric(t *testing.T) {
	forEachAdapter(t, func(t *testing.T, build adapterFactory) {
		sender := &recordingSender{err: errors.New("resend: API key re_live_123 is invalid")}
		h := build(newTestService(sender), ContactOptions{})

		w, resp := doRequest(h, http.MethodPost, validBody, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, contact.ContactResponse{OK: false, Error: "Internal error"}, resp)
		assert.NotContains(t, w.Body.String(), "re_live_123")
		assert.Len(t, sender.sent(), 1)
	})
}
