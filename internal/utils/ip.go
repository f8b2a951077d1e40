package utils

import (
	"net"
	"net/http"
	"strings"
)

// UnknownIP is used when no client address can be determined.
const UnknownIP = "unknown"

// GetRealIP extracts the client IP. With trustProxy it prefers the leftmost
// X-Forwarded-For entry, then X-Real-IP, which is only safe behind a proxy
// that overwrites those headers.
func GetRealIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		// X-Forwarded-For can be a comma-separated list
		// Format: client, proxy1, proxy2, ...
		if forwardedFor := r.Header.Get("X-Forwarded-For"); forwardedFor != "" {
			if clientIP := strings.TrimSpace(strings.Split(forwardedFor, ",")[0]); clientIP != "" {
				return clientIP
			}
		}

		if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
			return ip
		}
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return UnknownIP
}
