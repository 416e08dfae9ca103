package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
)

// ContextKey is a custom type used for keys in the context.
type ContextKey string

// ClientIPKey is the key under which the resolved client address is stored.
const ClientIPKey ContextKey = "clientIP"

// WithClientIP resolves the visitor address from X-Real-IP, the first
// X-Forwarded-For hop or the socket peer, in that order, and injects it into
// the request context.
func WithClientIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), ClientIPKey, resolveIP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClientIP returns the address injected by WithClientIP, or empty.
func ClientIP(r *http.Request) string {
	ip, _ := r.Context().Value(ClientIPKey).(string)
	return ip
}

func resolveIP(r *http.Request) string {
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
