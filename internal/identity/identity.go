// Package identity derives an anonymous per-user ID for quota accounting.
//
// The ID is md5(ip + ":" + user-agent), matching the upstream scheme. It is
// deliberately weak: users behind one NAT or proxy collide and share a
// counter, and the value is trivially spoofable. Changing the scheme
// changes every existing counter, so it stays as-is pending a product
// decision.
package identity

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"net"
	"net/http"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID from the request context.
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(userIDKey).(string); ok {
		return v
	}
	return ""
}

// Middleware injects the derived user ID into the request context. It runs
// after chi's RealIP middleware so RemoteAddr reflects X-Forwarded-For.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := UserIDFor(ipFromRequest(r), r.UserAgent())
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFor computes the identity hash for an ip/user-agent pair.
func UserIDFor(ip, userAgent string) string {
	sum := md5.Sum([]byte(ip + ":" + userAgent))
	return hex.EncodeToString(sum[:])
}

func ipFromRequest(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
