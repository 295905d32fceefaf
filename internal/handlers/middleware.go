package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"eduquest/internal/security"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// UsernameContextKey holds the authenticated username.
	UsernameContextKey ContextKey = "username"
	// SessionIDContextKey holds the session token ID, used to derive
	// CSRF tokens.
	SessionIDContextKey ContextKey = "sessionID"
)

// Middleware holds dependencies for middleware functions
type Middleware struct {
	sessions          *security.SessionManager
	csrf              *security.CSRFGenerator
	limiter           *security.RateLimiter
	adminUser         string
	adminPasswordHash string
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(sessions *security.SessionManager, csrf *security.CSRFGenerator, limiter *security.RateLimiter, adminUser, adminPasswordHash string) *Middleware {
	return &Middleware{
		sessions:          sessions,
		csrf:              csrf,
		limiter:           limiter,
		adminUser:         adminUser,
		adminPasswordHash: adminPasswordHash,
	}
}

// RequireAuth is middleware that requires a valid session cookie
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(security.SessionCookieName)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "Authentication required", nil)
			return
		}

		username, sessionID, err := m.sessions.Validate(cookie.Value)
		if err != nil {
			// Clear invalid cookie
			http.SetCookie(w, security.CreateDeleteCookie(r))
			respondWithError(w, http.StatusUnauthorized, "Invalid or expired session", nil)
			return
		}

		ctx := context.WithValue(r.Context(), UsernameContextKey, username)
		ctx = context.WithValue(ctx, SessionIDContextKey, sessionID)
		next(w, r.WithContext(ctx))
	}
}

// CSRFProtect verifies the X-CSRF-Token header against the token
// derived from the caller's session.
func (m *Middleware) CSRFProtect(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := SessionIDFromContext(r.Context())
		token := r.Header.Get("X-CSRF-Token")
		if !m.csrf.ValidateToken(sessionID, token) {
			respondWithError(w, http.StatusForbidden, "Invalid CSRF token", nil)
			return
		}
		next(w, r)
	}
}

// RateLimit throttles requests per client IP
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := security.GetClientIP(r)
		if !m.limiter.Allow(ip) {
			respondWithError(w, http.StatusTooManyRequests, "Too many requests, please try again later", nil)
			return
		}
		next(w, r)
	}
}

// RequireAdmin guards operator routes with basic auth checked against
// the configured bcrypt hash. Routes are disabled entirely when no
// hash is configured.
func (m *Middleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if m.adminPasswordHash == "" {
			respondWithError(w, http.StatusNotFound, "Not found", nil)
			return
		}

		user, pass, ok := r.BasicAuth()
		if !ok || user != m.adminUser || !security.CheckPassword(pass, m.adminPasswordHash) {
			w.Header().Set("WWW-Authenticate", `Basic realm="eduquest admin"`)
			respondWithError(w, http.StatusUnauthorized, "Authentication required", nil)
			return
		}
		next(w, r)
	}
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("[HTTP] %s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// UsernameFromContext retrieves the authenticated username from the
// request context.
func UsernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(UsernameContextKey).(string)
	return username
}

// SessionIDFromContext retrieves the session token ID from the request
// context.
func SessionIDFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(SessionIDContextKey).(string)
	return sessionID
}
