package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"lingolab/internal/observe"
	"lingolab/internal/security"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const LearnerContextKey ContextKey = "learner"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	tokens  *security.LearnerTokens
	limiter *security.RateLimiter
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(tokens *security.LearnerTokens, limiter *security.RateLimiter) *Middleware {
	return &Middleware{tokens: tokens, limiter: limiter}
}

// IdentifyLearner reads the learner cookie, issuing a fresh identity when it
// is missing or fails verification, and stores the learner ID in the context.
func (m *Middleware) IdentifyLearner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var learnerID string
		if cookie, err := r.Cookie(security.LearnerCookie); err == nil {
			id, err := m.tokens.Parse(cookie.Value)
			if err == nil {
				learnerID = id
			} else if !errors.Is(err, security.ErrInvalidToken) {
				slog.WarnContext(r.Context(), "unexpected learner token error", "err", err)
			}
		}

		if learnerID == "" {
			learnerID = security.NewLearnerID()
			token, expires, err := m.tokens.Issue(learnerID)
			if err != nil {
				respondWithError(w, r, http.StatusInternalServerError, ErrInternalServerError, "Failed to issue learner token", err)
				return
			}
			http.SetCookie(w, security.LearnerTokenCookie(r, token, expires))
			observe.Logger(r.Context()).Debug("issued learner identity", "learner", learnerID)
		}

		ctx := context.WithValue(r.Context(), LearnerContextKey, learnerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RateLimit rejects callers that exceed the configured request budget
func (m *Middleware) RateLimit(next http.HandlerFunc) http.Handler {
	return m.limiter.Limit(next, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: ErrTooManyRequests})
	})
}

// GetLearnerID retrieves the learner ID from the request context
func GetLearnerID(ctx context.Context) string {
	id, _ := ctx.Value(LearnerContextKey).(string)
	return id
}

// learnerFrom returns the learner ID or writes a 401
func learnerFrom(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := GetLearnerID(r.Context())
	if id == "" {
		respondWithError(w, r, http.StatusUnauthorized, ErrNoLearner, "", nil)
		return "", false
	}
	return id, true
}
