package api

import (
	"context"
	"net/http"

	"github.com/studyhallapp/studyhall-server/internal/http/response"
)

// sessionCookieName is the cookie carrying the session token.
const sessionCookieName = "token"

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const contextKeyPrincipal contextKey = "principal"

// Principal is the authenticated identity attached to a request.
type Principal struct {
	UserID int64
	Email  string
}

// requireAuth is middleware that validates the session cookie and attaches
// the principal to the request context. It authenticates only; ownership
// checks, where they exist, live in individual handlers.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			response.Unauthorized(w, "authorization required", s.logger)
			return
		}

		claims, err := s.tokens.VerifySessionToken(cookie.Value)
		if err != nil {
			response.Unauthorized(w, "invalid or expired token", s.logger)
			return
		}

		principal := Principal{UserID: claims.UserID, Email: claims.Email}
		ctx := context.WithValue(r.Context(), contextKeyPrincipal, principal)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// principalFrom extracts the authenticated principal from request context.
// The zero Principal means the request was not authenticated.
func principalFrom(ctx context.Context) Principal {
	if p, ok := ctx.Value(contextKeyPrincipal).(Principal); ok {
		return p
	}
	return Principal{}
}
