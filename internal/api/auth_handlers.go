package api

import (
	"net/http"

	"github.com/studyhallapp/studyhall-server/internal/api/dto"
	"github.com/studyhallapp/studyhall-server/internal/auth"
	"github.com/studyhallapp/studyhall-server/internal/http/response"
)

// RegisterRequest is the request body for user registration.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=1024"`
}

// LoginRequest is the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,max=254"`
	Password string `json:"password" validate:"required,max=1024"`
}

// handleRegister creates a new user account.
// POST /api/auth/register.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		response.BadRequest(w, "invalid request body", s.logger)
		return
	}
	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	user, err := s.store.CreateUser(ctx, req.Name, req.Email, hash)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	s.logger.Info("User registered", "user_id", user.ID)
	response.Created(w, dto.FormatUser(user), s.logger)
}

// handleLogin authenticates a user and sets the session cookie.
// POST /api/auth/login.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := decodeBody(r, &req); err != nil {
		response.BadRequest(w, "invalid request body", s.logger)
		return
	}
	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		// Same message as a wrong password: don't reveal whether the
		// email exists.
		response.Unauthorized(w, "invalid credentials", s.logger)
		return
	}

	valid, err := auth.VerifyPassword(user.PasswordHash, req.Password)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	if !valid {
		response.Unauthorized(w, "invalid credentials", s.logger)
		return
	}

	token, err := s.tokens.GenerateSessionToken(user)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	s.setSessionCookie(w, token)
	s.logger.Info("User logged in", "user_id", user.ID)
	response.Success(w, dto.FormatUser(user), s.logger)
}

// handleLogout clears the session cookie. The token itself simply expires;
// there is no server-side session state to revoke.
// POST /api/auth/logout.
func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	s.clearSessionCookie(w)
	response.Deleted(w, s.logger)
}

// handleGetCurrentUser returns the authenticated user's profile.
// GET /api/auth/me.
func (s *Server) handleGetCurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := principalFrom(ctx)

	user, err := s.store.GetUser(ctx, principal.UserID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, dto.FormatUser(user), s.logger)
}

// setSessionCookie attaches the session token as an HTTP-only cookie.
func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.cfg.SessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   s.cfg.Production,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearSessionCookie expires the session cookie immediately.
func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cfg.Production,
		SameSite: http.SameSiteStrictMode,
	})
}
