package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/farrand/iotcore/internal/auth"
)

// minPasswordLength is the shortest password accepted at registration.
const minPasswordLength = 8

// registerRequest is the request body for POST /register.
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// tokenResponse is the response body for POST /token.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// handleRegister creates a new user account.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeBadRequest(w, "name, email, and password are required")
		return
	}
	if !strings.Contains(req.Email, "@") {
		writeBadRequest(w, "invalid email address")
		return
	}
	if len(req.Password) < minPasswordLength {
		writeBadRequest(w, "password must be at least 8 characters")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("hash password failed", "error", err)
		writeInternalError(w, "failed to register user")
		return
	}

	user := &auth.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}

	// The unique index on email is the sole arbiter of duplicates; a
	// pre-check would only race against concurrent registrations.
	if err := s.userRepo.Create(r.Context(), user); err != nil {
		if errors.Is(err, auth.ErrEmailExists) {
			writeConflict(w, "email already registered")
			return
		}
		s.logger.Error("create user failed", "error", err)
		writeInternalError(w, "failed to register user")
		return
	}

	s.logger.Info("user registered", "user_id", user.ID, "email", user.Email)

	writeJSON(w, http.StatusOK, user)
}

// handleToken authenticates a user and issues a bearer token.
//
// The endpoint consumes form-encoded credentials with username carrying
// the email address, matching the OAuth2 password flow shape.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeBadRequest(w, "invalid form body")
		return
	}

	email := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		writeBadRequest(w, "username and password are required")
		return
	}

	user, err := s.userRepo.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			// Same response as a wrong password so account existence
			// does not leak.
			writeUnauthorized(w, "incorrect email or password")
			return
		}
		s.logger.Error("get user for login failed", "error", err)
		writeInternalError(w, "failed to authenticate")
		return
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		writeUnauthorized(w, "incorrect email or password")
		return
	}

	token, err := auth.GenerateAccessToken(user, s.cfg.Auth.Secret, s.cfg.TokenTTL())
	if err != nil {
		s.logger.Error("generate token failed", "error", err)
		writeInternalError(w, "failed to generate token")
		return
	}

	s.logger.Info("token issued", "user_id", user.ID)

	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
