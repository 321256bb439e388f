package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jvokurka/tripbook/internal/database"
	"github.com/jvokurka/tripbook/internal/web/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	users          database.UserStore
	sessionManager *middleware.SessionManager
	log            zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(users database.UserStore, sessionManager *middleware.SessionManager, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		users:          users,
		sessionManager: sessionManager,
		log:            log,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		respondError(w, http.StatusBadRequest, "valid email is required")
		return
	}
	if len(req.Password) < 8 {
		respondError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	existing, err := h.users.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		h.log.Error().Err(err).Msg("register: lookup failed")
		respondError(w, http.StatusInternalServerError, "registration failed")
		return
	}
	if existing != nil {
		respondError(w, http.StatusConflict, "email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.log.Error().Err(err).Msg("register: hashing failed")
		respondError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	user := &database.User{
		Email:        req.Email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: string(hash),
	}
	if err := h.users.CreateUser(r.Context(), user); err != nil {
		h.log.Error().Err(err).Msg("register: create failed")
		respondError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	session, err := h.sessionManager.CreateSession(r.Context(), user.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("register: session creation failed")
		respondError(w, http.StatusInternalServerError, "registration failed")
		return
	}
	h.sessionManager.SetSessionCookie(w, session)

	h.log.Info().Str("email", sanitizeForLog(user.Email)).Int64("user_id", user.ID).Msg("user registered")
	respondJSON(w, http.StatusCreated, map[string]any{
		"user":    userResponse{ID: user.ID, Email: user.Email, Name: user.Name},
		"session": session.ToJSON(),
	})
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	user, err := h.users.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		h.log.Error().Err(err).Msg("login: lookup failed")
		respondError(w, http.StatusInternalServerError, "login failed")
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		// Same error for unknown email and wrong password.
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	session, err := h.sessionManager.CreateSession(r.Context(), user.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("login: session creation failed")
		respondError(w, http.StatusInternalServerError, "login failed")
		return
	}
	h.sessionManager.SetSessionCookie(w, session)

	h.log.Info().Str("email", sanitizeForLog(user.Email)).Int64("user_id", user.ID).Msg("user logged in")
	respondJSON(w, http.StatusOK, map[string]any{
		"user":    userResponse{ID: user.ID, Email: user.Email, Name: user.Name},
		"session": session.ToJSON(),
	})
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if session := h.sessionManager.GetSessionFromRequest(r); session != nil {
		h.sessionManager.DeleteSession(r.Context(), session.ID)
	}
	h.sessionManager.ClearSessionCookie(w)
	respondJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// Status handles GET /api/v1/auth/status
func (h *AuthHandler) Status(w http.ResponseWriter, r *http.Request) {
	session := h.sessionManager.GetSessionFromRequest(r)
	if session == nil {
		respondJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	user, err := h.users.GetUser(r.Context(), session.UserID)
	if err != nil || user == nil {
		respondJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user":          userResponse{ID: user.ID, Email: user.Email, Name: user.Name},
	})
}
