package handlers

import (
	"errors"
	"net/http"

	"eduquest/internal/models"
	"eduquest/internal/security"
	"eduquest/internal/store"
	"eduquest/internal/validation"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	store    *store.Store
	sessions *security.SessionManager
	csrf     *security.CSRFGenerator
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(st *store.Store, sessions *security.SessionManager, csrf *security.CSRFGenerator) *AuthHandler {
	return &AuthHandler{store: st, sessions: sessions, csrf: csrf}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Class    int    `json:"class"`
	Email    string `json:"email"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionResponse struct {
	User      *models.User `json:"user"`
	CSRFToken string       `json:"csrfToken"`
}

// Register handles signup: validates the form fields, creates the user
// record with syllabus-seeded progress, and starts a session.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	for _, err := range []error{
		validation.ValidateUsername(req.Username),
		validation.ValidatePassword(req.Password),
		validation.ValidateFullName(req.FullName),
		validation.ValidateClass(req.Class),
	} {
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
	}

	user, err := h.store.CreateUser(req.Username, req.Password, req.FullName, req.Class, &models.Overrides{Email: req.Email})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			respondWithError(w, http.StatusConflict, err.Error(), nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to create account", err)
		return
	}

	h.startSession(w, r, user)
}

// Login handles credential checks and session creation.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.store.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			respondWithError(w, http.StatusUnauthorized, err.Error(), nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to log in", err)
		return
	}

	h.startSession(w, r, user)
}

// Logout clears the session cookie. Session tokens are stateless, so
// there is nothing to revoke server-side.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, security.CreateDeleteCookie(r))
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// Profile returns the authenticated user's record.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	username := UsernameFromContext(r.Context())
	user, err := h.store.User(username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			respondWithError(w, http.StatusNotFound, err.Error(), nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to load profile", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, user *models.User) {
	token, expiresAt, err := h.sessions.Issue(user.Username)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to create session", err)
		return
	}

	_, sessionID, err := h.sessions.Validate(token)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to create session", err)
		return
	}
	csrfToken, err := h.csrf.GenerateToken(sessionID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to create session", err)
		return
	}

	http.SetCookie(w, security.CreateSessionCookie(r, token, expiresAt))
	writeJSON(w, http.StatusOK, sessionResponse{User: user, CSRFToken: csrfToken})
}
