package handlers

import (
	"errors"
	"log"
	"net/http"

	"eduquest/internal/service"
	"eduquest/internal/store"
)

// AdminHandler exposes the operator surface: user listing, forced
// resets, and progress report sends.
type AdminHandler struct {
	store   *store.Store
	reports *service.ReportService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(st *store.Store, reports *service.ReportService) *AdminHandler {
	return &AdminHandler{store: st, reports: reports}
}

// ListUsers returns every user record in creation order.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.Users()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list users", err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// ResetUser wipes progress for the user named in the path.
func (h *AdminHandler) ResetUser(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	user, err := h.store.ResetProgress(username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			respondWithError(w, http.StatusNotFound, err.Error(), nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to reset user", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// SendReports emails a progress summary to every user with an email
// address on file. Send failures are logged and counted, not fatal.
func (h *AdminHandler) SendReports(w http.ResponseWriter, r *http.Request) {
	if !h.reports.IsEnabled() {
		respondWithError(w, http.StatusServiceUnavailable, "Report service is not configured", nil)
		return
	}

	users, err := h.store.Users()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list users", err)
		return
	}

	sent := 0
	failed := 0
	for _, user := range users {
		if user.Email == "" {
			continue
		}
		if err := h.reports.SendProgressReport(r.Context(), user); err != nil {
			log.Printf("Failed to send report to %s: %v", user.Username, err)
			failed++
			continue
		}
		sent++
	}

	writeJSON(w, http.StatusOK, map[string]int{"sent": sent, "failed": failed})
}
