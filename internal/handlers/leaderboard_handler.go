package handlers

import (
	"net/http"

	"eduquest/internal/store"
)

// LeaderboardHandler serves the read-only ranking projection.
type LeaderboardHandler struct {
	store *store.Store
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(st *store.Store) *LeaderboardHandler {
	return &LeaderboardHandler{store: st}
}

// Leaderboard returns the top 10 users by stars.
func (h *LeaderboardHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.Leaderboard()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load leaderboard", err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
