package handlers

import (
	"errors"
	"net/http"

	"eduquest/internal/service"
	"eduquest/internal/store"
)

// ProgressHandler exposes the gamified learning operations.
type ProgressHandler struct {
	store    *store.Store
	progress *service.ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(st *store.Store, progress *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{store: st, progress: progress}
}

type topicRequest struct {
	Subject string `json:"subject"`
	Topic   string `json:"topic"`
}

type puzzleRequest struct {
	Subject string `json:"subject"`
	Correct bool   `json:"correct"`
}

// Dashboard returns the user record together with derived statistics.
func (h *ProgressHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	username := UsernameFromContext(r.Context())

	user, err := h.store.User(username)
	if err != nil {
		respondWithStoreError(w, "Failed to load dashboard", err)
		return
	}
	stats, err := h.progress.Stats(username)
	if err != nil {
		respondWithStoreError(w, "Failed to load dashboard", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user":  user,
		"stats": stats,
	})
}

// CompleteVideo records a watched video and returns the rewards earned.
func (h *ProgressHandler) CompleteVideo(w http.ResponseWriter, r *http.Request) {
	var req topicRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	username := UsernameFromContext(r.Context())
	result, err := h.progress.CompleteVideo(username, req.Subject, req.Topic)
	if err != nil {
		if errors.Is(err, service.ErrUnknownTopic) {
			respondWithError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		respondWithStoreError(w, "Failed to record video", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// OpenTopic stamps a topic as accessed for continue-learning.
func (h *ProgressHandler) OpenTopic(w http.ResponseWriter, r *http.Request) {
	var req topicRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	username := UsernameFromContext(r.Context())
	if err := h.progress.OpenTopic(username, req.Subject, req.Topic); err != nil {
		if errors.Is(err, service.ErrUnknownTopic) {
			respondWithError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		respondWithStoreError(w, "Failed to open topic", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SolvePuzzle records a puzzle attempt and returns any reward.
func (h *ProgressHandler) SolvePuzzle(w http.ResponseWriter, r *http.Request) {
	var req puzzleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	username := UsernameFromContext(r.Context())
	result, err := h.progress.SolvePuzzle(username, req.Subject, req.Correct)
	if err != nil {
		respondWithStoreError(w, "Failed to record puzzle", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Continue returns the most recently accessed topic, if any.
func (h *ProgressHandler) Continue(w http.ResponseWriter, r *http.Request) {
	username := UsernameFromContext(r.Context())
	subject, topic, ok, err := h.progress.ContinueLearning(username)
	if err != nil {
		respondWithStoreError(w, "Failed to find last topic", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"found":   ok,
		"subject": subject,
		"topic":   topic,
	})
}

// Reset wipes the user's progress and gamification state.
func (h *ProgressHandler) Reset(w http.ResponseWriter, r *http.Request) {
	username := UsernameFromContext(r.Context())
	user, err := h.store.ResetProgress(username)
	if err != nil {
		respondWithStoreError(w, "Failed to reset progress", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func respondWithStoreError(w http.ResponseWriter, msg string, err error) {
	if errors.Is(err, store.ErrUserNotFound) {
		respondWithError(w, http.StatusNotFound, err.Error(), nil)
		return
	}
	respondWithError(w, http.StatusInternalServerError, msg, err)
}
