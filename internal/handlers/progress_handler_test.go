package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eduquest/internal/service"
	"eduquest/internal/store"
)

func newTestProgressHandler(t *testing.T) (*ProgressHandler, *store.Store) {
	t.Helper()
	st := store.New(&memStorage{})
	return NewProgressHandler(st, service.NewProgressService(st)), st
}

func authedRequest(t *testing.T, method, target, username string, payload interface{}) *http.Request {
	t.Helper()
	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to encode request: %v", err)
		}
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	ctx := context.WithValue(req.Context(), UsernameContextKey, username)
	return req.WithContext(ctx)
}

func TestDashboard(t *testing.T) {
	handler, st := newTestProgressHandler(t)

	if _, err := st.CreateUser("ravi", "secret123", "Ravi Kumar", 8, nil); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	recorder := httptest.NewRecorder()
	handler.Dashboard(recorder, authedRequest(t, http.MethodGet, "/api/dashboard", "ravi", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", recorder.Code, recorder.Body.String())
	}

	var resp struct {
		User  json.RawMessage         `json:"user"`
		Stats *service.DashboardStats `json:"stats"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Stats == nil || resp.Stats.TotalTopics != 20 {
		t.Errorf("stats = %+v, want 20 total topics", resp.Stats)
	}
}

func TestDashboardUnknownUser(t *testing.T) {
	handler, _ := newTestProgressHandler(t)

	recorder := httptest.NewRecorder()
	handler.Dashboard(recorder, authedRequest(t, http.MethodGet, "/api/dashboard", "ghost", nil))

	if recorder.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", recorder.Code)
	}
}

func TestCompleteVideoHandler(t *testing.T) {
	handler, st := newTestProgressHandler(t)

	if _, err := st.CreateUser("ravi", "secret123", "Ravi Kumar", 8, nil); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	recorder := httptest.NewRecorder()
	handler.CompleteVideo(recorder, authedRequest(t, http.MethodPost, "/api/videos/complete", "ravi", map[string]string{
		"subject": "mathematics",
		"topic":   "Rational Numbers",
	}))

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", recorder.Code, recorder.Body.String())
	}

	var result service.CompletionResult
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.StarsEarned < 15 || result.StarsEarned > 35 {
		t.Errorf("StarsEarned = %v, want 15-35", result.StarsEarned)
	}
}

func TestCompleteVideoHandlerUnknownTopic(t *testing.T) {
	handler, st := newTestProgressHandler(t)

	if _, err := st.CreateUser("ravi", "secret123", "Ravi Kumar", 8, nil); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	recorder := httptest.NewRecorder()
	handler.CompleteVideo(recorder, authedRequest(t, http.MethodPost, "/api/videos/complete", "ravi", map[string]string{
		"subject": "astrology",
		"topic":   "Star Signs",
	}))

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", recorder.Code)
	}
}

func TestResetHandler(t *testing.T) {
	handler, st := newTestProgressHandler(t)

	if _, err := st.CreateUser("ravi", "secret123", "Ravi Kumar", 8, nil); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	recorder := httptest.NewRecorder()
	handler.Reset(recorder, authedRequest(t, http.MethodPost, "/api/progress/reset", "ravi", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", recorder.Code, recorder.Body.String())
	}
}

func TestLeaderboardHandler(t *testing.T) {
	st := store.New(&memStorage{})
	handler := NewLeaderboardHandler(st)

	if err := st.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil)
	recorder := httptest.NewRecorder()
	handler.Leaderboard(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", recorder.Code, recorder.Body.String())
	}

	var entries []struct {
		Rank     int    `json:"rank"`
		Username string `json:"username"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &entries); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(entries) != 2 || entries[0].Username != "demo2" {
		t.Errorf("leaderboard = %+v, want demo2 first", entries)
	}
}
