package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eduquest/internal/models"
	"eduquest/internal/security"
	"eduquest/internal/store"
)

// memStorage keeps the Document as JSON in memory, standing in for the
// database-backed document store.
type memStorage struct {
	body []byte
}

func (m *memStorage) Load() (*models.Document, error) {
	if m.body == nil {
		return nil, nil
	}
	var doc models.Document
	if err := json.Unmarshal(m.body, &doc); err != nil {
		return nil, err
	}
	if doc.Users == nil {
		doc.Users = make(map[string]*models.User)
	}
	return &doc, nil
}

func (m *memStorage) Save(doc *models.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	m.body = body
	return nil
}

func newTestAuthHandler(t *testing.T) (*AuthHandler, *store.Store, *security.SessionManager) {
	t.Helper()
	st := store.New(&memStorage{})
	sessions := security.NewSessionManager("test-secret-key", time.Hour)
	csrf := security.NewCSRFGenerator("test-secret-key")
	return NewAuthHandler(st, sessions, csrf), st, sessions
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to encode request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler(recorder, req)
	return recorder
}

func TestRegister(t *testing.T) {
	handler, st, _ := newTestAuthHandler(t)

	recorder := postJSON(t, handler.Register, "/api/register", map[string]interface{}{
		"username": "ravi",
		"password": "secret123",
		"fullName": "Ravi Kumar",
		"class":    8,
	})

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", recorder.Code, recorder.Body.String())
	}

	var resp sessionResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.User == nil || resp.User.Username != "ravi" {
		t.Errorf("response user = %+v, want ravi", resp.User)
	}
	if resp.CSRFToken == "" {
		t.Error("response should carry a CSRF token")
	}

	// Session cookie set
	cookies := recorder.Result().Cookies()
	found := false
	for _, c := range cookies {
		if c.Name == security.SessionCookieName && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Error("register should set a session cookie")
	}

	// Record persisted
	if _, err := st.User("ravi"); err != nil {
		t.Errorf("user not persisted: %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	handler, _, _ := newTestAuthHandler(t)

	tests := []struct {
		name    string
		payload map[string]interface{}
	}{
		{"short username", map[string]interface{}{"username": "ab", "password": "secret123", "fullName": "X Y", "class": 8}},
		{"short password", map[string]interface{}{"username": "ravi", "password": "abc", "fullName": "X Y", "class": 8}},
		{"missing name", map[string]interface{}{"username": "ravi", "password": "secret123", "fullName": "", "class": 8}},
		{"bad class", map[string]interface{}{"username": "ravi", "password": "secret123", "fullName": "X Y", "class": 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := postJSON(t, handler.Register, "/api/register", tt.payload)
			if recorder.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", recorder.Code)
			}
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	handler, st, _ := newTestAuthHandler(t)

	if _, err := st.CreateUser("ravi", "secret123", "Ravi Kumar", 8, nil); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	recorder := postJSON(t, handler.Register, "/api/register", map[string]interface{}{
		"username": "ravi",
		"password": "other456",
		"fullName": "Another Ravi",
		"class":    9,
	})

	if recorder.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", recorder.Code)
	}
}

func TestLogin(t *testing.T) {
	handler, st, _ := newTestAuthHandler(t)

	if _, err := st.CreateUser("ravi", "secret123", "Ravi Kumar", 8, nil); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	recorder := postJSON(t, handler.Login, "/api/login", map[string]string{
		"username": "ravi",
		"password": "secret123",
	})

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", recorder.Code, recorder.Body.String())
	}

	var resp sessionResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.User.Username != "ravi" {
		t.Errorf("response user = %v, want ravi", resp.User.Username)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	handler, st, _ := newTestAuthHandler(t)

	if _, err := st.CreateUser("ravi", "secret123", "Ravi Kumar", 8, nil); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "ravi", "wrongpass"},
		{"unknown user", "nobody", "secret123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := postJSON(t, handler.Login, "/api/login", map[string]string{
				"username": tt.username,
				"password": tt.password,
			})
			if recorder.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", recorder.Code)
			}
		})
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	handler, _, _ := newTestAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	recorder := httptest.NewRecorder()
	handler.Logout(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}

	for _, c := range recorder.Result().Cookies() {
		if c.Name == security.SessionCookieName {
			if c.MaxAge != -1 {
				t.Errorf("cookie MaxAge = %d, want -1", c.MaxAge)
			}
			return
		}
	}
	t.Error("logout should set a deletion cookie")
}

func TestProfileRequiresKnownUser(t *testing.T) {
	handler, st, sessions := newTestAuthHandler(t)

	if _, err := st.CreateUser("ravi", "secret123", "Ravi Kumar", 8, nil); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	middleware := NewMiddleware(sessions, security.NewCSRFGenerator("test-secret-key"), security.NewRateLimiter(100, time.Minute), "", "")
	protected := middleware.RequireAuth(handler.Profile)

	token, expiresAt, err := sessions.Issue("ravi")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.AddCookie(security.CreateSessionCookie(req, token, expiresAt))
	recorder := httptest.NewRecorder()
	protected(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", recorder.Code, recorder.Body.String())
	}

	var user models.User
	if err := json.Unmarshal(recorder.Body.Bytes(), &user); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if user.Username != "ravi" {
		t.Errorf("profile username = %v, want ravi", user.Username)
	}
}
