package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jvokurka/tripbook/internal/database"
	"github.com/jvokurka/tripbook/internal/database/mock"
	"github.com/jvokurka/tripbook/internal/web/middleware"
)

func newAuthHandler(t *testing.T, users *mock.MockUserStore) *AuthHandler {
	t.Helper()
	sm := middleware.NewSessionManager("test-secret", nil)
	t.Cleanup(sm.Stop)
	return NewAuthHandler(users, sm, testLogger())
}

func jsonRequest(method, path string, body any) *http.Request {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRegister_Success(t *testing.T) {
	users := mock.NewMockUserStore()
	handler := newAuthHandler(t, users)

	req := jsonRequest(http.MethodPost, "/api/v1/auth/register", registerRequest{
		Email:    "Jana@Example.COM",
		Name:     "Jana",
		Password: "correct horse",
	})
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	assertStatusCode(t, rec, http.StatusCreated)
	var resp struct {
		User    userResponse   `json:"user"`
		Session map[string]any `json:"session"`
	}
	parseJSONResponse(t, rec, &resp)
	if resp.User.Email != "jana@example.com" {
		t.Errorf("expected lowercased email, got %q", resp.User.Email)
	}
	if resp.Session["session_id"] == nil || resp.Session["session_id"] == "" {
		t.Error("expected a session in the response")
	}
	if len(rec.Result().Cookies()) == 0 {
		t.Error("expected a session cookie to be set")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := mock.NewMockUserStore()
	users.AddUser(database.User{Email: "jana@example.com"})
	handler := newAuthHandler(t, users)

	req := jsonRequest(http.MethodPost, "/api/v1/auth/register", registerRequest{
		Email:    "jana@example.com",
		Password: "correct horse",
	})
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	assertStatusCode(t, rec, http.StatusConflict)
	assertJSONError(t, rec, "email already registered")
}

func TestRegister_ShortPassword(t *testing.T) {
	handler := newAuthHandler(t, mock.NewMockUserStore())

	req := jsonRequest(http.MethodPost, "/api/v1/auth/register", registerRequest{
		Email:    "jana@example.com",
		Password: "short",
	})
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	assertStatusCode(t, rec, http.StatusBadRequest)
}

func TestRegister_InvalidEmail(t *testing.T) {
	handler := newAuthHandler(t, mock.NewMockUserStore())

	req := jsonRequest(http.MethodPost, "/api/v1/auth/register", registerRequest{
		Email:    "not-an-email",
		Password: "correct horse",
	})
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	assertStatusCode(t, rec, http.StatusBadRequest)
	assertJSONError(t, rec, "valid email is required")
}

func TestLogin_Success(t *testing.T) {
	users := mock.NewMockUserStore()
	handler := newAuthHandler(t, users)

	// Register through the handler so the stored hash is real.
	rec := httptest.NewRecorder()
	handler.Register(rec, jsonRequest(http.MethodPost, "/api/v1/auth/register", registerRequest{
		Email:    "jana@example.com",
		Password: "correct horse",
	}))
	assertStatusCode(t, rec, http.StatusCreated)

	rec = httptest.NewRecorder()
	handler.Login(rec, jsonRequest(http.MethodPost, "/api/v1/auth/login", loginRequest{
		Email:    "jana@example.com",
		Password: "correct horse",
	}))

	assertStatusCode(t, rec, http.StatusOK)
	var resp struct {
		User userResponse `json:"user"`
	}
	parseJSONResponse(t, rec, &resp)
	if resp.User.Email != "jana@example.com" {
		t.Errorf("unexpected user in login response: %+v", resp.User)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	users := mock.NewMockUserStore()
	handler := newAuthHandler(t, users)

	rec := httptest.NewRecorder()
	handler.Register(rec, jsonRequest(http.MethodPost, "/api/v1/auth/register", registerRequest{
		Email:    "jana@example.com",
		Password: "correct horse",
	}))
	assertStatusCode(t, rec, http.StatusCreated)

	rec = httptest.NewRecorder()
	handler.Login(rec, jsonRequest(http.MethodPost, "/api/v1/auth/login", loginRequest{
		Email:    "jana@example.com",
		Password: "wrong horse",
	}))

	assertStatusCode(t, rec, http.StatusUnauthorized)
	assertJSONError(t, rec, "invalid credentials")
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	handler := newAuthHandler(t, mock.NewMockUserStore())

	rec := httptest.NewRecorder()
	handler.Login(rec, jsonRequest(http.MethodPost, "/api/v1/auth/login", loginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	}))

	assertStatusCode(t, rec, http.StatusUnauthorized)
	assertJSONError(t, rec, "invalid credentials")
}

func TestStatus_Unauthenticated(t *testing.T) {
	handler := newAuthHandler(t, mock.NewMockUserStore())

	rec := httptest.NewRecorder()
	handler.Status(rec, httptest.NewRequest(http.MethodGet, "/api/v1/auth/status", nil))

	assertStatusCode(t, rec, http.StatusOK)
	var resp map[string]any
	parseJSONResponse(t, rec, &resp)
	if resp["authenticated"] != false {
		t.Errorf("expected authenticated=false, got %v", resp["authenticated"])
	}
}
