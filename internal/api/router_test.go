package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskhive/todo-api/internal/infrastructure/db/memory"
)

// TestRouter_EndToEnd walks the full lifecycle through the real route
// table: register, login, create, cross-account delete attempt, owner
// delete, and the final read of the deleted record.
func TestRouter_EndToEnd(t *testing.T) {
	e := NewRouter(memory.NewUserRepository(), memory.NewTodoRepository(), "test-secret", time.Hour, zerolog.Nop())

	do := func(method, path, token, body string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if body != "" {
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	decode := func(rec *httptest.ResponseRecorder, into any) {
		t.Helper()
		if err := json.Unmarshal(rec.Body.Bytes(), into); err != nil {
			t.Fatalf("decode %s: %v", rec.Body, err)
		}
	}

	// Register ada.
	rec := do(http.MethodPost, "/api/auth/register", "", `{"username":"ada","email":"ada@example.com","password":"123456"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", rec.Code, rec.Body)
	}
	var registered struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	decode(rec, &registered)
	if registered.User.ID == "" {
		t.Fatalf("register: missing user id")
	}

	// Login ada.
	rec = do(http.MethodPost, "/api/auth/login", "", `{"email":"ada@example.com","password":"123456"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body)
	}
	var login struct {
		Token string `json:"token"`
	}
	decode(rec, &login)
	if login.Token == "" {
		t.Fatalf("login: missing token")
	}

	// A second account for the cross-owner check.
	rec = do(http.MethodPost, "/api/auth/register", "", `{"username":"eve","email":"eve@example.com","password":"123456"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register eve: expected 201, got %d", rec.Code)
	}
	rec = do(http.MethodPost, "/api/auth/login", "", `{"email":"eve@example.com","password":"123456"}`)
	var eveLogin struct {
		Token string `json:"token"`
	}
	decode(rec, &eveLogin)

	// Unauthenticated access is rejected before any handler runs.
	rec = do(http.MethodGet, "/api/todos", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated list: expected 401, got %d", rec.Code)
	}
	var unauth map[string]string
	decode(rec, &unauth)
	if unauth["message"] != "Invalid or no authentication header" {
		t.Fatalf("unexpected message: %q", unauth["message"])
	}

	// Create a todo as ada.
	rec = do(http.MethodPost, "/api/todos", login.Token, `{"title":"T","description":"D","category":"C"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body)
	}
	var todo struct {
		ID      string `json:"id"`
		OwnerID string `json:"ownerId"`
	}
	decode(rec, &todo)
	if todo.OwnerID != registered.User.ID {
		t.Fatalf("create: expected owner %s, got %s", registered.User.ID, todo.OwnerID)
	}

	// Eve may read but not delete.
	rec = do(http.MethodGet, "/api/todos/"+todo.ID, eveLogin.Token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("foreign read: expected 200, got %d", rec.Code)
	}
	rec = do(http.MethodDelete, "/api/todos/"+todo.ID, eveLogin.Token, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("foreign delete: expected 403, got %d: %s", rec.Code, rec.Body)
	}
	var forbidden map[string]string
	decode(rec, &forbidden)
	if forbidden["message"] != "Unauthorized, only creator can delete todo" {
		t.Fatalf("unexpected message: %q", forbidden["message"])
	}

	// Ada deletes her todo.
	rec = do(http.MethodDelete, "/api/todos/"+todo.ID, login.Token, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("owner delete: expected 204, got %d: %s", rec.Code, rec.Body)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("owner delete: expected empty body, got %s", rec.Body)
	}

	// The record is gone.
	rec = do(http.MethodGet, "/api/todos/"+todo.ID, login.Token, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get deleted: expected 404, got %d", rec.Code)
	}
	var notFound map[string]string
	decode(rec, &notFound)
	if notFound["message"] != "Todo not found" {
		t.Fatalf("unexpected message: %q", notFound["message"])
	}

	// Health and metrics stay reachable without a token.
	if rec := do(http.MethodGet, "/api/health", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", rec.Code)
	}
	if rec := do(http.MethodGet, "/metrics", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", rec.Code)
	}
}
