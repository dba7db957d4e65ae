package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/todo-api/internal/core/service"
)

func authReject(t *testing.T, tokens *service.TokenService, header string) *echo.HTTPError {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(tokens)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	if err == nil {
		t.Fatalf("expected rejection")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
	return he
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	signed, err := tokens.Issue("user-1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(tokens)
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get(UserIDKey) != "user-1" {
			t.Fatalf("user id not set, got %v", c.Get(UserIDKey))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)

	he := authReject(t, tokens, "")
	if he.Message != "Invalid or no authentication header" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestAuthMiddleware_WrongScheme(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)

	he := authReject(t, tokens, "Token abc")
	if he.Message != "Invalid or no authentication header" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestAuthMiddleware_MissingTokenSegment(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)

	he := authReject(t, tokens, "Bearer ")
	if he.Message != "Invalid or no authentication header" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)

	he := authReject(t, tokens, "Bearer not-a-token")
	if he.Message != "Invalid token" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestAuthMiddleware_ExpiredTokenDistinctMessage(t *testing.T) {
	expired := service.NewTokenService("secret", -time.Minute)
	signed, err := expired.Issue("user-1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	verifier := service.NewTokenService("secret", time.Hour)
	he := authReject(t, verifier, "Bearer "+signed)
	if he.Message != "Token expired" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

// The middleware rejections marshal into the {"message": ...} envelope via
// the API error handler; sanity-check the message survives a JSON roundtrip.
func TestAuthMiddleware_MessageSerializes(t *testing.T) {
	tokens := service.NewTokenService("secret", time.Hour)
	he := authReject(t, tokens, "")

	raw, err := json.Marshal(map[string]any{"message": he.Message})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"message":"Invalid or no authentication header"}` {
		t.Fatalf("unexpected body: %s", raw)
	}
}
