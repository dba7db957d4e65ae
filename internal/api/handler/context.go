package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/todo-api/internal/api/middleware"
)

// ctxUserID extracts the account id injected by the Auth middleware and
// fast-fails before any service call: a missing id means the middleware
// did not run on this route, which is a wiring error, not a client fault,
// but is still reported as 401 to avoid serving an unauthenticated request.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.UserIDKey).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	return userID, nil
}
