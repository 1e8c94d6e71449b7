package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jurisdesk/case-tracker/internal/api/middleware"
	"github.com/jurisdesk/case-tracker/internal/core/domain"
)

// ctxUser extracts the profile injected by the Auth middleware. Presence of
// the value proves the gate ran; a handler reached without it is a routing
// mistake and fails closed with 401.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.ContextUserKey).(*domain.User)
	if user == nil || user.ID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Token ausente")
	}
	return user, nil
}
