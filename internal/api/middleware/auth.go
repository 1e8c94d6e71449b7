package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jurisdesk/case-tracker/internal/api/metrics"
	"github.com/jurisdesk/case-tracker/internal/core/domain"
	"github.com/jurisdesk/case-tracker/internal/core/ports"
)

// ContextUserKey is where Auth stores the resolved profile on the Echo
// context. The stored value is a *domain.User with the password hash
// stripped.
const ContextUserKey = "auth_user"

// Auth is the identity gate. It extracts the bearer token, resolves it to a
// live account through the auth service and injects the public profile into
// the request context, or short-circuits with 401.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokensRejectedTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Token ausente")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokensRejectedTotal.WithLabelValues("malformed").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Token inválido")
			}

			user, err := auth.Authenticate(c.Request().Context(), parts[1])
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrTokenInvalid):
					metrics.TokensRejectedTotal.WithLabelValues("invalid").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "Token inválido")
				case errors.Is(err, domain.ErrSubjectGone):
					metrics.TokensRejectedTotal.WithLabelValues("subject_gone").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "Usuário não encontrado")
				case errors.Is(err, domain.ErrTokenMissing):
					metrics.TokensRejectedTotal.WithLabelValues("missing").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "Token ausente")
				}
				return err
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}
