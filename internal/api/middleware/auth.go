package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/linkvault/bookmark-api/internal/security/token"
)

// Auth validates the bearer token and injects the verified identity into the
// request context. Handlers downstream read the owner id exclusively from
// here, never from request bodies.
func Auth(tokens *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				msg := "invalid token"
				if errors.Is(err, token.ErrExpiredToken) {
					msg = "token expired"
				}
				return echo.NewHTTPError(http.StatusUnauthorized, msg)
			}

			c.Set("user_id", claims.Subject)

			return next(c)
		}
	}
}
