package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/serverest/usuarios-api/internal/core/ports"
)

const missingTokenMessage = "Token de acesso ausente, inválido ou expirado"

// Auth guards a route with bearer-token authentication. The token is
// resolved back to its owning user through the auth service (signature,
// expiry, and live session), and the user id is injected into the request
// context under "user_id".
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, missingTokenMessage)
			}

			userID, err := auth.Verify(c.Request().Context(), header)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, missingTokenMessage)
			}

			c.Set("user_id", userID)
			return next(c)
		}
	}
}
