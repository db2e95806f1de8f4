package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-notes/pkg/jwt"
)

// RequireServiceAuth middleware: only allow requests carrying a valid
// service token. Disabled auth turns this into a pass-through so local
// setups work without minting tokens first.
func RequireServiceAuth(manager *jwt.Manager, enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c)
			}

			token := bearerToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"error":   "unauthorized",
					"message": "missing bearer token",
				})
			}

			claims, err := manager.ValidateToken(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"error":   "invalid_token",
					"message": err.Error(),
				})
			}

			c.Set("service_name", claims.Name)
			c.Set("service_role", claims.Role)
			return next(c)
		}
	}
}

// bearerToken extracts the token from the Authorization header
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
