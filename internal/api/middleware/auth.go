package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"image-saver/internal/api/utils"

	"github.com/labstack/echo/v4"
)

func Auth(token string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			parts := strings.Fields(c.Request().Header.Get(echo.HeaderAuthorization))
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") ||
				subtle.ConstantTimeCompare([]byte(parts[1]), []byte(token)) != 1 {
				return utils.WriteError(c, http.StatusUnauthorized, "Unauthorized", "UNAUTHORIZED", nil)
			}
			return next(c)
		}
	}
}
