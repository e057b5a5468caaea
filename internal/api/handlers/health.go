package handlers

import (
	"net/http"

	"image-saver/internal/api/utils"

	"github.com/labstack/echo/v4"
)

func NewHealthHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return utils.WriteJSON(c, http.StatusOK, map[string]string{"status": "ok"})
	}
}
