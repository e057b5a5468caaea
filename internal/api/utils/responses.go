package utils

import "github.com/labstack/echo/v4"

type ErrorResponse struct {
	Error   string         `json:"error"`
	Code    string         `json:"code"`
	Details map[string]any `json:"details,omitempty"`
}

func WriteError(c echo.Context, status int, message, code string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return WriteJSON(c, status, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	})
}

func WriteJSON(c echo.Context, status int, payload any) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/json; charset=utf-8")
	return c.JSON(status, payload)
}
