package middleware

import (
	"fmt"
	"net/http"
	"time"

	"image-saver/internal/logger"

	"github.com/labstack/echo/v4"
)

func Logging(log logger.LoggerService, enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if !enabled || log == nil {
			return next
		}

		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			if status == 0 {
				status = http.StatusOK
			}
			duration := time.Since(start).Truncate(time.Millisecond)
			msg := fmt.Sprintf("%s %s %d %s", c.Request().Method, c.Request().URL.Path, status, duration)
			switch {
			case status >= http.StatusInternalServerError:
				log.Error(msg, nil)
			case status >= http.StatusBadRequest:
				log.Warn(msg)
			default:
				log.Info(msg)
			}
			return nil
		}
	}
}
