package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"image-saver/internal/api/handlers"
	"image-saver/internal/api/middleware"
	"image-saver/internal/api/utils"
	"image-saver/internal/config"
	"image-saver/internal/logger"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

type ServerDeps struct {
	Saver  handlers.ImageSaver
	Logger logger.LoggerService
}

func NewServer(cfg config.Config, deps ServerDeps) (*http.Server, error) {
	addr := strings.TrimSpace(cfg.APIListen)
	if err := config.ValidateListenAddr(addr); err != nil {
		return nil, err
	}

	h, err := NewHandler(cfg, deps)
	if err != nil {
		return nil, err
	}

	// No WriteTimeout: save requests wait on the user's dialog.
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}, nil
}

func NewHandler(cfg config.Config, deps ServerDeps) (http.Handler, error) {
	token := strings.TrimSpace(cfg.BearerToken)
	if token == "" {
		return nil, errors.New("bearerToken is required")
	}
	if deps.Saver == nil {
		return nil, errors.New("image saver is required")
	}
	maxBodyMB := cfg.MaxBodyMB
	if maxBodyMB < 1 {
		maxBodyMB = config.Default().MaxBodyMB
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler

	e.Use(echoMiddleware.Recover())
	e.Use(middleware.Logging(deps.Logger, cfg.Debug))
	e.Use(middleware.CORS(cfg.AllowedOrigins))

	g := e.Group("/api", middleware.Auth(token), echoMiddleware.BodyLimit(fmt.Sprintf("%dM", maxBodyMB)))
	g.GET("/health", handlers.NewHealthHandler())
	g.POST("/images/save", handlers.NewSaveImageHandler(deps.Saver))
	g.POST("/images/save-as", handlers.NewSaveImageAsHandler(deps.Saver))
	g.POST("/images/save-batch", handlers.NewSaveImagesHandler(deps.Saver))

	return e, nil
}

func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
	}

	var writeErr error
	switch status {
	case http.StatusNotFound:
		writeErr = utils.WriteError(c, status, "Not found", "NOT_FOUND", nil)
	case http.StatusMethodNotAllowed:
		writeErr = utils.WriteError(c, status, "Method not allowed", "METHOD_NOT_ALLOWED", nil)
	case http.StatusRequestEntityTooLarge:
		writeErr = utils.WriteError(c, status, "Request body too large", "BODY_TOO_LARGE", nil)
	default:
		writeErr = utils.WriteError(c, status, http.StatusText(status), "INTERNAL_ERROR", nil)
	}
	if writeErr != nil {
		c.Logger().Error(writeErr)
	}
}
