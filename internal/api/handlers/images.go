package handlers

import (
	"context"
	"net/http"
	"strings"

	"image-saver/internal/api/dto"
	"image-saver/internal/api/utils"
	"image-saver/internal/saver"

	"github.com/labstack/echo/v4"
)

type ImageSaver interface {
	SaveImage(ctx context.Context, data, filename, subdir string) (saver.Result, error)
	SaveImageAs(ctx context.Context, data, filename string) (saver.Result, error)
	SaveImages(ctx context.Context, images []saver.Payload) (saver.Summary, error)
}

func NewSaveImageHandler(svc ImageSaver) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.SaveImageRequest
		if err := c.Bind(&req); err != nil {
			return utils.WriteError(c, http.StatusBadRequest, "Invalid JSON body", "INVALID_JSON", nil)
		}
		if strings.TrimSpace(req.Filename) == "" {
			return utils.WriteError(c, http.StatusBadRequest, "Filename is required", "FILENAME_REQUIRED", nil)
		}

		res, err := svc.SaveImage(c.Request().Context(), req.ImageData, req.Filename, req.Subdir)
		if err != nil {
			return writeSaveError(c, err)
		}

		return utils.WriteJSON(c, http.StatusOK, dto.SaveImageResponse{
			Message: res.Message(),
			Path:    res.Path,
		})
	}
}

func NewSaveImageAsHandler(svc ImageSaver) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.SaveImageAsRequest
		if err := c.Bind(&req); err != nil {
			return utils.WriteError(c, http.StatusBadRequest, "Invalid JSON body", "INVALID_JSON", nil)
		}
		if strings.TrimSpace(req.Filename) == "" {
			return utils.WriteError(c, http.StatusBadRequest, "Filename is required", "FILENAME_REQUIRED", nil)
		}

		res, err := svc.SaveImageAs(c.Request().Context(), req.ImageData, req.Filename)
		if err != nil {
			return writeSaveError(c, err)
		}

		return utils.WriteJSON(c, http.StatusOK, dto.SaveImageResponse{
			Message: res.Message(),
			Path:    res.Path,
		})
	}
}

func NewSaveImagesHandler(svc ImageSaver) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.SaveImagesRequest
		if err := c.Bind(&req); err != nil {
			return utils.WriteError(c, http.StatusBadRequest, "Invalid JSON body", "INVALID_JSON", nil)
		}

		summary, err := svc.SaveImages(c.Request().Context(), Payloads(req.Images))
		if err != nil {
			return writeSaveError(c, err)
		}

		return utils.WriteJSON(c, http.StatusOK, dto.SaveImagesResponse{
			Message:  summary.Message(),
			Saved:    summary.Saved,
			Failed:   summary.Failed,
			Location: summary.BaseFolder,
		})
	}
}

func Payloads(images []dto.ImagePayload) []saver.Payload {
	out := make([]saver.Payload, 0, len(images))
	for _, img := range images {
		out = append(out, saver.Payload{
			Filename: img.Filename,
			Data:     img.Data,
			Subdir:   img.Subdir,
		})
	}
	return out
}
