package handlers

import (
	"context"
	"errors"
	"net/http"

	"image-saver/internal/api/utils"
	"image-saver/internal/saver"

	"github.com/labstack/echo/v4"
)

func writeSaveError(c echo.Context, err error) error {
	var sErr *saver.Error
	if !errors.As(err, &sErr) {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return utils.WriteError(c, http.StatusRequestTimeout, "Request cancelled", "REQUEST_CANCELLED", nil)
		}
		return utils.WriteError(c, http.StatusInternalServerError, "Failed to save image", "SAVE_FAILED", nil)
	}

	if sErr.Kind == saver.KindPicker && errors.Is(sErr.Err, context.Canceled) {
		return utils.WriteError(c, http.StatusRequestTimeout, "Request cancelled", "REQUEST_CANCELLED", nil)
	}

	status, code := statusFor(sErr.Kind)
	details := map[string]any{}
	if sErr.Filename != "" {
		details["filename"] = sErr.Filename
	}
	if sErr.Path != "" {
		details["path"] = sErr.Path
	}
	return utils.WriteError(c, status, sErr.Error(), code, details)
}

func statusFor(kind saver.Kind) (int, string) {
	switch kind {
	case saver.KindCancelled:
		return http.StatusConflict, "SELECTION_CANCELLED"
	case saver.KindFormat:
		return http.StatusBadRequest, "INVALID_IMAGE_FORMAT"
	case saver.KindDecode:
		return http.StatusBadRequest, "INVALID_IMAGE_DATA"
	case saver.KindDirectory:
		return http.StatusInternalServerError, "DIRECTORY_ERROR"
	case saver.KindWrite:
		return http.StatusInternalServerError, "WRITE_ERROR"
	default:
		return http.StatusInternalServerError, "PICKER_ERROR"
	}
}
