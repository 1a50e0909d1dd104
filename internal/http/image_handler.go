package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "task-board.community/task-board/internal/errors"
	"task-board.community/task-board/internal/storage"
)

// UploadImage stores a multipart image and returns its opaque reference
// pair. No resizing or transcoding happens here; the bytes are stored as
// received.
func (h *Handler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return httpError(apperrors.ErrNotAnImage)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to read upload")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to read upload")
	}

	stored, err := h.images.Store(c.Request().Context(), data, contentType)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedImageType) {
			return httpError(apperrors.ErrNotAnImage)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to store image")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Image uploaded successfully!",
		"url":       stored.URL,
		"public_id": stored.PublicID,
	})
}
