package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "eventsathi/internal/delivery/context"
	"eventsathi/internal/delivery/http/response"
	"eventsathi/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const maxImageSizeBytes = 10 << 20 // 10 MiB per file

// ImageHandler holds dependencies for vendor image handlers.
type ImageHandler struct {
	uc     usecase.ImageUsecase
	logger *slog.Logger
}

// NewImageHandler is the constructor for ImageHandler, injected by Fx.
func NewImageHandler(uc usecase.ImageUsecase, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{uc: uc, logger: logger}
}

// Upload stores the multipart files under the "images" field.
func (h *ImageHandler) Upload(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Expected multipart form data")
	}

	files := form.File["images"]
	if len(files) == 0 {
		return response.BadRequest(c, "INVALID_INPUT", "No images provided")
	}

	uploads := make([]*usecase.ImageUpload, 0, len(files))
	closers := make([]func() error, 0, len(files))
	defer func() {
		for _, close := range closers {
			_ = close()
		}
	}()

	for _, file := range files {
		if file.Size > maxImageSizeBytes {
			return response.BadRequest(c, "IMAGE_TOO_LARGE", "Image exceeds the size limit")
		}

		src, err := file.Open()
		if err != nil {
			return errors.Wrap(err, "failed to open uploaded file")
		}
		closers = append(closers, src.Close)

		uploads = append(uploads, &usecase.ImageUpload{
			Filename:    file.Filename,
			ContentType: file.Header.Get("Content-Type"),
			Size:        file.Size,
			Reader:      src,
		})
	}

	images, err := h.uc.UploadVendorImages(c.Request().Context(), identity.UserID, uploads)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, images, "Images uploaded successfully")
}

// List returns the caller's image metadata.
func (h *ImageHandler) List(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	images, err := h.uc.ListVendorImages(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, images, "")
}

// Delete removes one of the caller's images.
func (h *ImageHandler) Delete(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	imageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid image ID")
	}

	if err := h.uc.DeleteVendorImage(c.Request().Context(), identity.UserID, imageID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Image deleted successfully")
}
