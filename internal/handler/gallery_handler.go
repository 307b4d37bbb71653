package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumen-academy/academy-api/internal/dto"
	"github.com/lumen-academy/academy-api/internal/models"
	"github.com/lumen-academy/academy-api/internal/service"
	appErrors "github.com/lumen-academy/academy-api/pkg/errors"
	"github.com/lumen-academy/academy-api/pkg/response"
)

type galleryService interface {
	Upload(ctx context.Context, req dto.UploadImageRequest, upload service.ImageUpload) (*models.GalleryImage, error)
	List(ctx context.Context) ([]dto.GalleryItem, error)
}

// GalleryHandler wires the gallery endpoints to the service.
type GalleryHandler struct {
	service galleryService
	metrics *service.MetricsService
}

// NewGalleryHandler creates a new handler. metrics may be nil.
func NewGalleryHandler(svc galleryService, metrics *service.MetricsService) *GalleryHandler {
	return &GalleryHandler{service: svc, metrics: metrics}
}

// Upload handles POST /api/upload (session protected, multipart).
func (h *GalleryHandler) Upload(c *gin.Context) {
	var req dto.UploadImageRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Invalid upload payload."))
		return
	}

	fileHeader, err := c.FormFile("imageFile")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "No file uploaded."))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to open uploaded file."))
		return
	}
	defer src.Close()

	image, err := h.service.Upload(c.Request.Context(), req, service.ImageUpload{
		Filename: fileHeader.Filename,
		Content:  src,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.ObserveUpload()
	}

	response.OK(c, "Image uploaded successfully!", response.Payload{"src": image.FilePath})
}

// List handles GET /api/gallery-images. The response is a bare array,
// matching what the gallery script consumes.
func (h *GalleryHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}
