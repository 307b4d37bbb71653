package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/lumen-academy/academy-api/internal/dto"
	"github.com/lumen-academy/academy-api/internal/models"
	appErrors "github.com/lumen-academy/academy-api/pkg/errors"
)

type galleryRepository interface {
	Create(ctx context.Context, image *models.GalleryImage) error
	ListNewestFirst(ctx context.Context) ([]models.GalleryImage, error)
}

type uploadStorage interface {
	SaveStream(filename string, r io.Reader) (string, error)
	Delete(filename string) error
}

// ImageUpload carries an incoming file from the multipart request.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// GalleryService provides image upload and listing use cases.
type GalleryService struct {
	repo       galleryRepository
	storage    uploadStorage
	publicPath string
	logger     *zap.Logger
	now        func() time.Time
}

// NewGalleryService constructs a GalleryService. publicPath is the
// leading-slash URL prefix under which stored files are served.
func NewGalleryService(repo galleryRepository, storage uploadStorage, publicPath string, logger *zap.Logger) *GalleryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if publicPath == "" {
		publicPath = "/uploads"
	}
	return &GalleryService{
		repo:       repo,
		storage:    storage,
		publicPath: publicPath,
		logger:     logger,
		now:        time.Now,
	}
}

// Upload stores the file under a collision-avoiding name and persists its
// metadata. If the metadata insert fails the written file is removed again
// on a best-effort basis.
func (s *GalleryService) Upload(ctx context.Context, req dto.UploadImageRequest, upload ImageUpload) (*models.GalleryImage, error) {
	name := fmt.Sprintf("%d%s", s.now().UnixMilli(), filepath.Ext(upload.Filename))

	if _, err := s.storage.SaveStream(name, upload.Content); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to store uploaded file.")
	}

	image := &models.GalleryImage{
		FilePath: path.Join(s.publicPath, name),
		Caption:  req.ImageCaption,
		Category: req.ImageCategory,
	}

	if err := s.repo.Create(ctx, image); err != nil {
		if delErr := s.storage.Delete(name); delErr != nil {
			s.logger.Warn("failed to remove orphaned upload", zap.String("file", name), zap.Error(delErr))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Database error. Image not saved.")
	}

	s.logger.Info("gallery image uploaded", zap.Int64("id", image.ID), zap.String("src", image.FilePath))
	return image, nil
}

// List returns all gallery images newest-first in their public shape.
func (s *GalleryService) List(ctx context.Context) ([]dto.GalleryItem, error) {
	images, err := s.repo.ListNewestFirst(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Error fetching images from database.")
	}

	items := make([]dto.GalleryItem, 0, len(images))
	for _, image := range images {
		items = append(items, dto.GalleryItem{
			ID:       image.ID,
			Src:      image.FilePath,
			Caption:  image.Caption,
			Category: image.Category,
		})
	}
	return items, nil
}
