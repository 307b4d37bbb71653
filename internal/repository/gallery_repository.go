package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/lumen-academy/academy-api/internal/models"
)

// GalleryRepository provides database access for gallery image metadata.
type GalleryRepository struct {
	db *sqlx.DB
}

// NewGalleryRepository creates a new instance of GalleryRepository.
func NewGalleryRepository(db *sqlx.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

// Create inserts gallery image metadata and fills in its generated ID.
func (r *GalleryRepository) Create(ctx context.Context, image *models.GalleryImage) error {
	if image.UploadedAt.IsZero() {
		image.UploadedAt = time.Now().UTC()
	}
	const query = `INSERT INTO gallery_images (file_path, caption, category, uploaded_at) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query, image.FilePath, image.Caption, image.Category, image.UploadedAt).Scan(&image.ID); err != nil {
		return fmt.Errorf("create gallery image: %w", err)
	}
	return nil
}

// ListNewestFirst returns all gallery images ordered by upload time descending.
func (r *GalleryRepository) ListNewestFirst(ctx context.Context) ([]models.GalleryImage, error) {
	const query = `SELECT id, file_path, caption, category, uploaded_at FROM gallery_images ORDER BY uploaded_at DESC`
	var images []models.GalleryImage
	if err := r.db.SelectContext(ctx, &images, query); err != nil {
		return nil, fmt.Errorf("list gallery images: %w", err)
	}
	return images, nil
}
