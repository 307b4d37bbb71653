package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-academy/academy-api/internal/models"
)

func TestCreateGalleryImage(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewGalleryRepository(db)

	mock.ExpectQuery("INSERT INTO gallery_images").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	image := &models.GalleryImage{FilePath: "/uploads/1700000000000.jpg", Caption: "Dunes", Category: "landscape"}
	err := repo.Create(context.Background(), image)
	require.NoError(t, err)
	assert.Equal(t, int64(7), image.ID)
	assert.False(t, image.UploadedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListGalleryImagesNewestFirst(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewGalleryRepository(db)

	t1 := time.Now().Add(-time.Hour)
	t2 := time.Now()
	rows := sqlmock.NewRows([]string{"id", "file_path", "caption", "category", "uploaded_at"}).
		AddRow(int64(2), "/uploads/b.jpg", "Later", "portrait", t2).
		AddRow(int64(1), "/uploads/a.jpg", "Earlier", "landscape", t1)
	mock.ExpectQuery("SELECT id, file_path, caption, category, uploaded_at FROM gallery_images ORDER BY uploaded_at DESC").
		WillReturnRows(rows)

	images, err := repo.ListNewestFirst(context.Background())
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "/uploads/b.jpg", images[0].FilePath)
	assert.Equal(t, "/uploads/a.jpg", images[1].FilePath)
	assert.NoError(t, mock.ExpectationsWereMet())
}
