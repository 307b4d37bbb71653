package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lumen-academy/academy-api/internal/dto"
	"github.com/lumen-academy/academy-api/internal/models"
	appErrors "github.com/lumen-academy/academy-api/pkg/errors"
)

type mockGalleryRepo struct {
	images    []models.GalleryImage
	createErr error
	listErr   error
}

func (m *mockGalleryRepo) Create(ctx context.Context, image *models.GalleryImage) error {
	if m.createErr != nil {
		return m.createErr
	}
	image.ID = int64(len(m.images) + 1)
	m.images = append(m.images, *image)
	return nil
}

func (m *mockGalleryRepo) ListNewestFirst(ctx context.Context) ([]models.GalleryImage, error) {
	return m.images, m.listErr
}

type fakeStorage struct {
	saved   map[string][]byte
	deleted []string
	saveErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: make(map[string][]byte)}
}

func (f *fakeStorage) SaveStream(filename string, r io.Reader) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.saved[filename] = data
	return filename, nil
}

func (f *fakeStorage) Delete(filename string) error {
	f.deleted = append(f.deleted, filename)
	delete(f.saved, filename)
	return nil
}

func TestUploadNamesFileByTimestamp(t *testing.T) {
	repo := &mockGalleryRepo{}
	storage := newFakeStorage()
	svc := NewGalleryService(repo, storage, "/uploads", zap.NewNop())
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }

	image, err := svc.Upload(context.Background(),
		dto.UploadImageRequest{ImageCaption: "Dunes", ImageCategory: "landscape"},
		ImageUpload{Filename: "holiday photo.JPG", Content: bytes.NewReader([]byte("fake-bytes"))})
	require.NoError(t, err)

	assert.Equal(t, "/uploads/1700000000000.JPG", image.FilePath)
	assert.Equal(t, "Dunes", image.Caption)
	assert.Contains(t, storage.saved, "1700000000000.JPG")
	assert.Equal(t, []byte("fake-bytes"), storage.saved["1700000000000.JPG"])
}

func TestUploadStorageFailure(t *testing.T) {
	storage := newFakeStorage()
	storage.saveErr = errors.New("disk full")
	svc := NewGalleryService(&mockGalleryRepo{}, storage, "/uploads", zap.NewNop())

	_, err := svc.Upload(context.Background(), dto.UploadImageRequest{},
		ImageUpload{Filename: "a.png", Content: bytes.NewReader(nil)})
	appErr := appErrors.FromError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 500, appErr.Status)
}

func TestUploadRemovesFileWhenInsertFails(t *testing.T) {
	repo := &mockGalleryRepo{createErr: errors.New("connection reset")}
	storage := newFakeStorage()
	svc := NewGalleryService(repo, storage, "/uploads", zap.NewNop())
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }

	_, err := svc.Upload(context.Background(), dto.UploadImageRequest{},
		ImageUpload{Filename: "a.png", Content: bytes.NewReader([]byte("x"))})
	appErr := appErrors.FromError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 500, appErr.Status)
	assert.Equal(t, "Database error. Image not saved.", appErr.Message)
	assert.Equal(t, []string{"1700000000000.png"}, storage.deleted)
	assert.Empty(t, storage.saved)
}

func TestListGalleryItems(t *testing.T) {
	repo := &mockGalleryRepo{images: []models.GalleryImage{
		{ID: 2, FilePath: "/uploads/b.jpg", Caption: "Later", Category: "portrait"},
		{ID: 1, FilePath: "/uploads/a.jpg", Caption: "Earlier", Category: "landscape"},
	}}
	svc := NewGalleryService(repo, newFakeStorage(), "/uploads", zap.NewNop())

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "/uploads/b.jpg", items[0].Src)
	assert.Equal(t, "portrait", items[0].Category)
}

func TestListGalleryItemsEmpty(t *testing.T) {
	svc := NewGalleryService(&mockGalleryRepo{}, newFakeStorage(), "/uploads", zap.NewNop())

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items, "empty gallery must serialize as [] not null")
	assert.Empty(t, items)
}
