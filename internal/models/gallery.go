package models

import "time"

// GalleryImage is one uploaded gallery entry. Category holds a free-text,
// space-separated tag set; the browser filters on it client-side.
type GalleryImage struct {
	ID         int64     `db:"id" json:"id"`
	FilePath   string    `db:"file_path" json:"src"`
	Caption    string    `db:"caption" json:"caption"`
	Category   string    `db:"category" json:"category"`
	UploadedAt time.Time `db:"uploaded_at" json:"-"`
}
