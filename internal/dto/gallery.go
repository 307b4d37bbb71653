package dto

// UploadImageRequest carries the multipart metadata fields accompanying the
// image file. Both are optional free text.
type UploadImageRequest struct {
	ImageCaption  string `form:"imageCaption"`
	ImageCategory string `form:"imageCategory"`
}

// GalleryItem is the public listing shape consumed by the gallery script.
type GalleryItem struct {
	ID       int64  `json:"id"`
	Src      string `json:"src"`
	Caption  string `json:"caption"`
	Category string `json:"category"`
}
