package media

import (
	"context"
	"io"
)

// UploadResult is what callers get back from the media host.
type UploadResult struct {
	ImageURL string `json:"imageUrl"`
	PublicID string `json:"publicId"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Format   string `json:"format,omitempty"`
}

// Uploader stores binary images with an external media host and returns a URL
// plus an opaque id usable for deletion.
type Uploader interface {
	UploadImage(ctx context.Context, file io.Reader) (*UploadResult, error)
	DeleteImage(ctx context.Context, publicID string) error
}
