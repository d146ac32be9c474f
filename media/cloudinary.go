package media

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const productFolder = "products"

// CloudinaryUploader implements Uploader on Cloudinary.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cloudName, apiKey, apiSecret string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("configure cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

func (u *CloudinaryUploader) UploadImage(ctx context.Context, file io.Reader) (*UploadResult, error) {
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         productFolder,
		Transformation: "c_limit,w_1000/q_auto:good",
	})
	if err != nil {
		return nil, fmt.Errorf("upload image to cloudinary: %w", err)
	}
	return &UploadResult{
		ImageURL: resp.SecureURL,
		PublicID: resp.PublicID,
		Width:    resp.Width,
		Height:   resp.Height,
		Format:   resp.Format,
	}, nil
}

func (u *CloudinaryUploader) DeleteImage(ctx context.Context, publicID string) error {
	resp, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("delete image from cloudinary: %w", err)
	}
	if resp.Result != "ok" {
		return fmt.Errorf("delete image from cloudinary: %s", resp.Result)
	}
	return nil
}
