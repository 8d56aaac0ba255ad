package storage

import (
	"context"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/kekechi03/ero/config"
)

type Cloudinary struct {
	CLD *cloudinary.Cloudinary
}

func NewCloudinary(cfg *config.Config) *Cloudinary {
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	return &Cloudinary{CLD: cld}
}

// UploadImage accepts anything the uploader does: a file path, URL or io.Reader.
// Returns the delivery URL and the public ID needed to destroy the asset later.
func (c *Cloudinary) UploadImage(ctx context.Context, file interface{}, folder string) (string, string, error) {
	resp, err := c.CLD.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", "", err
	}
	return resp.SecureURL, resp.PublicID, nil
}

func (c *Cloudinary) DestroyImage(ctx context.Context, publicID string) error {
	_, err := c.CLD.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}
