package rest

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"github.com/kekechi03/ero/internal/model"
	"github.com/kekechi03/ero/util"
	"github.com/kekechi03/ero/util/values"
)

// UploadImageHelper validates the upload, pushes the binary to Cloudinary
// and records the image row with zeroed counters.
func (api *API) UploadImageHelper(ctx context.Context, uploaderID uuid.UUID, file multipart.File, header *multipart.FileHeader) (model.Image, string, string, error) {
	if header.Size > api.Config.MaxUploadBytes {
		return model.Image{}, values.Unprocessable, "File too large", fmt.Errorf("upload of %d bytes exceeds limit", header.Size)
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return model.Image{}, values.Unprocessable, "Only image files are accepted", fmt.Errorf("unexpected content type %q", contentType)
	}

	fileURL, publicID, err := api.Deps.Cloudinary.UploadImage(ctx, file, api.Config.CloudinaryFolder)
	if err != nil {
		return model.Image{}, values.Error, "Failed to upload image", err
	}

	image := model.Image{
		ID:         util.GenerateUUID(),
		FileURL:    fileURL,
		PublicID:   publicID,
		UploaderID: uploaderID,
	}

	created, err := api.CreateImageRepo(ctx, image)
	if err != nil {
		// The asset is already on the CDN; drop it so storage does not leak.
		if destroyErr := api.Deps.Cloudinary.DestroyImage(ctx, publicID); destroyErr != nil {
			log.Println("failed to clean up orphaned upload", publicID, destroyErr)
		}
		return model.Image{}, values.Error, "Failed to save image", err
	}

	return created, values.Created, "Image uploaded successfully", nil
}

// DeleteImageHelper cascades votes and the row, then destroys the CDN asset
// best effort. A failed destroy only logs: the store is the source of truth.
func (api *API) DeleteImageHelper(ctx context.Context, id uuid.UUID) (string, string, error) {
	img, err := api.GetImageByIDRepo(ctx, id)
	if err == ErrImageNotFound {
		return values.NotFound, "Image not found", err
	}
	if err != nil {
		return values.Error, "Failed to load image", err
	}

	err = api.DeleteImageRepo(ctx, id)
	if err == ErrImageNotFound {
		return values.NotFound, "Image not found", err
	}
	if err != nil {
		return values.Error, "Failed to delete image", err
	}

	if img.PublicID != "" {
		if destroyErr := api.Deps.Cloudinary.DestroyImage(ctx, img.PublicID); destroyErr != nil {
			log.Println("failed to destroy CDN asset", img.PublicID, destroyErr)
		}
	}

	return values.Success, "Image deleted successfully", nil
}
