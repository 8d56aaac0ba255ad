package rest

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/kekechi03/ero/internal/model"
)

var ErrImageDeleteFailed = errors.New("failed to delete image")

// CreateImageRepo inserts a new image with zeroed counters
func (api *API) CreateImageRepo(ctx context.Context, image model.Image) (model.Image, error) {
	query := `
        INSERT INTO images (id, file_url, public_id, uploader_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id, file_url, public_id, uploader_id, yes_count, no_count, created_at, updated_at
    `
	var created model.Image
	err := api.DB.QueryRow(ctx, query,
		image.ID, image.FileURL, image.PublicID, image.UploaderID,
	).Scan(
		&created.ID, &created.FileURL, &created.PublicID, &created.UploaderID,
		&created.YesCount, &created.NoCount, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return model.Image{}, fmt.Errorf("creating image: %w", err)
	}
	return created, nil
}

func (api *API) GetImageByIDRepo(ctx context.Context, id uuid.UUID) (model.Image, error) {
	query := `
        SELECT id, file_url, public_id, uploader_id, yes_count, no_count, created_at, updated_at
        FROM images
        WHERE id = $1
    `
	var img model.Image
	err := api.DB.QueryRow(ctx, query, id).Scan(
		&img.ID, &img.FileURL, &img.PublicID, &img.UploaderID,
		&img.YesCount, &img.NoCount, &img.CreatedAt, &img.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return model.Image{}, ErrImageNotFound
	}
	return img, err
}

// ListImagesRepo returns the most recently uploaded images
func (api *API) ListImagesRepo(ctx context.Context, limit int) ([]model.Image, error) {
	query := `
        SELECT id, file_url, public_id, uploader_id, yes_count, no_count, created_at, updated_at
        FROM images
        ORDER BY created_at DESC
        LIMIT $1
    `
	return api.queryImages(ctx, query, limit)
}

// TopImagesByYesRepo orders by yes_count, most recent first on ties.
// Only images with at least one yes vote rank.
func (api *API) TopImagesByYesRepo(ctx context.Context, limit int) ([]model.Image, error) {
	query := `
        SELECT id, file_url, public_id, uploader_id, yes_count, no_count, created_at, updated_at
        FROM images
        WHERE yes_count > 0
        ORDER BY yes_count DESC, created_at DESC
        LIMIT $1
    `
	return api.queryImages(ctx, query, limit)
}

// TopImagesByNoRepo is the mirror ranking on no_count.
func (api *API) TopImagesByNoRepo(ctx context.Context, limit int) ([]model.Image, error) {
	query := `
        SELECT id, file_url, public_id, uploader_id, yes_count, no_count, created_at, updated_at
        FROM images
        WHERE no_count > 0
        ORDER BY no_count DESC, created_at DESC
        LIMIT $1
    `
	return api.queryImages(ctx, query, limit)
}

func (api *API) queryImages(ctx context.Context, query string, args ...interface{}) ([]model.Image, error) {
	rows, err := api.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying images: %w", err)
	}
	defer rows.Close()

	var images []model.Image
	for rows.Next() {
		var img model.Image
		err := rows.Scan(
			&img.ID, &img.FileURL, &img.PublicID, &img.UploaderID,
			&img.YesCount, &img.NoCount, &img.CreatedAt, &img.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// DeleteImageRepo removes the image and every vote referencing it in one
// transaction. Votes go first so no orphan can survive a partial failure
// even without the FK cascade.
func (api *API) DeleteImageRepo(ctx context.Context, id uuid.UUID) error {
	return api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `DELETE FROM votes WHERE image_id = $1`, id)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrImageDeleteFailed, err)
		}

		result, err := tx.Exec(ctx, `DELETE FROM images WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrImageDeleteFailed, err)
		}
		if result.RowsAffected() == 0 {
			return ErrImageNotFound
		}
		return nil
	})
}

func (api *API) CountImagesRepo(ctx context.Context) (int64, error) {
	var count int64
	err := api.DB.QueryRow(ctx, `SELECT COUNT(*) FROM images`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (api *API) CountUsersRepo(ctx context.Context) (int64, error) {
	var count int64
	err := api.DB.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE NOT is_deleted`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
