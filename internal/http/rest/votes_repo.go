package rest

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kekechi03/ero/internal/model"
)

var (
	ErrImageNotFound   = errors.New("image not found")
	ErrAlreadyVoted    = errors.New("already voted on this image")
	ErrVoteWriteFailed = errors.New("failed to record vote")
)

const pgUniqueViolation = "23505"

// EligibleImagesRepo returns every image the user has not voted on yet.
func (api *API) EligibleImagesRepo(ctx context.Context, userID uuid.UUID) ([]model.Image, error) {
	query := `
        SELECT i.id, i.file_url, i.uploader_id, i.yes_count, i.no_count, i.created_at, i.updated_at
        FROM images i
        WHERE NOT EXISTS (
            SELECT 1 FROM votes v WHERE v.image_id = i.id AND v.user_id = $1
        )
    `
	rows, err := api.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying eligible images: %w", err)
	}
	defer rows.Close()

	var images []model.Image
	for rows.Next() {
		var img model.Image
		err := rows.Scan(
			&img.ID, &img.FileURL, &img.UploaderID,
			&img.YesCount, &img.NoCount, &img.CreatedAt, &img.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (api *API) HasVotedRepo(ctx context.Context, userID, imageID uuid.UUID) (bool, error) {
	var exists bool
	stmt := `SELECT EXISTS(SELECT 1 FROM votes WHERE user_id = $1 AND image_id = $2)`

	err := api.DB.QueryRow(ctx, stmt, userID, imageID).Scan(&exists)
	if err != nil {
		log.Println("error checking existing vote", err)
		return false, err
	}
	return exists, nil
}

// RecordVoteRepo inserts the vote and bumps the matching counter in one
// transaction. The increment happens in SQL, never read-modify-write from
// here, so concurrent votes on the same image cannot lose updates. The
// returned counts are the post-increment values read back from the store.
func (api *API) RecordVoteRepo(ctx context.Context, vote model.Vote) (model.UpdatedCounts, error) {
	var counts model.UpdatedCounts

	err := api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		insert := `
            INSERT INTO votes (id, image_id, user_id, answer)
            VALUES ($1, $2, $3, $4)
        `
		_, err := tx.Exec(ctx, insert, vote.ID, vote.ImageID, vote.UserID, vote.Answer)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return ErrAlreadyVoted
			}
			return fmt.Errorf("%w: %v", ErrVoteWriteFailed, err)
		}

		column := "no_count"
		if vote.Answer {
			column = "yes_count"
		}
		update := fmt.Sprintf(`
            UPDATE images
            SET %s = %s + 1, updated_at = NOW()
            WHERE id = $1
            RETURNING yes_count, no_count
        `, column, column)

		err = tx.QueryRow(ctx, update, vote.ImageID).Scan(&counts.YesCount, &counts.NoCount)
		if err == pgx.ErrNoRows {
			return ErrImageNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrVoteWriteFailed, err)
		}
		return nil
	})
	if err != nil {
		return model.UpdatedCounts{}, err
	}

	counts.ImageID = vote.ImageID
	counts.TotalVotes = counts.YesCount + counts.NoCount
	counts.YesPercentage = model.Percentage(counts.YesCount, counts.TotalVotes)
	return counts, nil
}

// UserVotesRepo lists a user's votes joined with the rated image, newest first.
func (api *API) UserVotesRepo(ctx context.Context, userID uuid.UUID, limit int) ([]model.VoteHistoryEntry, error) {
	query := `
        SELECT v.id, v.image_id, v.user_id, v.answer, v.created_at, i.file_url
        FROM votes v
        JOIN images i ON i.id = v.image_id
        WHERE v.user_id = $1
        ORDER BY v.created_at DESC
        LIMIT $2
    `
	rows, err := api.DB.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying user votes: %w", err)
	}
	defer rows.Close()

	var entries []model.VoteHistoryEntry
	for rows.Next() {
		var e model.VoteHistoryEntry
		err := rows.Scan(&e.ID, &e.ImageID, &e.UserID, &e.Answer, &e.CreatedAt, &e.ImageURL)
		if err != nil {
			return nil, fmt.Errorf("scanning vote: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (api *API) UserVoteStatsRepo(ctx context.Context, userID uuid.UUID) (model.UserVoteStats, error) {
	var yes, no int
	stmt := `
        SELECT
            COUNT(*) FILTER (WHERE answer),
            COUNT(*) FILTER (WHERE NOT answer)
        FROM votes
        WHERE user_id = $1
    `
	err := api.DB.QueryRow(ctx, stmt, userID).Scan(&yes, &no)
	if err != nil {
		log.Println("error getting user vote stats", err)
		return model.UserVoteStats{}, err
	}
	return model.NewUserVoteStats(yes, no), nil
}

func (api *API) CountVotesRepo(ctx context.Context) (int64, error) {
	var count int64
	err := api.DB.QueryRow(ctx, `SELECT COUNT(*) FROM votes`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
