package rest

import (
	"context"
	"math/rand"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/kekechi03/ero/internal/model"
	"github.com/kekechi03/ero/util"
	"github.com/kekechi03/ero/util/values"
)

// SelectNextImage picks one image the user has not rated yet, uniformly at
// random among the eligible set. Read-only; store errors propagate to the
// caller untouched. A fresh rand per request; *rand.Rand is not safe to
// share across handler goroutines.
func (api *API) SelectNextImage(ctx context.Context, userID uuid.UUID) (model.Image, string, string, error) {
	eligible, err := api.EligibleImagesRepo(ctx, userID)
	if err != nil {
		return model.Image{}, values.Error, "Failed to load images", err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	img, ok := pickNextImage(eligible, rng)
	if !ok {
		// Terminal for now, not an error: the user rated everything.
		return model.Image{}, values.NoneAvailable, "No unrated images available", nil
	}

	return img, values.Success, "Next image selected", nil
}

// pickNextImage chooses uniformly at random, skipping records with a broken
// file reference instead of surfacing them to the UI. Returns false when
// nothing usable remains.
func pickNextImage(images []model.Image, rng *rand.Rand) (model.Image, bool) {
	if len(images) == 0 {
		return model.Image{}, false
	}

	shuffled := make([]model.Image, len(images))
	copy(shuffled, images)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	for _, img := range shuffled {
		if reachableFileRef(img.FileURL) {
			return img, true
		}
	}
	return model.Image{}, false
}

// reachableFileRef judges the file reference structurally: blank or
// unparseable URLs are broken records. The CDN is not probed per request.
func reachableFileRef(fileURL string) bool {
	if fileURL == "" {
		return false
	}
	u, err := url.Parse(fileURL)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// RecordVote validates the target, guards the one-vote-per-pair invariant
// and commits the vote. The returned counts are read back from the store.
func (api *API) RecordVote(ctx context.Context, userID, imageID uuid.UUID, answer bool) (model.UpdatedCounts, string, string, error) {
	_, err := api.GetImageByIDRepo(ctx, imageID)
	if err == ErrImageNotFound {
		return model.UpdatedCounts{}, values.NotFound, "Image not found", ErrImageNotFound
	}
	if err != nil {
		return model.UpdatedCounts{}, values.Error, "Failed to load image", err
	}

	// Best-effort pre-check. The unique constraint is the real guard; this
	// just gives a friendly answer before attempting the write.
	voted, err := api.HasVotedRepo(ctx, userID, imageID)
	if err != nil {
		return model.UpdatedCounts{}, values.Error, "Failed to check existing vote", err
	}
	if voted {
		return model.UpdatedCounts{}, values.Conflict, "You have already rated this image", ErrAlreadyVoted
	}

	vote := model.Vote{
		ID:      util.GenerateUUID(),
		ImageID: imageID,
		UserID:  userID,
		Answer:  answer,
	}

	counts, err := api.RecordVoteRepo(ctx, vote)
	if err == ErrAlreadyVoted {
		return model.UpdatedCounts{}, values.Conflict, "You have already rated this image", err
	}
	if err == ErrImageNotFound {
		return model.UpdatedCounts{}, values.NotFound, "Image not found", err
	}
	if err != nil {
		return model.UpdatedCounts{}, values.Error, "Failed to record vote", err
	}

	go api.Deps.Feed.BroadcastVoteUpdate(counts)

	return counts, values.Created, "Vote recorded", nil
}
