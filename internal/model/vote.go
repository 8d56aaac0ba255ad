package model

import (
	"time"

	"github.com/google/uuid"
)

type Vote struct {
	ID        uuid.UUID `json:"id"`
	ImageID   uuid.UUID `json:"image_id"`
	UserID    uuid.UUID `json:"user_id"`
	Answer    bool      `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

type CastVoteRequest struct {
	ImageID string `json:"image_id" validate:"required,uuid4"`
	Answer  *bool  `json:"answer" validate:"required"`
}

// UpdatedCounts is read back from the store after a vote lands, so it
// reflects concurrent votes that committed in between.
type UpdatedCounts struct {
	ImageID       uuid.UUID `json:"image_id"`
	YesCount      int       `json:"yes_count"`
	NoCount       int       `json:"no_count"`
	TotalVotes    int       `json:"total_votes"`
	YesPercentage int       `json:"yes_percentage"`
}

// UserVoteStats is a user's voting history split by answer.
type UserVoteStats struct {
	TotalVotes    int `json:"total_votes"`
	YesVotes      int `json:"yes_votes"`
	NoVotes       int `json:"no_votes"`
	YesPercentage int `json:"yes_percentage"`
}

func NewUserVoteStats(yes, no int) UserVoteStats {
	return UserVoteStats{
		TotalVotes:    yes + no,
		YesVotes:      yes,
		NoVotes:       no,
		YesPercentage: Percentage(yes, yes+no),
	}
}

// VoteHistoryEntry joins a vote with the image it was cast on.
type VoteHistoryEntry struct {
	Vote
	ImageURL string `json:"image_url"`
}

// SiteStats are the site-wide totals shown on the landing page.
type SiteStats struct {
	Users  int64 `json:"users"`
	Images int64 `json:"images"`
	Votes  int64 `json:"votes"`
}
