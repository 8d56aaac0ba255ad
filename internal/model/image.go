package model

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type Image struct {
	ID         uuid.UUID `json:"id"`
	FileURL    string    `json:"file_url"`
	PublicID   string    `json:"-"`
	UploaderID uuid.UUID `json:"uploader_id"`
	YesCount   int       `json:"yes_count"`
	NoCount    int       `json:"no_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (img Image) TotalVotes() int {
	return img.YesCount + img.NoCount
}

func (img Image) YesPercentage() int {
	return Percentage(img.YesCount, img.TotalVotes())
}

// Stats is the derived view of an image's counters, never stored.
type Stats struct {
	YesCount      int `json:"yes_count"`
	NoCount       int `json:"no_count"`
	TotalVotes    int `json:"total_votes"`
	YesPercentage int `json:"yes_percentage"`
}

func (img Image) Stats() Stats {
	return Stats{
		YesCount:      img.YesCount,
		NoCount:       img.NoCount,
		TotalVotes:    img.TotalVotes(),
		YesPercentage: img.YesPercentage(),
	}
}

// Percentage is the one rounding rule for every percentage shown anywhere:
// round half away from zero, same as Math.round on non-negative input.
// Returns 0 when total is 0.
func Percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}

// RankedImage is an image plus its derived stats for ranking responses.
type RankedImage struct {
	Image
	TotalVotes    int `json:"total_votes"`
	YesPercentage int `json:"yes_percentage"`
}

func NewRankedImage(img Image) RankedImage {
	return RankedImage{
		Image:         img,
		TotalVotes:    img.TotalVotes(),
		YesPercentage: img.YesPercentage(),
	}
}
