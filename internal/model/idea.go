package model

import (
	"time"

	"github.com/google/uuid"
)

// Idea content and explanation bounds, in characters.
const (
	MinIdeaContentLen = 1
	MaxIdeaContentLen = 15
	MinExplanationLen = 1
	MaxExplanationLen = 10000
)

type Idea struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	BoardCode   string    `gorm:"type:char(6);not null;index"`
	CreatorID   string    `gorm:"not null"`
	Content     string    `gorm:"not null"`
	Explanation *string
	UpvoteCount int       `gorm:"not null;default:0;check:upvote_count >= 0"`
	Flagged     bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

// Upvote records that a board identity upvoted an idea. The pair is unique.
type Upvote struct {
	IdeaID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	VoterID string    `gorm:"primaryKey"`
}
