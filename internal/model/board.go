package model

import (
	"time"

	"github.com/google/uuid"
)

// AnonymousModerator is the moderator id recorded for boards created without a login.
const AnonymousModerator = "0"

type Board struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Code               string    `gorm:"type:char(6);uniqueIndex;not null"`
	Name               string    `gorm:"not null"`
	ModeratorID        string    `gorm:"not null;index"`
	AnonymousUserCount int64     `gorm:"not null;default:0"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
}

// IsModerator reports whether identity moderates the board.
func (b *Board) IsModerator(identity string) bool {
	return b.ModeratorID == identity
}
