package model

import (
	"time"

	"github.com/google/uuid"
)

// Note is a private annotation on an idea, visible only to its creator.
type Note struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	IdeaID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatorID string    `gorm:"not null"`
	Content   string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
