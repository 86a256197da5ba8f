package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Username       string    `gorm:"uniqueIndex;not null"`
	HashedPassword string    `gorm:"not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

// SavedBoard links a user to a board kept in their collection.
type SavedBoard struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	BoardCode string    `gorm:"type:char(6);primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
