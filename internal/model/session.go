package model

import "time"

// Session is the server-side state behind a session cookie. Data holds the
// logged-in user and the per-board identities as JSON.
type Session struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	Data      string    `gorm:"type:jsonb;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
