package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'sessions' table. One row per signed-in client;
// deleting the row revokes the session everywhere, including outstanding
// access tokens that still carry its ID.
type SessionModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Email         string    `gorm:"type:varchar(255);not null"`
	Role          string    `gorm:"type:varchar(20);not null"`
	TokenHash     string    `gorm:"type:char(64);not null;uniqueIndex"`
	ProviderToken string    `gorm:"type:text"`
	ExpiresAt     time.Time `gorm:"not null;index"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
