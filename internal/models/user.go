package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	FullName     string    `gorm:"index;not null" json:"fullName"`
	Avatar       string    `gorm:"not null" json:"avatar"`
	CoverImage   string    `json:"coverImage"`
	PasswordHash string    `gorm:"not null" json:"-"`
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// WatchHistoryEntry — упорядоченная запись истории просмотров пользователя.
type WatchHistoryEntry struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	VideoID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	WatchedAt time.Time
}
