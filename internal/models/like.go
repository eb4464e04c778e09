package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like ссылается ровно на одну из трёх целей: видео, комментарий или твит.
// Уникальность пары (цель, пользователь) не закреплена constraint'ом,
// toggle-обработчики поддерживают её сами.
type Like struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	VideoID   *uuid.UUID `gorm:"type:uuid;index" json:"video,omitempty"`
	CommentID *uuid.UUID `gorm:"type:uuid;index" json:"comment,omitempty"`
	TweetID   *uuid.UUID `gorm:"type:uuid;index" json:"tweet,omitempty"`
	LikedByID uuid.UUID  `gorm:"type:uuid;index;not null" json:"likedBy"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
