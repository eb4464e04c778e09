package database

import (
	"strings"

	"github.com/google/uuid"

	"playtube/internal/models"
)

// ChannelProfile — производный read-side профиль канала. Проекция полей
// повторяет выдачу профиля: никакого пароля и refresh-токена.
type ChannelProfile struct {
	ID                        uuid.UUID `json:"id"`
	Username                  string    `json:"username"`
	FullName                  string    `json:"fullName"`
	Email                     string    `json:"email"`
	Avatar                    string    `json:"avatar"`
	CoverImage                string    `json:"coverImage"`
	SubscribersCount          int64     `json:"subscribersCount"`
	ChannelsSubscribedToCount int64     `json:"channelsSubscribedToCount"`
	IsSubscribed              bool      `json:"isSubscribed"`
}

// GetChannelProfile пересчитывает счётчики подписок на каждый запрос,
// без кэширования.
func (d *Database) GetChannelProfile(username string, viewerID uuid.UUID) (*ChannelProfile, error) {
	user := models.User{}
	err := d.db.Where("username = ?", strings.ToLower(username)).First(&user).Error
	if err != nil {
		return nil, wrap(err, "channel does not exist", "")
	}

	subscribers, err := d.CountSubscribers(user.ID)
	if err != nil {
		return nil, err
	}
	subscribedTo, err := d.CountSubscribedChannels(user.ID)
	if err != nil {
		return nil, err
	}
	isSubscribed, err := d.IsSubscribed(viewerID, user.ID)
	if err != nil {
		return nil, err
	}

	return &ChannelProfile{
		ID:                        user.ID,
		Username:                  user.Username,
		FullName:                  user.FullName,
		Email:                     user.Email,
		Avatar:                    user.Avatar,
		CoverImage:                user.CoverImage,
		SubscribersCount:          subscribers,
		ChannelsSubscribedToCount: subscribedTo,
		IsSubscribed:              isSubscribed,
	}, nil
}
