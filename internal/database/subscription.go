package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"playtube/internal/models"
)

// ToggleSubscription создаёт или удаляет ребро подписки. Возвращает
// итоговую запись и признак "подписан".
func (d *Database) ToggleSubscription(subscriberID, channelID uuid.UUID) (*models.Subscription, bool, error) {
	existing := models.Subscription{}
	err := d.db.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		First(&existing).Error
	if err == nil {
		if err := d.db.Delete(&existing).Error; err != nil {
			return nil, false, wrap(err, "", "")
		}
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, wrap(err, "", "")
	}
	sub := models.Subscription{SubscriberID: subscriberID, ChannelID: channelID}
	if err := d.db.Create(&sub).Error; err != nil {
		return nil, false, wrap(err, "", "")
	}
	return &sub, true, nil
}

// SubscribersOf — кто подписан на канал.
func (d *Database) SubscribersOf(channelID uuid.UUID) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := d.db.Where("channel_id = ?", channelID).Find(&subs).Error
	if err != nil {
		return nil, wrap(err, "", "")
	}
	return subs, nil
}

// SubscribedChannels — на кого подписан пользователь.
func (d *Database) SubscribedChannels(subscriberID uuid.UUID) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := d.db.Where("subscriber_id = ?", subscriberID).Find(&subs).Error
	if err != nil {
		return nil, wrap(err, "", "")
	}
	return subs, nil
}

func (d *Database) CountSubscribers(channelID uuid.UUID) (int64, error) {
	var count int64
	err := d.db.Model(&models.Subscription{}).
		Where("channel_id = ?", channelID).
		Count(&count).Error
	return count, wrap(err, "", "")
}

func (d *Database) CountSubscribedChannels(subscriberID uuid.UUID) (int64, error) {
	var count int64
	err := d.db.Model(&models.Subscription{}).
		Where("subscriber_id = ?", subscriberID).
		Count(&count).Error
	return count, wrap(err, "", "")
}

func (d *Database) IsSubscribed(subscriberID, channelID uuid.UUID) (bool, error) {
	var count int64
	err := d.db.Model(&models.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&count).Error
	return count > 0, wrap(err, "", "")
}
