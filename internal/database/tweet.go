package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"playtube/internal/models"
)

func (d *Database) CreateTweet(tweet *models.Tweet) error {
	return wrap(d.db.Create(tweet).Error, "", "")
}

func (d *Database) TweetsByOwner(ownerID uuid.UUID) ([]models.Tweet, error) {
	var tweets []models.Tweet
	err := d.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&tweets).Error
	if err != nil {
		return nil, wrap(err, "", "")
	}
	return tweets, nil
}

func (d *Database) UpdateTweet(id, ownerID uuid.UUID, content string) (*models.Tweet, error) {
	res := d.db.Model(&models.Tweet{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Update("content", content)
	if res.Error != nil {
		return nil, wrap(res.Error, "", "")
	}
	if res.RowsAffected == 0 {
		return nil, wrap(gorm.ErrRecordNotFound, "tweet not found", "")
	}
	tweet := models.Tweet{}
	if err := d.db.First(&tweet, "id = ?", id).Error; err != nil {
		return nil, wrap(err, "tweet not found", "")
	}
	return &tweet, nil
}

func (d *Database) DeleteTweet(id, ownerID uuid.UUID) error {
	res := d.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Tweet{})
	if res.Error != nil {
		return wrap(res.Error, "", "")
	}
	if res.RowsAffected == 0 {
		return wrap(gorm.ErrRecordNotFound, "tweet not found", "")
	}
	return nil
}
