package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"playtube/internal/models"
)

func (d *Database) CreateComment(comment *models.Comment) error {
	return wrap(d.db.Create(comment).Error, "", "")
}

func (d *Database) CommentsByVideo(videoID uuid.UUID, page, limit int) ([]models.Comment, error) {
	var comments []models.Comment
	err := d.db.Where("video_id = ?", videoID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, wrap(err, "", "")
	}
	return comments, nil
}

func (d *Database) UpdateComment(id, ownerID uuid.UUID, content string) (*models.Comment, error) {
	res := d.db.Model(&models.Comment{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Update("content", content)
	if res.Error != nil {
		return nil, wrap(res.Error, "", "")
	}
	if res.RowsAffected == 0 {
		return nil, wrap(gorm.ErrRecordNotFound, "comment not found", "")
	}
	comment := models.Comment{}
	if err := d.db.First(&comment, "id = ?", id).Error; err != nil {
		return nil, wrap(err, "comment not found", "")
	}
	return &comment, nil
}

func (d *Database) DeleteComment(id, ownerID uuid.UUID) error {
	res := d.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Comment{})
	if res.Error != nil {
		return wrap(res.Error, "", "")
	}
	if res.RowsAffected == 0 {
		return wrap(gorm.ErrRecordNotFound, "comment not found", "")
	}
	return nil
}
