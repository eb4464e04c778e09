package database

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"playtube/internal/models"
)

// VideoFilter — параметры листинга видео.
type VideoFilter struct {
	Page     int
	Limit    int
	Query    string
	SortBy   string
	SortType string
	OwnerID  *uuid.UUID
}

var videoSortColumns = map[string]string{
	"createdAt": "created_at",
	"title":     "title",
	"views":     "views",
	"duration":  "duration",
}

func (d *Database) CreateVideo(video *models.Video) error {
	return wrap(d.db.Create(video).Error, "", "")
}

func (d *Database) GetVideoByID(id uuid.UUID) (*models.Video, error) {
	video := models.Video{}
	if err := d.db.First(&video, "id = ?", id).Error; err != nil {
		return nil, wrap(err, "video not found", "")
	}
	return &video, nil
}

func (d *Database) ListVideos(filter VideoFilter) ([]models.Video, int64, error) {
	q := d.db.Model(&models.Video{})
	if filter.Query != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Query)+"%")
	}
	if filter.OwnerID != nil {
		q = q.Where("owner_id = ?", *filter.OwnerID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, wrap(err, "", "")
	}

	column, ok := videoSortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortType, "asc") {
		direction = "ASC"
	}

	var videos []models.Video
	err := q.Order(column + " " + direction).
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&videos).Error
	if err != nil {
		return nil, 0, wrap(err, "", "")
	}
	return videos, total, nil
}

func (d *Database) UpdateVideo(id, ownerID uuid.UUID, fields map[string]interface{}) (*models.Video, error) {
	res := d.db.Model(&models.Video{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(fields)
	if res.Error != nil {
		return nil, wrap(res.Error, "", "")
	}
	if res.RowsAffected == 0 {
		return nil, wrap(gorm.ErrRecordNotFound, "video not found", "")
	}
	return d.GetVideoByID(id)
}

func (d *Database) DeleteVideo(id, ownerID uuid.UUID) error {
	res := d.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Video{})
	if res.Error != nil {
		return wrap(res.Error, "", "")
	}
	if res.RowsAffected == 0 {
		return wrap(gorm.ErrRecordNotFound, "video not found", "")
	}
	return nil
}

// TogglePublish инвертирует флаг публикации видео владельца.
func (d *Database) TogglePublish(id, ownerID uuid.UUID) (*models.Video, error) {
	res := d.db.Model(&models.Video{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Update("is_published", gorm.Expr("NOT is_published"))
	if res.Error != nil {
		return nil, wrap(res.Error, "", "")
	}
	if res.RowsAffected == 0 {
		return nil, wrap(gorm.ErrRecordNotFound, "video not found", "")
	}
	return d.GetVideoByID(id)
}

// IncrementViews — единственная мутация счётчика, только +1.
func (d *Database) IncrementViews(id uuid.UUID) error {
	err := d.db.Model(&models.Video{}).
		Where("id = ?", id).
		Update("views", gorm.Expr("views + 1")).Error
	return wrap(err, "", "")
}

func (d *Database) VideosByOwner(ownerID uuid.UUID) ([]models.Video, error) {
	var videos []models.Video
	err := d.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&videos).Error
	if err != nil {
		return nil, wrap(err, "", "")
	}
	return videos, nil
}
