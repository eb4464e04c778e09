package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"playtube/internal/models"
)

// toggleLike снимает существующий лайк или создаёт новый. Возвращает
// итоговую запись и признак "создан" (true = лайк, false = снят).
func (d *Database) toggleLike(where string, targetID, userID uuid.UUID, create *models.Like) (*models.Like, bool, error) {
	existing := models.Like{}
	err := d.db.Where(where+" AND liked_by_id = ?", targetID, userID).First(&existing).Error
	if err == nil {
		if err := d.db.Delete(&existing).Error; err != nil {
			return nil, false, wrap(err, "", "")
		}
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, wrap(err, "", "")
	}
	if err := d.db.Create(create).Error; err != nil {
		return nil, false, wrap(err, "", "")
	}
	return create, true, nil
}

func (d *Database) ToggleVideoLike(videoID, userID uuid.UUID) (*models.Like, bool, error) {
	return d.toggleLike("video_id = ?", videoID, userID, &models.Like{
		VideoID:   &videoID,
		LikedByID: userID,
	})
}

func (d *Database) ToggleCommentLike(commentID, userID uuid.UUID) (*models.Like, bool, error) {
	return d.toggleLike("comment_id = ?", commentID, userID, &models.Like{
		CommentID: &commentID,
		LikedByID: userID,
	})
}

func (d *Database) ToggleTweetLike(tweetID, userID uuid.UUID) (*models.Like, bool, error) {
	return d.toggleLike("tweet_id = ?", tweetID, userID, &models.Like{
		TweetID:   &tweetID,
		LikedByID: userID,
	})
}

// LikedVideos возвращает видео, лайкнутые пользователем, свежие первыми.
func (d *Database) LikedVideos(userID uuid.UUID) ([]models.Video, error) {
	var videos []models.Video
	err := d.db.Model(&models.Video{}).
		Joins("JOIN likes ON likes.video_id = videos.id").
		Where("likes.liked_by_id = ?", userID).
		Order("likes.created_at DESC").
		Find(&videos).Error
	if err != nil {
		return nil, wrap(err, "", "")
	}
	return videos, nil
}
