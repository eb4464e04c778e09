package database

import (
	"github.com/google/uuid"

	"playtube/internal/models"
)

// ChannelStats — сводка дашборда канала.
type ChannelStats struct {
	TotalVideos      int64 `json:"totalVideos"`
	TotalVideoViews  int64 `json:"totalVideoViews"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalLikes       int64 `json:"totalLikes"`
}

func (d *Database) GetChannelStats(ownerID uuid.UUID) (*ChannelStats, error) {
	stats := ChannelStats{}

	err := d.db.Model(&models.Video{}).
		Where("owner_id = ?", ownerID).
		Count(&stats.TotalVideos).Error
	if err != nil {
		return nil, wrap(err, "", "")
	}

	err = d.db.Model(&models.Video{}).
		Where("owner_id = ?", ownerID).
		Select("COALESCE(SUM(views), 0)").
		Scan(&stats.TotalVideoViews).Error
	if err != nil {
		return nil, wrap(err, "", "")
	}

	err = d.db.Model(&models.Subscription{}).
		Where("channel_id = ?", ownerID).
		Count(&stats.TotalSubscribers).Error
	if err != nil {
		return nil, wrap(err, "", "")
	}

	err = d.db.Model(&models.Like{}).
		Where("video_id IN (?)", d.db.Model(&models.Video{}).
			Select("id").
			Where("owner_id = ?", ownerID)).
		Count(&stats.TotalLikes).Error
	if err != nil {
		return nil, wrap(err, "", "")
	}

	return &stats, nil
}
