package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"playtube/internal/models"
)

func (d *Database) CreatePlaylist(playlist *models.Playlist) error {
	return wrap(d.db.Create(playlist).Error, "", "")
}

func (d *Database) GetPlaylistByID(id uuid.UUID) (*models.Playlist, error) {
	playlist := models.Playlist{}
	if err := d.db.First(&playlist, "id = ?", id).Error; err != nil {
		return nil, wrap(err, "playlist not found", "")
	}
	return &playlist, nil
}

func (d *Database) PlaylistsByOwner(ownerID uuid.UUID) ([]models.Playlist, error) {
	var playlists []models.Playlist
	err := d.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&playlists).Error
	if err != nil {
		return nil, wrap(err, "", "")
	}
	return playlists, nil
}

func (d *Database) UpdatePlaylist(id, ownerID uuid.UUID, name, description string) (*models.Playlist, error) {
	res := d.db.Model(&models.Playlist{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(map[string]interface{}{"name": name, "description": description})
	if res.Error != nil {
		return nil, wrap(res.Error, "", "")
	}
	if res.RowsAffected == 0 {
		return nil, wrap(gorm.ErrRecordNotFound, "playlist not found", "")
	}
	return d.GetPlaylistByID(id)
}

func (d *Database) DeletePlaylist(id, ownerID uuid.UUID) error {
	res := d.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Playlist{})
	if res.Error != nil {
		return wrap(res.Error, "", "")
	}
	if res.RowsAffected == 0 {
		return wrap(gorm.ErrRecordNotFound, "playlist not found", "")
	}
	return nil
}

// AddVideoToPlaylist добавляет видео в конец плейлиста; повторное
// добавление того же видео — no-op (set-семантика).
func (d *Database) AddVideoToPlaylist(playlistID, videoID uuid.UUID) error {
	var position int64
	err := d.db.Model(&models.PlaylistVideo{}).
		Where("playlist_id = ?", playlistID).
		Count(&position).Error
	if err != nil {
		return wrap(err, "", "")
	}
	entry := models.PlaylistVideo{
		PlaylistID: playlistID,
		VideoID:    videoID,
		Position:   int(position) + 1,
	}
	err = d.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error
	return wrap(err, "", "")
}

func (d *Database) RemoveVideoFromPlaylist(playlistID, videoID uuid.UUID) error {
	err := d.db.Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&models.PlaylistVideo{}).Error
	return wrap(err, "", "")
}

func (d *Database) PlaylistVideos(playlistID uuid.UUID) ([]models.Video, error) {
	var videos []models.Video
	err := d.db.Model(&models.Video{}).
		Joins("JOIN playlist_videos ON playlist_videos.video_id = videos.id").
		Where("playlist_videos.playlist_id = ?", playlistID).
		Order("playlist_videos.position ASC").
		Find(&videos).Error
	if err != nil {
		return nil, wrap(err, "", "")
	}
	return videos, nil
}
