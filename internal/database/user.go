package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"playtube/internal/models"
)

func (d *Database) CreateUser(user *models.User) error {
	return wrap(d.db.Create(user).Error,
		"user not found", "user with email or username already exists")
}

func (d *Database) GetUserByID(id uuid.UUID) (*models.User, error) {
	user := models.User{}
	if err := d.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, wrap(err, "user not found", "")
	}
	return &user, nil
}

// FindUserByLogin ищет по username или email — логин принимает оба.
func (d *Database) FindUserByLogin(username, email string) (*models.User, error) {
	user := models.User{}
	err := d.db.Where("username = ? OR email = ?", username, email).First(&user).Error
	if err != nil {
		return nil, wrap(err, "user does not exist", "")
	}
	return &user, nil
}

func (d *Database) UserTaken(username, email string) (bool, error) {
	var count int64
	err := d.db.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return false, wrap(err, "", "")
	}
	return count > 0, nil
}

// SetRefreshToken перезаписывает единственный активный refresh-токен;
// пустая строка очищает его (logout).
func (d *Database) SetRefreshToken(id uuid.UUID, token string) error {
	res := d.db.Model(&models.User{}).Where("id = ?", id).Update("refresh_token", token)
	if res.Error != nil {
		return wrap(res.Error, "user not found", "")
	}
	return nil
}

func (d *Database) SetPassword(id uuid.UUID, passwordHash string) error {
	res := d.db.Model(&models.User{}).Where("id = ?", id).Update("password_hash", passwordHash)
	if res.Error != nil {
		return wrap(res.Error, "user not found", "")
	}
	return nil
}

func (d *Database) UpdateAccount(id uuid.UUID, fullName, email string) (*models.User, error) {
	err := d.db.Model(&models.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{"full_name": fullName, "email": email}).Error
	if err != nil {
		return nil, wrap(err, "user not found", "user with email already exists")
	}
	return d.GetUserByID(id)
}

func (d *Database) UpdateAvatar(id uuid.UUID, url string) (*models.User, error) {
	err := d.db.Model(&models.User{}).Where("id = ?", id).Update("avatar", url).Error
	if err != nil {
		return nil, wrap(err, "user not found", "")
	}
	return d.GetUserByID(id)
}

func (d *Database) UpdateCoverImage(id uuid.UUID, url string) (*models.User, error) {
	err := d.db.Model(&models.User{}).Where("id = ?", id).Update("cover_image", url).Error
	if err != nil {
		return nil, wrap(err, "user not found", "")
	}
	return d.GetUserByID(id)
}

// AppendWatchHistory добавляет видео в историю; повторный просмотр лишь
// обновляет watched_at.
func (d *Database) AppendWatchHistory(userID, videoID uuid.UUID) error {
	entry := models.WatchHistoryEntry{
		UserID:    userID,
		VideoID:   videoID,
		WatchedAt: time.Now(),
	}
	err := d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"watched_at": entry.WatchedAt}),
	}).Create(&entry).Error
	return wrap(err, "", "")
}

// WatchHistoryVideo — видео из истории с проекцией владельца
// (fullName, username, avatar), как в исходной выдаче.
type WatchHistoryVideo struct {
	models.Video
	Owner VideoOwner `json:"ownerInfo" gorm:"embedded;embeddedPrefix:owner_info_"`
}

type VideoOwner struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

func (d *Database) WatchHistory(userID uuid.UUID) ([]WatchHistoryVideo, error) {
	var history []WatchHistoryVideo
	err := d.db.Model(&models.Video{}).
		Select("videos.*, users.full_name AS owner_info_full_name, users.username AS owner_info_username, users.avatar AS owner_info_avatar").
		Joins("JOIN watch_history_entries ON watch_history_entries.video_id = videos.id").
		Joins("JOIN users ON users.id = videos.owner_id").
		Where("watch_history_entries.user_id = ?", userID).
		Order("watch_history_entries.watched_at DESC").
		Find(&history).Error
	if err != nil {
		return nil, wrap(err, "", "")
	}
	return history, nil
}
