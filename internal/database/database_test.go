package database

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"playtube/internal/models"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	return New(db)
}

func newRandomID() uuid.UUID {
	return uuid.New()
}

func seedUser(t *testing.T, d *Database, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		FullName:     "Test " + username,
		Avatar:       "https://blobs.test/" + username + ".png",
		PasswordHash: "hash",
	}
	require.NoError(t, d.CreateUser(user))
	return user
}

func seedVideo(t *testing.T, d *Database, owner *models.User, title string) *models.Video {
	t.Helper()

	video := &models.Video{
		OwnerID:     owner.ID,
		VideoFile:   "https://blobs.test/" + title + ".mp4",
		Thumbnail:   "https://blobs.test/" + title + ".png",
		Title:       title,
		Description: "about " + title,
		Duration:    42,
		IsPublished: true,
	}
	require.NoError(t, d.CreateVideo(video))
	return video
}

func seedComment(t *testing.T, d *Database, video *models.Video, owner *models.User, content string) *models.Comment {
	t.Helper()

	comment := &models.Comment{
		Content: content,
		VideoID: video.ID,
		OwnerID: owner.ID,
	}
	require.NoError(t, d.CreateComment(comment))
	return comment
}
