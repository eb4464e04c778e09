package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleVideoLikeIsIdempotentOverTwoCalls(t *testing.T) {
	d := newTestDatabase(t)
	owner := seedUser(t, d, "owner")
	viewer := seedUser(t, d, "viewer")
	video := seedVideo(t, d, owner, "clip")

	like, created, err := d.ToggleVideoLike(video.ID, viewer.ID)
	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, like.VideoID)
	assert.Equal(t, video.ID, *like.VideoID)

	_, created, err = d.ToggleVideoLike(video.ID, viewer.ID)
	require.NoError(t, err)
	assert.False(t, created)

	// После двух вызовов лайков нет.
	videos, err := d.LikedVideos(viewer.ID)
	require.NoError(t, err)
	assert.Empty(t, videos)
}

func TestToggleLikeIsPerUser(t *testing.T) {
	d := newTestDatabase(t)
	owner := seedUser(t, d, "owner")
	alice := seedUser(t, d, "alice")
	bob := seedUser(t, d, "bob")
	video := seedVideo(t, d, owner, "clip")

	_, created, err := d.ToggleVideoLike(video.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, created)

	// Лайк другого пользователя — независимая запись.
	_, created, err = d.ToggleVideoLike(video.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, created)

	aliceVideos, err := d.LikedVideos(alice.ID)
	require.NoError(t, err)
	assert.Len(t, aliceVideos, 1)
}

func TestToggleCommentAndTweetLikes(t *testing.T) {
	d := newTestDatabase(t)
	user := seedUser(t, d, "user")
	commentID := newRandomID()
	tweetID := newRandomID()

	like, created, err := d.ToggleCommentLike(commentID, user.ID)
	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, like.CommentID)
	assert.Nil(t, like.VideoID)

	like, created, err = d.ToggleTweetLike(tweetID, user.ID)
	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, like.TweetID)

	_, created, err = d.ToggleTweetLike(tweetID, user.ID)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestLikedVideosNewestFirst(t *testing.T) {
	d := newTestDatabase(t)
	owner := seedUser(t, d, "owner")
	viewer := seedUser(t, d, "viewer")
	first := seedVideo(t, d, owner, "first")
	second := seedVideo(t, d, owner, "second")

	_, _, err := d.ToggleVideoLike(first.ID, viewer.ID)
	require.NoError(t, err)
	_, _, err = d.ToggleVideoLike(second.ID, viewer.ID)
	require.NoError(t, err)

	videos, err := d.LikedVideos(viewer.ID)
	require.NoError(t, err)
	require.Len(t, videos, 2)
}
