package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playtube/pkg/apperror"
)

func TestListVideosFilterAndPagination(t *testing.T) {
	d := newTestDatabase(t)
	owner := seedUser(t, d, "owner")
	other := seedUser(t, d, "other")
	seedVideo(t, d, owner, "Go tutorial")
	seedVideo(t, d, owner, "Rust tutorial")
	seedVideo(t, d, other, "Go talk")

	videos, total, err := d.ListVideos(VideoFilter{Page: 1, Limit: 10, Query: "go"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, videos, 2)

	videos, total, err = d.ListVideos(VideoFilter{Page: 1, Limit: 10, OwnerID: &owner.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	videos, total, err = d.ListVideos(VideoFilter{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, videos, 1)
}

func TestListVideosSortByTitleAsc(t *testing.T) {
	d := newTestDatabase(t)
	owner := seedUser(t, d, "owner")
	seedVideo(t, d, owner, "b-video")
	seedVideo(t, d, owner, "a-video")

	videos, _, err := d.ListVideos(VideoFilter{Page: 1, Limit: 10, SortBy: "title", SortType: "asc"})
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "a-video", videos[0].Title)
}

func TestIncrementViewsIsMonotonic(t *testing.T) {
	d := newTestDatabase(t)
	owner := seedUser(t, d, "owner")
	video := seedVideo(t, d, owner, "clip")

	require.NoError(t, d.IncrementViews(video.ID))
	require.NoError(t, d.IncrementViews(video.ID))

	stored, err := d.GetVideoByID(video.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stored.Views)
}

func TestUpdateVideoScopedToOwner(t *testing.T) {
	d := newTestDatabase(t)
	owner := seedUser(t, d, "owner")
	stranger := seedUser(t, d, "stranger")
	video := seedVideo(t, d, owner, "clip")

	_, err := d.UpdateVideo(video.ID, stranger.ID, map[string]interface{}{"title": "stolen"})
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	updated, err := d.UpdateVideo(video.ID, owner.ID, map[string]interface{}{"title": "renamed"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
}

func TestTogglePublish(t *testing.T) {
	d := newTestDatabase(t)
	owner := seedUser(t, d, "owner")
	video := seedVideo(t, d, owner, "clip")

	toggled, err := d.TogglePublish(video.ID, owner.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsPublished)

	toggled, err = d.TogglePublish(video.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsPublished)
}

func TestDeleteVideoLeavesCommentsOrphaned(t *testing.T) {
	d := newTestDatabase(t)
	owner := seedUser(t, d, "owner")
	video := seedVideo(t, d, owner, "clip")

	comment := seedComment(t, d, video, owner, "nice")
	require.NoError(t, d.DeleteVideo(video.ID, owner.ID))

	_, err := d.GetVideoByID(video.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	// Каскадных удалений нет: комментарий переживает видео.
	comments, err := d.CommentsByVideo(video.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, comment.ID, comments[0].ID)
}

func TestChannelStats(t *testing.T) {
	d := newTestDatabase(t)
	owner := seedUser(t, d, "owner")
	fan := seedUser(t, d, "fan")
	first := seedVideo(t, d, owner, "first")
	second := seedVideo(t, d, owner, "second")

	require.NoError(t, d.IncrementViews(first.ID))
	require.NoError(t, d.IncrementViews(first.ID))
	require.NoError(t, d.IncrementViews(second.ID))

	_, _, err := d.ToggleSubscription(fan.ID, owner.ID)
	require.NoError(t, err)
	_, _, err = d.ToggleVideoLike(first.ID, fan.ID)
	require.NoError(t, err)

	stats, err := d.GetChannelStats(owner.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalVideos)
	assert.EqualValues(t, 3, stats.TotalVideoViews)
	assert.EqualValues(t, 1, stats.TotalSubscribers)
	assert.EqualValues(t, 1, stats.TotalLikes)
}
