package server

import "github.com/gin-gonic/gin"

// APIEndpoints собирает версионированную таблицу маршрутов. Публичные:
// register, login, refresh-token, healthcheck; остальное за сессией.
func APIEndpoints(r *gin.Engine, authMW gin.HandlerFunc, h *Handlers) {
	v1 := r.Group("/api/v1")

	v1.GET("/healthcheck", h.Health.Healthcheck)

	users := v1.Group("/users")
	{
		users.POST("/register", h.Auth.Register)
		users.POST("/login", h.Auth.Login)
		users.POST("/refresh-token", h.Auth.RefreshToken)

		users.POST("/logout", authMW, h.Auth.Logout)
		users.POST("/change-password", authMW, h.User.ChangePassword)
		users.GET("/current-user", authMW, h.User.GetCurrentUser)
		users.PATCH("/update-account", authMW, h.User.UpdateAccount)
		users.PATCH("/avatar", authMW, h.User.UpdateAvatar)
		users.PATCH("/cover-image", authMW, h.User.UpdateCoverImage)
		users.GET("/c/:username", authMW, h.User.GetChannelProfile)
		users.GET("/history", authMW, h.User.GetWatchHistory)
	}

	videos := v1.Group("/videos", authMW)
	{
		videos.GET("", h.Video.ListVideos)
		videos.POST("", h.Video.PublishVideo)
		videos.GET("/:videoId", h.Video.GetVideoByID)
		videos.PATCH("/:videoId", h.Video.UpdateVideo)
		videos.DELETE("/:videoId", h.Video.DeleteVideo)
		videos.PATCH("/toggle/publish/:videoId", h.Video.TogglePublishStatus)
	}

	comments := v1.Group("/comments", authMW)
	{
		comments.GET("/:videoId", h.Comment.GetVideoComments)
		comments.POST("/:videoId", h.Comment.AddComment)
		comments.PATCH("/c/:commentId", h.Comment.UpdateComment)
		comments.DELETE("/c/:commentId", h.Comment.DeleteComment)
	}

	tweets := v1.Group("/tweets", authMW)
	{
		tweets.POST("", h.Tweet.CreateTweet)
		tweets.GET("/user", h.Tweet.GetUserTweets)
		tweets.PATCH("/:tweetId", h.Tweet.UpdateTweet)
		tweets.DELETE("/:tweetId", h.Tweet.DeleteTweet)
	}

	likes := v1.Group("/likes", authMW)
	{
		likes.POST("/toggle/v/:videoId", h.Like.ToggleVideoLike)
		likes.POST("/toggle/c/:commentId", h.Like.ToggleCommentLike)
		likes.POST("/toggle/t/:tweetId", h.Like.ToggleTweetLike)
		likes.GET("/videos", h.Like.GetLikedVideos)
	}

	subscriptions := v1.Group("/subscriptions", authMW)
	{
		subscriptions.POST("/c/:channelId", h.Subscription.ToggleSubscription)
		subscriptions.GET("/c/:channelId", h.Subscription.GetChannelSubscribers)
		subscriptions.GET("/u/:subscriberId", h.Subscription.GetSubscribedChannels)
	}

	playlist := v1.Group("/playlist", authMW)
	{
		playlist.POST("", h.Playlist.CreatePlaylist)
		playlist.GET("/:playlistId", h.Playlist.GetPlaylistByID)
		playlist.PATCH("/:playlistId", h.Playlist.UpdatePlaylist)
		playlist.DELETE("/:playlistId", h.Playlist.DeletePlaylist)
		playlist.PATCH("/add/:videoId/:playlistId", h.Playlist.AddVideoToPlaylist)
		playlist.PATCH("/remove/:videoId/:playlistId", h.Playlist.RemoveVideoFromPlaylist)
		playlist.GET("/user/:userId", h.Playlist.GetUserPlaylists)
	}

	dashboard := v1.Group("/dashboard", authMW)
	{
		dashboard.GET("/stats", h.Dashboard.GetChannelStats)
		dashboard.GET("/videos", h.Dashboard.GetChannelVideos)
	}
}
