package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"playtube/internal/database"
	"playtube/internal/handlers/dto"
	"playtube/internal/middleware"
	"playtube/internal/models"
	"playtube/pkg/apperror"
)

type PlaylistHandler struct {
	db *database.Database
}

func NewPlaylistHandler(db *database.Database) *PlaylistHandler {
	return &PlaylistHandler{db: db}
}

func (h *PlaylistHandler) CreatePlaylist(c *gin.Context) {
	var req dto.PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, apperror.Validation("name and description are required"))
		return
	}

	playlist := &models.Playlist{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     middleware.CurrentUser(c).ID,
	}
	if err := h.db.CreatePlaylist(playlist); err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusCreated, playlist, "playlist created successfully")
}

// GetPlaylistByID отдаёт плейлист вместе с упорядоченным списком видео.
func (h *PlaylistHandler) GetPlaylistByID(c *gin.Context) {
	playlistID, err := pathID(c, "playlistId")
	if err != nil {
		respondErr(c, err)
		return
	}

	playlist, err := h.db.GetPlaylistByID(playlistID)
	if err != nil {
		respondErr(c, err)
		return
	}
	videos, err := h.db.PlaylistVideos(playlistID)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{
		"playlist": playlist,
		"videos":   videos,
	}, "playlist fetched successfully")
}

func (h *PlaylistHandler) GetUserPlaylists(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		respondErr(c, err)
		return
	}

	playlists, err := h.db.PlaylistsByOwner(userID)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, playlists, "user playlists fetched successfully")
}

func (h *PlaylistHandler) UpdatePlaylist(c *gin.Context) {
	playlistID, err := pathID(c, "playlistId")
	if err != nil {
		respondErr(c, err)
		return
	}

	var req dto.PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, apperror.Validation("name and description are required"))
		return
	}

	playlist, err := h.db.UpdatePlaylist(playlistID, middleware.CurrentUser(c).ID, req.Name, req.Description)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, playlist, "playlist updated successfully")
}

func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	playlistID, err := pathID(c, "playlistId")
	if err != nil {
		respondErr(c, err)
		return
	}

	if err := h.db.DeletePlaylist(playlistID, middleware.CurrentUser(c).ID); err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, nil, "playlist deleted successfully")
}

// AddVideoToPlaylist проверяет существование плейлиста и видео двумя
// независимыми запросами перед вставкой, без транзакции.
func (h *PlaylistHandler) AddVideoToPlaylist(c *gin.Context) {
	playlistID, err := pathID(c, "playlistId")
	if err != nil {
		respondErr(c, err)
		return
	}
	videoID, err := pathID(c, "videoId")
	if err != nil {
		respondErr(c, err)
		return
	}

	if _, err := h.db.GetPlaylistByID(playlistID); err != nil {
		respondErr(c, err)
		return
	}
	if _, err := h.db.GetVideoByID(videoID); err != nil {
		respondErr(c, err)
		return
	}

	if err := h.db.AddVideoToPlaylist(playlistID, videoID); err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, nil, "video added to playlist successfully")
}

func (h *PlaylistHandler) RemoveVideoFromPlaylist(c *gin.Context) {
	playlistID, err := pathID(c, "playlistId")
	if err != nil {
		respondErr(c, err)
		return
	}
	videoID, err := pathID(c, "videoId")
	if err != nil {
		respondErr(c, err)
		return
	}

	if err := h.db.RemoveVideoFromPlaylist(playlistID, videoID); err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, nil, "video removed from playlist successfully")
}
