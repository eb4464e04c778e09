package handlers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"playtube/internal/blobstore"
	"playtube/internal/database"
	"playtube/internal/handlers/dto"
	"playtube/internal/middleware"
	"playtube/internal/models"
	"playtube/pkg/apperror"
)

type VideoHandler struct {
	db    *database.Database
	blobs blobstore.Store
}

func NewVideoHandler(db *database.Database, blobs blobstore.Store) *VideoHandler {
	return &VideoHandler{db: db, blobs: blobs}
}

func (h *VideoHandler) ListVideos(c *gin.Context) {
	var query dto.VideoListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondErr(c, apperror.Validation("invalid query parameters"))
		return
	}

	filter := database.VideoFilter{
		Page:     query.Page,
		Limit:    query.Limit,
		Query:    query.Query,
		SortBy:   query.SortBy,
		SortType: query.SortType,
	}
	if query.UserID != "" {
		ownerID, err := models.ParseID(query.UserID)
		if err != nil {
			respondErr(c, apperror.Validation("invalid userId"))
			return
		}
		filter.OwnerID = &ownerID
	}

	videos, total, err := h.db.ListVideos(filter)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{
		"videos":      videos,
		"page":        query.Page,
		"limit":       query.Limit,
		"totalVideos": total,
		"totalPages":  int(math.Ceil(float64(total) / float64(query.Limit))),
	}, "videos fetched successfully")
}

// PublishVideo загружает файл и превью в blob store и создаёт запись.
func (h *VideoHandler) PublishVideo(c *gin.Context) {
	var req dto.PublishVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		respondErr(c, apperror.Validation("title, description and duration are required"))
		return
	}

	videoURL, err := uploadFormFile(c, h.blobs, "videoFile")
	if err != nil {
		respondErr(c, err)
		return
	}
	thumbnailURL, err := uploadFormFile(c, h.blobs, "thumbnail")
	if err != nil {
		respondErr(c, err)
		return
	}

	video := &models.Video{
		OwnerID:     middleware.CurrentUser(c).ID,
		VideoFile:   videoURL,
		Thumbnail:   thumbnailURL,
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		IsPublished: true,
	}
	if err := h.db.CreateVideo(video); err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusCreated, video, "video uploaded successfully")
}

// GetVideoByID отдаёт видео, увеличивает счётчик просмотров и дописывает
// историю зрителя. Оба побочных эффекта best-effort.
func (h *VideoHandler) GetVideoByID(c *gin.Context) {
	id, err := pathID(c, "videoId")
	if err != nil {
		respondErr(c, err)
		return
	}

	video, err := h.db.GetVideoByID(id)
	if err != nil {
		respondErr(c, err)
		return
	}

	viewer := middleware.CurrentUser(c)
	if err := h.db.IncrementViews(id); err != nil {
		logrus.WithError(err).WithField("video", id).Warn("failed to increment views")
	} else {
		video.Views++
	}
	if err := h.db.AppendWatchHistory(viewer.ID, id); err != nil {
		logrus.WithError(err).WithField("video", id).Warn("failed to append watch history")
	}

	respond(c, http.StatusOK, video, "video found")
}

func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	id, err := pathID(c, "videoId")
	if err != nil {
		respondErr(c, err)
		return
	}

	var req dto.UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, apperror.Validation("invalid video data"))
		return
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Thumbnail != nil {
		fields["thumbnail"] = *req.Thumbnail
	}
	if len(fields) == 0 {
		respondErr(c, apperror.Validation("nothing to update"))
		return
	}

	video, err := h.db.UpdateVideo(id, middleware.CurrentUser(c).ID, fields)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, video, "video updated successfully")
}

func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	id, err := pathID(c, "videoId")
	if err != nil {
		respondErr(c, err)
		return
	}

	if err := h.db.DeleteVideo(id, middleware.CurrentUser(c).ID); err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, nil, "video deleted successfully")
}

func (h *VideoHandler) TogglePublishStatus(c *gin.Context) {
	id, err := pathID(c, "videoId")
	if err != nil {
		respondErr(c, err)
		return
	}

	video, err := h.db.TogglePublish(id, middleware.CurrentUser(c).ID)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, video, "video publish status updated successfully")
}
