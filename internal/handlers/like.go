package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"playtube/internal/database"
	"playtube/internal/middleware"
	"playtube/internal/models"
)

type LikeHandler struct {
	db *database.Database
}

func NewLikeHandler(db *database.Database) *LikeHandler {
	return &LikeHandler{db: db}
}

// respondToggle: создание лайка — 201, снятие — 200.
func respondToggle(c *gin.Context, like *models.Like, created bool, target string) {
	if created {
		respond(c, http.StatusCreated, like, target+" liked successfully")
		return
	}
	respond(c, http.StatusOK, like, target+" unliked successfully")
}

func (h *LikeHandler) toggle(c *gin.Context, param, target string,
	toggle func(targetID, userID uuid.UUID) (*models.Like, bool, error)) {
	targetID, err := pathID(c, param)
	if err != nil {
		respondErr(c, err)
		return
	}

	like, created, err := toggle(targetID, middleware.CurrentUser(c).ID)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondToggle(c, like, created, target)
}

func (h *LikeHandler) ToggleVideoLike(c *gin.Context) {
	h.toggle(c, "videoId", "video", h.db.ToggleVideoLike)
}

func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	h.toggle(c, "commentId", "comment", h.db.ToggleCommentLike)
}

func (h *LikeHandler) ToggleTweetLike(c *gin.Context) {
	h.toggle(c, "tweetId", "tweet", h.db.ToggleTweetLike)
}

func (h *LikeHandler) GetLikedVideos(c *gin.Context) {
	videos, err := h.db.LikedVideos(middleware.CurrentUser(c).ID)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, videos, "liked videos fetched successfully")
}
