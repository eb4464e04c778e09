package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"playtube/internal/database"
	"playtube/internal/middleware"
)

type DashboardHandler struct {
	db *database.Database
}

func NewDashboardHandler(db *database.Database) *DashboardHandler {
	return &DashboardHandler{db: db}
}

// GetChannelStats — сводка по каналу текущего пользователя.
func (h *DashboardHandler) GetChannelStats(c *gin.Context) {
	stats, err := h.db.GetChannelStats(middleware.CurrentUser(c).ID)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, stats, "channel stats")
}

func (h *DashboardHandler) GetChannelVideos(c *gin.Context) {
	videos, err := h.db.VideosByOwner(middleware.CurrentUser(c).ID)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, videos, "videos")
}
