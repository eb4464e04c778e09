package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"playtube/internal/database"
	"playtube/pkg/apperror"
)

type HealthcheckHandler struct {
	db *database.Database
}

func NewHealthcheckHandler(db *database.Database) *HealthcheckHandler {
	return &HealthcheckHandler{db: db}
}

func (h *HealthcheckHandler) Healthcheck(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		respondErr(c, apperror.Upstream("database unreachable", err))
		return
	}
	respond(c, http.StatusOK, gin.H{}, "OK")
}
