package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"playtube/internal/blobstore"
	"playtube/internal/config"
	"playtube/internal/database"
	"playtube/internal/handlers/dto"
	"playtube/internal/middleware"
	"playtube/pkg/apperror"
)

type UserHandler struct {
	db    *database.Database
	blobs blobstore.Store
	cfg   *config.Config
}

func NewUserHandler(db *database.Database, blobs blobstore.Store, cfg *config.Config) *UserHandler {
	return &UserHandler{db: db, blobs: blobs, cfg: cfg}
}

// GetCurrentUser возвращает пользователя из контекста сессии.
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	respond(c, http.StatusOK, middleware.CurrentUser(c), "current user fetched successfully")
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, apperror.Validation("all fields are required"))
		return
	}

	// Пользователь из контекста очищен от хэша, нужна полная запись.
	user, err := h.db.GetUserByID(middleware.CurrentUser(c).ID)
	if err != nil {
		respondErr(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		respondErr(c, apperror.Validation("invalid password"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), h.cfg.BcryptCost)
	if err != nil {
		respondErr(c, apperror.Upstream("cannot hash password", err))
		return
	}
	if err := h.db.SetPassword(user.ID, string(hash)); err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{}, "password changed successfully")
}

func (h *UserHandler) UpdateAccount(c *gin.Context) {
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, apperror.Validation("all fields are required"))
		return
	}

	user, err := h.db.UpdateAccount(middleware.CurrentUser(c).ID, req.FullName, strings.ToLower(req.Email))
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, user, "user details updated successfully")
}

func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	url, err := uploadFormFile(c, h.blobs, "avatar")
	if err != nil {
		respondErr(c, err)
		return
	}

	user, err := h.db.UpdateAvatar(middleware.CurrentUser(c).ID, url)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, user, "avatar updated successfully")
}

func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	url, err := uploadFormFile(c, h.blobs, "coverImage")
	if err != nil {
		respondErr(c, err)
		return
	}

	user, err := h.db.UpdateCoverImage(middleware.CurrentUser(c).ID, url)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, user, "cover image updated successfully")
}

// GetChannelProfile — агрегированный профиль канала по username.
func (h *UserHandler) GetChannelProfile(c *gin.Context) {
	username := strings.TrimSpace(c.Param("username"))
	if username == "" {
		respondErr(c, apperror.Validation("invalid username"))
		return
	}

	profile, err := h.db.GetChannelProfile(username, middleware.CurrentUser(c).ID)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, profile, "user channel profile fetched successfully")
}

func (h *UserHandler) GetWatchHistory(c *gin.Context) {
	history, err := h.db.WatchHistory(middleware.CurrentUser(c).ID)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, history, "watch history fetched successfully")
}
