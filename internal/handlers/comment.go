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

type CommentHandler struct {
	db *database.Database
}

func NewCommentHandler(db *database.Database) *CommentHandler {
	return &CommentHandler{db: db}
}

func (h *CommentHandler) GetVideoComments(c *gin.Context) {
	videoID, err := pathID(c, "videoId")
	if err != nil {
		respondErr(c, err)
		return
	}

	var page dto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		respondErr(c, apperror.Validation("invalid query parameters"))
		return
	}

	comments, err := h.db.CommentsByVideo(videoID, page.Page, page.Limit)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, comments, "comments fetched successfully")
}

func (h *CommentHandler) AddComment(c *gin.Context) {
	videoID, err := pathID(c, "videoId")
	if err != nil {
		respondErr(c, err)
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, apperror.Validation("content is required"))
		return
	}

	comment := &models.Comment{
		Content: req.Content,
		VideoID: videoID,
		OwnerID: middleware.CurrentUser(c).ID,
	}
	if err := h.db.CreateComment(comment); err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusCreated, comment, "comment added successfully")
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, err := pathID(c, "commentId")
	if err != nil {
		respondErr(c, err)
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, apperror.Validation("content is required"))
		return
	}

	comment, err := h.db.UpdateComment(commentID, middleware.CurrentUser(c).ID, req.Content)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, comment, "comment updated successfully")
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := pathID(c, "commentId")
	if err != nil {
		respondErr(c, err)
		return
	}

	if err := h.db.DeleteComment(commentID, middleware.CurrentUser(c).ID); err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, nil, "comment deleted successfully")
}
