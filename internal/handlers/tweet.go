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

type TweetHandler struct {
	db *database.Database
}

func NewTweetHandler(db *database.Database) *TweetHandler {
	return &TweetHandler{db: db}
}

func (h *TweetHandler) CreateTweet(c *gin.Context) {
	var req dto.TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, apperror.Validation("content is required"))
		return
	}

	tweet := &models.Tweet{
		Content: req.Content,
		OwnerID: middleware.CurrentUser(c).ID,
	}
	if err := h.db.CreateTweet(tweet); err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusCreated, tweet, "tweet added successfully")
}

func (h *TweetHandler) GetUserTweets(c *gin.Context) {
	tweets, err := h.db.TweetsByOwner(middleware.CurrentUser(c).ID)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, tweets, "user tweets")
}

func (h *TweetHandler) UpdateTweet(c *gin.Context) {
	tweetID, err := pathID(c, "tweetId")
	if err != nil {
		respondErr(c, err)
		return
	}

	var req dto.TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, apperror.Validation("content is required"))
		return
	}

	tweet, err := h.db.UpdateTweet(tweetID, middleware.CurrentUser(c).ID, req.Content)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, tweet, "tweet updated successfully")
}

func (h *TweetHandler) DeleteTweet(c *gin.Context) {
	tweetID, err := pathID(c, "tweetId")
	if err != nil {
		respondErr(c, err)
		return
	}

	if err := h.db.DeleteTweet(tweetID, middleware.CurrentUser(c).ID); err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, nil, "tweet deleted successfully")
}
