package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"playtube/internal/database"
	"playtube/internal/middleware"
	"playtube/pkg/apperror"
)

type SubscriptionHandler struct {
	db *database.Database
}

func NewSubscriptionHandler(db *database.Database) *SubscriptionHandler {
	return &SubscriptionHandler{db: db}
}

// ToggleSubscription подписывает/отписывает текущего пользователя.
// Подписка на собственный канал отклоняется.
func (h *SubscriptionHandler) ToggleSubscription(c *gin.Context) {
	channelID, err := pathID(c, "channelId")
	if err != nil {
		respondErr(c, err)
		return
	}

	user := middleware.CurrentUser(c)
	if channelID == user.ID {
		respondErr(c, apperror.Validation("cannot subscribe to own channel"))
		return
	}

	sub, subscribed, err := h.db.ToggleSubscription(user.ID, channelID)
	if err != nil {
		respondErr(c, err)
		return
	}

	if subscribed {
		respond(c, http.StatusOK, sub, "subscribed")
		return
	}
	respond(c, http.StatusOK, sub, "unsubscribed")
}

// GetChannelSubscribers — список подписчиков канала.
func (h *SubscriptionHandler) GetChannelSubscribers(c *gin.Context) {
	channelID, err := pathID(c, "channelId")
	if err != nil {
		respondErr(c, err)
		return
	}

	subs, err := h.db.SubscribersOf(channelID)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, subs, "subscribers")
}

// GetSubscribedChannels — каналы, на которые подписан пользователь.
func (h *SubscriptionHandler) GetSubscribedChannels(c *gin.Context) {
	subscriberID, err := pathID(c, "subscriberId")
	if err != nil {
		respondErr(c, err)
		return
	}

	subs, err := h.db.SubscribedChannels(subscriberID)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, subs, "subscribed channels")
}
