package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"playtube/pkg/apperror"
)

// Envelope — единый формат ответа API.
type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

func respond(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, Envelope{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    status < 400,
	})
}

// respondErr — единственная точка отображения Kind → HTTP-статус.
func respondErr(c *gin.Context, err error) {
	status := apperror.StatusCode(err)
	if status >= 500 {
		logrus.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	}
	c.JSON(status, Envelope{
		StatusCode: status,
		Data:       nil,
		Message:    apperror.PublicMessage(err),
		Success:    false,
	})
}

// pathID разбирает uuid-параметр маршрута.
func pathID(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperror.Validation("invalid " + name)
	}
	return id, nil
}
