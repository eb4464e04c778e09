package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"playtube/internal/database"
	"playtube/internal/denylist"
	"playtube/internal/models"
	"playtube/pkg/auth"
)

const UserKey = "currentUser"

// abortUnauthorized — единый ответ на любой сбой аутентификации.
// Клиенту не сообщается, истёк токен или подделан.
func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"statusCode": http.StatusUnauthorized,
		"data":       nil,
		"message":    "unauthorized request",
		"success":    false,
	})
}

// Auth проверяет access-токен (cookie приоритетнее header), резолвит
// пользователя и кладёт его в контекст запроса.
func Auth(tokens *auth.TokenManager, db *database.Database, deny denylist.Denylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.BearerFromRequest(c.Request)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		revoked, err := deny.Contains(c.Request.Context(), token)
		if err != nil || revoked {
			abortUnauthorized(c)
			return
		}

		userID, err := tokens.VerifyAccessToken(token)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		user, err := userByTokenSubject(db, userID)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

func userByTokenSubject(db *database.Database, subject string) (*models.User, error) {
	id, err := uuid.Parse(subject)
	if err != nil {
		return nil, err
	}
	user, err := db.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	// Пароль и refresh-токен не должны утекать дальше по конвейеру.
	user.PasswordHash = ""
	user.RefreshToken = ""
	return user, nil
}

// CurrentUser достаёт аутентифицированного пользователя из контекста.
func CurrentUser(c *gin.Context) *models.User {
	return c.MustGet(UserKey).(*models.User)
}
