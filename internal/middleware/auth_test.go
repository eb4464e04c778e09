package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"playtube/internal/database"
	"playtube/internal/denylist"
	"playtube/internal/models"
	"playtube/pkg/auth"
)

func newTestRouter(t *testing.T) (*gin.Engine, *database.Database, *auth.TokenManager, *denylist.MemoryDenylist) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	d := database.New(db)
	tokens := auth.NewTokenManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	deny := denylist.NewMemory()

	r := gin.New()
	r.GET("/protected", Auth(tokens, d, deny), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": CurrentUser(c).Username})
	})
	return r, d, tokens, deny
}

func seedUser(t *testing.T, d *database.Database) *models.User {
	t.Helper()

	user := &models.User{
		Username:     "alice",
		Email:        "alice@example.com",
		FullName:     "Alice",
		PasswordHash: "hash",
	}
	require.NoError(t, d.CreateUser(user))
	return user
}

func TestAuthAcceptsValidHeaderToken(t *testing.T) {
	r, d, tokens, _ := newTestRouter(t)
	user := seedUser(t, d)

	token, err := tokens.IssueAccessToken(user.ID.String())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
}

func TestAuthAcceptsCookieToken(t *testing.T) {
	r, d, tokens, _ := newTestRouter(t)
	user := seedUser(t, d)

	token, err := tokens.IssueAccessToken(user.ID.String())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: auth.AccessCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthCookieTakesPrecedenceOverHeader(t *testing.T) {
	r, d, tokens, _ := newTestRouter(t)
	user := seedUser(t, d)

	token, err := tokens.IssueAccessToken(user.ID.String())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: auth.AccessCookie, Value: "garbage"})
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsMissingToken(t *testing.T) {
	r, _, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized request")
}

func TestAuthRejectsForgedToken(t *testing.T) {
	r, d, _, _ := newTestRouter(t)
	user := seedUser(t, d)

	forger := auth.NewTokenManager("wrong-secret", "refresh-secret", time.Hour, 24*time.Hour)
	token, err := forger.IssueAccessToken(user.ID.String())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsDenylistedToken(t *testing.T) {
	r, d, tokens, deny := newTestRouter(t)
	user := seedUser(t, d)

	token, err := tokens.IssueAccessToken(user.ID.String())
	require.NoError(t, err)
	require.NoError(t, deny.Add(context.Background(), token, time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsTokenForDeletedUser(t *testing.T) {
	r, _, tokens, _ := newTestRouter(t)

	token, err := tokens.IssueAccessToken(uuid.NewString())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
