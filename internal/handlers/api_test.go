package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"playtube/internal/blobstore"
	"playtube/internal/config"
	"playtube/internal/database"
	"playtube/internal/denylist"
	"playtube/internal/handlers"
	"playtube/internal/middleware"
	"playtube/internal/models"
	"playtube/internal/server"
	"playtube/pkg/auth"
)

type testEnv struct {
	router *gin.Engine
	db     *database.Database
}

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Success    bool            `json:"success"`
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(gormDB))
	db := database.New(gormDB)

	cfg := &config.Config{
		AccessTokenSecret:  "access-secret",
		RefreshTokenSecret: "refresh-secret",
		AccessTokenTTL:     time.Hour,
		RefreshTokenTTL:    240 * time.Hour,
		BcryptCost:         bcrypt.MinCost,
	}
	tokens := auth.NewTokenManager(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	deny := denylist.NewMemory()
	blobs := blobstore.NewFake()

	h := &server.Handlers{
		Auth:         handlers.NewAuthHandler(db, tokens, deny, blobs, cfg),
		User:         handlers.NewUserHandler(db, blobs, cfg),
		Video:        handlers.NewVideoHandler(db, blobs),
		Comment:      handlers.NewCommentHandler(db),
		Tweet:        handlers.NewTweetHandler(db),
		Like:         handlers.NewLikeHandler(db),
		Subscription: handlers.NewSubscriptionHandler(db),
		Playlist:     handlers.NewPlaylistHandler(db),
		Dashboard:    handlers.NewDashboardHandler(db),
		Health:       handlers.NewHealthcheckHandler(db),
	}

	router := gin.New()
	server.APIEndpoints(router, middleware.Auth(tokens, db, deny), h)
	return &testEnv{router: router, db: db}
}

func (e *testEnv) do(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w, env
}

func registerForm(t *testing.T, username string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	require.NoError(t, form.WriteField("username", username))
	require.NoError(t, form.WriteField("email", username+"@example.com"))
	require.NoError(t, form.WriteField("fullName", "Test "+username))
	require.NoError(t, form.WriteField("password", "secret123"))
	part, err := form.CreateFormFile("avatar", "avatar.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, form.Close())
	return body, form.FormDataContentType()
}

func (e *testEnv) register(t *testing.T, username string) envelope {
	t.Helper()

	body, contentType := registerForm(t, username)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/register", body)
	req.Header.Set("Content-Type", contentType)
	w, env := e.do(t, req)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	return env
}

type tokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (e *testEnv) login(t *testing.T, username string) tokenPair {
	t.Helper()

	payload := `{"username":"` + username + `","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w, env := e.do(t, req)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	var pair tokenPair
	require.NoError(t, json.Unmarshal(env.Data, &pair))
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	return pair
}

func authed(req *http.Request, pair tokenPair) *http.Request {
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	return req
}

func TestRegisterHidesCredentialsAndRejectsDuplicate(t *testing.T) {
	e := newTestEnv(t)

	env := e.register(t, "alice")
	assert.True(t, env.Success)
	assert.NotContains(t, string(env.Data), "passwordHash")
	assert.NotContains(t, string(env.Data), "refreshToken")
	assert.Contains(t, string(env.Data), "https://blobs.test/")

	body, contentType := registerForm(t, "alice")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/register", body)
	req.Header.Set("Content-Type", contentType)
	w, env := e.do(t, req)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, env.Success)
}

func TestRegisterRejectsIncompleteForm(t *testing.T) {
	e := newTestEnv(t)

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	require.NoError(t, form.WriteField("username", "alice"))
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/register", body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w, _ := e.do(t, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginSetsBothCookies(t *testing.T) {
	e := newTestEnv(t)
	e.register(t, "alice")

	payload := `{"email":"alice@example.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w, env := e.do(t, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	names := map[string]bool{}
	for _, cookie := range w.Result().Cookies() {
		names[cookie.Name] = true
	}
	assert.True(t, names[auth.AccessCookie])
	assert.True(t, names[auth.RefreshCookie])
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	e := newTestEnv(t)
	e.register(t, "alice")

	payload := `{"username":"alice","password":"wrong-password"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w, _ := e.do(t, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshRotationInvalidatesSupersededToken(t *testing.T) {
	e := newTestEnv(t)
	e.register(t, "alice")
	first := e.login(t, "alice")

	payload := `{"refreshToken":"` + first.RefreshToken + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/refresh-token", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w, env := e.do(t, req)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	var second tokenPair
	require.NoError(t, json.Unmarshal(env.Data, &second))
	require.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// Вытесненный токен криптографически валиден, но уже не хранится.
	req = httptest.NewRequest(http.MethodPost, "/api/v1/users/refresh-token", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w, env = e.do(t, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "refresh token is expired", env.Message)
}

func TestLogoutDenylistsAccessToken(t *testing.T) {
	e := newTestEnv(t)
	e.register(t, "alice")
	pair := e.login(t, "alice")

	w, _ := e.do(t, authed(httptest.NewRequest(http.MethodPost, "/api/v1/users/logout", nil), pair))
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = e.do(t, authed(httptest.NewRequest(http.MethodGet, "/api/v1/users/current-user", nil), pair))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	e := newTestEnv(t)

	w, _ := e.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/videos", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env := e.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/healthcheck", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
}

func TestVideoLikeToggle(t *testing.T) {
	e := newTestEnv(t)
	e.register(t, "alice")
	pair := e.login(t, "alice")
	video := seedAPIVideo(t, e, "alice")

	w, env := e.do(t, authed(httptest.NewRequest(http.MethodPost, "/api/v1/likes/toggle/v/"+video.ID.String(), nil), pair))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "video liked successfully", env.Message)

	w, env = e.do(t, authed(httptest.NewRequest(http.MethodPost, "/api/v1/likes/toggle/v/"+video.ID.String(), nil), pair))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "video unliked successfully", env.Message)
}

func TestSelfSubscriptionRejected(t *testing.T) {
	e := newTestEnv(t)
	env := e.register(t, "alice")
	pair := e.login(t, "alice")

	var me models.User
	require.NoError(t, json.Unmarshal(env.Data, &me))

	w, out := e.do(t, authed(httptest.NewRequest(http.MethodPost, "/api/v1/subscriptions/c/"+me.ID.String(), nil), pair))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "cannot subscribe to own channel", out.Message)
}

func TestSubscriptionToggleAndChannelProfile(t *testing.T) {
	e := newTestEnv(t)
	channel := e.register(t, "channel")
	e.register(t, "fan")
	pair := e.login(t, "fan")

	var owner models.User
	require.NoError(t, json.Unmarshal(channel.Data, &owner))

	w, _ := e.do(t, authed(httptest.NewRequest(http.MethodPost, "/api/v1/subscriptions/c/"+owner.ID.String(), nil), pair))
	require.Equal(t, http.StatusOK, w.Code)

	w, env := e.do(t, authed(httptest.NewRequest(http.MethodGet, "/api/v1/users/c/channel", nil), pair))
	require.Equal(t, http.StatusOK, w.Code)

	var profile struct {
		SubscribersCount int64 `json:"subscribersCount"`
		IsSubscribed     bool  `json:"isSubscribed"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.EqualValues(t, 1, profile.SubscribersCount)
	assert.True(t, profile.IsSubscribed)

	w, _ = e.do(t, authed(httptest.NewRequest(http.MethodGet, "/api/v1/users/c/nobody", nil), pair))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetVideoIncrementsViewsAndHistory(t *testing.T) {
	e := newTestEnv(t)
	e.register(t, "alice")
	pair := e.login(t, "alice")
	video := seedAPIVideo(t, e, "alice")

	w, env := e.do(t, authed(httptest.NewRequest(http.MethodGet, "/api/v1/videos/"+video.ID.String(), nil), pair))
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Video
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.EqualValues(t, 1, got.Views)

	w, env = e.do(t, authed(httptest.NewRequest(http.MethodGet, "/api/v1/users/history", nil), pair))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), video.ID.String())
}

// seedAPIVideo кладёт видео напрямую в базу, минуя multipart-загрузку.
func seedAPIVideo(t *testing.T, e *testEnv, ownerUsername string) *models.Video {
	t.Helper()

	owner, err := e.db.FindUserByLogin(ownerUsername, "")
	require.NoError(t, err)

	video := &models.Video{
		OwnerID:     owner.ID,
		VideoFile:   "https://blobs.test/clip.mp4",
		Thumbnail:   "https://blobs.test/clip.png",
		Title:       "clip",
		Description: "a clip",
		Duration:    42,
		IsPublished: true,
	}
	require.NoError(t, e.db.CreateVideo(video))
	return video
}
