package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"playtube/internal/blobstore"
	"playtube/internal/config"
	"playtube/internal/database"
	"playtube/internal/denylist"
	"playtube/internal/handlers/dto"
	"playtube/internal/middleware"
	"playtube/internal/models"
	"playtube/pkg/apperror"
	"playtube/pkg/auth"
)

type AuthHandler struct {
	db     *database.Database
	tokens *auth.TokenManager
	deny   denylist.Denylist
	blobs  blobstore.Store
	cfg    *config.Config
}

func NewAuthHandler(db *database.Database, tokens *auth.TokenManager, deny denylist.Denylist, blobs blobstore.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, tokens: tokens, deny: deny, blobs: blobs, cfg: cfg}
}

// setAuthCookies ставит оба токена как HttpOnly SameSite=Strict cookie.
func (h *AuthHandler) setAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(auth.AccessCookie, accessToken, int(h.cfg.AccessTokenTTL.Seconds()), "/", "", true, true)
	c.SetCookie(auth.RefreshCookie, refreshToken, int(h.cfg.RefreshTokenTTL.Seconds()), "/", "", true, true)
}

func (h *AuthHandler) clearAuthCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(auth.AccessCookie, "", -1, "/", "", true, true)
	c.SetCookie(auth.RefreshCookie, "", -1, "/", "", true, true)
}

// issueTokenPair выпускает пару токенов и перезаписывает единственный
// активный refresh-токен пользователя.
func (h *AuthHandler) issueTokenPair(userID string) (accessToken, refreshToken string, err error) {
	accessToken, err = h.tokens.IssueAccessToken(userID)
	if err != nil {
		return "", "", apperror.Upstream("could not generate access token", err)
	}
	refreshToken, err = h.tokens.IssueRefreshToken(userID)
	if err != nil {
		return "", "", apperror.Upstream("could not generate refresh token", err)
	}
	id, err := models.ParseID(userID)
	if err != nil {
		return "", "", apperror.Unauthorized("invalid user id")
	}
	if err := h.db.SetRefreshToken(id, refreshToken); err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// Register создаёт пользователя: multipart-форма с обязательным avatar
// и необязательным coverImage.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		respondErr(c, apperror.Validation("all fields are required"))
		return
	}
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	taken, err := h.db.UserTaken(req.Username, req.Email)
	if err != nil {
		respondErr(c, err)
		return
	}
	if taken {
		respondErr(c, apperror.Conflict("user with email or username already exists"))
		return
	}

	avatarURL, err := uploadFormFile(c, h.blobs, "avatar")
	if err != nil {
		respondErr(c, err)
		return
	}

	coverImageURL := ""
	if _, ferr := c.FormFile("coverImage"); ferr == nil {
		coverImageURL, err = uploadFormFile(c, h.blobs, "coverImage")
		if err != nil {
			respondErr(c, err)
			return
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.cfg.BcryptCost)
	if err != nil {
		respondErr(c, apperror.Upstream("cannot hash password", err))
		return
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		FullName:     req.FullName,
		Avatar:       avatarURL,
		CoverImage:   coverImageURL,
		PasswordHash: string(hash),
	}
	if err := h.db.CreateUser(user); err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusCreated, user, "user registered successfully")
}

// Login выдаёт пару токенов по username или email.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, apperror.Validation("all fields are required"))
		return
	}
	if req.Username == "" && req.Email == "" {
		respondErr(c, apperror.Validation("username or email is required"))
		return
	}

	user, err := h.db.FindUserByLogin(strings.ToLower(req.Username), strings.ToLower(req.Email))
	if err != nil {
		respondErr(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respondErr(c, apperror.Unauthorized("invalid credentials"))
		return
	}

	accessToken, refreshToken, err := h.issueTokenPair(user.ID.String())
	if err != nil {
		respondErr(c, err)
		return
	}

	user.PasswordHash = ""
	user.RefreshToken = ""

	h.setAuthCookies(c, accessToken, refreshToken)
	respond(c, http.StatusOK, gin.H{
		"user":         user,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	}, "user logged in successfully")
}

// Logout очищает stored refresh-токен, гасит cookie и заносит текущий
// access-токен в denylist до истечения его срока.
func (h *AuthHandler) Logout(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if err := h.db.SetRefreshToken(user.ID, ""); err != nil {
		respondErr(c, err)
		return
	}

	if raw, err := auth.BearerFromRequest(c.Request); err == nil {
		if expiry, err := h.tokens.AccessExpiry(raw); err == nil {
			_ = h.deny.Add(c.Request.Context(), raw, time.Until(expiry))
		}
	}

	h.clearAuthCookies(c)
	respond(c, http.StatusOK, nil, "user logged out successfully")
}

// RefreshToken ротирует пару токенов. Предъявленный refresh-токен обязан
// совпасть с единственным сохранённым: повтор вытесненного токена
// отклоняется, даже если подпись ещё валидна.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	incoming := ""
	if cookie, err := c.Request.Cookie(auth.RefreshCookie); err == nil {
		incoming = cookie.Value
	}
	if incoming == "" {
		var req dto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			incoming = req.RefreshToken
		}
	}
	if incoming == "" {
		respondErr(c, apperror.Unauthorized("unauthorized request"))
		return
	}

	subject, err := h.tokens.VerifyRefreshToken(incoming)
	if err != nil {
		respondErr(c, apperror.Unauthorized("invalid refresh token"))
		return
	}
	id, err := models.ParseID(subject)
	if err != nil {
		respondErr(c, apperror.Unauthorized("invalid refresh token"))
		return
	}
	user, err := h.db.GetUserByID(id)
	if err != nil {
		respondErr(c, apperror.Unauthorized("invalid refresh token"))
		return
	}
	if user.RefreshToken != incoming {
		respondErr(c, apperror.Unauthorized("refresh token is expired"))
		return
	}

	accessToken, refreshToken, err := h.issueTokenPair(user.ID.String())
	if err != nil {
		respondErr(c, err)
		return
	}

	h.setAuthCookies(c, accessToken, refreshToken)
	respond(c, http.StatusOK, gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	}, "access token refreshed")
}
