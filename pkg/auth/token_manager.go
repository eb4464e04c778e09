package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// AccessCookie и RefreshCookie — имена cookie, в которых передаются
// токены. Cookie имеет приоритет над Authorization header.
const (
	AccessCookie  = "accessToken"
	RefreshCookie = "refreshToken"
)

// ErrInvalidToken покрывает любую ошибку проверки: подпись, метод
// подписи, истечение срока. Различие наружу не выдаётся.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager выпускает и проверяет пару access/refresh JWT.
// Два класса токенов подписываются разными секретами: компрометация
// одного не позволяет подделать другой.
type TokenManager struct {
	accessSecret    string
	refreshSecret   string
	accessDuration  time.Duration
	refreshDuration time.Duration
}

func NewTokenManager(accessSecret, refreshSecret string, accessDuration, refreshDuration time.Duration) *TokenManager {
	return &TokenManager{
		accessSecret:    accessSecret,
		refreshSecret:   refreshSecret,
		accessDuration:  accessDuration,
		refreshDuration: refreshDuration,
	}
}

// IssueAccessToken создаёт короткоживущий JWT для userID.
func (m *TokenManager) IssueAccessToken(userID string) (string, error) {
	return m.issue(userID, m.accessSecret, m.accessDuration)
}

// IssueRefreshToken создаёт долгоживущий JWT для userID.
func (m *TokenManager) IssueRefreshToken(userID string) (string, error) {
	return m.issue(userID, m.refreshSecret, m.refreshDuration)
}

func (m *TokenManager) issue(userID, secret string, duration time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAccessToken проверяет access JWT и возвращает userID.
func (m *TokenManager) VerifyAccessToken(token string) (string, error) {
	return m.verify(token, m.accessSecret)
}

// VerifyRefreshToken проверяет refresh JWT и возвращает userID.
func (m *TokenManager) VerifyRefreshToken(token string) (string, error) {
	return m.verify(token, m.refreshSecret)
}

func (m *TokenManager) verify(raw, secret string) (string, error) {
	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// AccessExpiry возвращает время истечения access-токена.
func (m *TokenManager) AccessExpiry(token string) (time.Time, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(m.accessSecret), nil
	})
	if err != nil {
		return time.Time{}, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.ExpiresAt == nil {
		return time.Time{}, ErrInvalidToken
	}
	return claims.ExpiresAt.Time, nil
}

// BearerFromRequest извлекает access-токен из cookie или Authorization header.
func BearerFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(AccessCookie); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}
	hdr := r.Header.Get("Authorization")
	parts := strings.SplitN(hdr, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("missing bearer credential")
	}
	return parts[1], nil
}
