package denylist

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// Denylist хранит access-токены, отозванные при logout, до истечения их
// срока. Refresh-токены сюда не попадают: их отзыв — перезапись в записи
// пользователя.
type Denylist interface {
	Add(ctx context.Context, token string, ttl time.Duration) error
	Contains(ctx context.Context, token string) (bool, error)
}

const keyPrefix = "blacklist:"

type RedisDenylist struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *RedisDenylist {
	return &RedisDenylist{client: client}
}

func (l *RedisDenylist) Add(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return l.client.Set(ctx, keyPrefix+token, 1, ttl).Err()
}

func (l *RedisDenylist) Contains(ctx context.Context, token string) (bool, error) {
	n, err := l.client.Exists(ctx, keyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MemoryDenylist — встроенная реализация для тестов и локального запуска
// без Redis.
type MemoryDenylist struct {
	mu     sync.Mutex
	tokens map[string]time.Time
}

func NewMemory() *MemoryDenylist {
	return &MemoryDenylist{tokens: make(map[string]time.Time)}
}

func (l *MemoryDenylist) Add(_ context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tokens[token] = time.Now().Add(ttl)
	return nil
}

func (l *MemoryDenylist) Contains(_ context.Context, token string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	deadline, ok := l.tokens[token]
	if !ok {
		return false, nil
	}
	if time.Now().After(deadline) {
		delete(l.tokens, token)
		return false, nil
	}
	return true, nil
}
