package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/meron6/authsvc/domain"
)

// RedisSessionStore implements domain.SessionStore on Redis. Expiry is
// active: records carry a TTL and vanish on their own, so Resolve never
// sees a stale row.
type RedisSessionStore struct {
	client   *redis.Client
	prefix   string
	duration time.Duration
}

type redisSession struct {
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRedisSessionStore creates a Redis-backed session store. A duration of
// zero or less means no TTL is set and sessions never expire.
func NewRedisSessionStore(client *redis.Client, duration time.Duration) *RedisSessionStore {
	return &RedisSessionStore{
		client:   client,
		prefix:   "session:",
		duration: duration,
	}
}

// Create implements domain.SessionStore.
func (s *RedisSessionStore) Create(ctx context.Context, userID uint) (string, error) {
	sessionID := uuid.NewString()
	data, err := json.Marshal(redisSession{UserID: userID, CreatedAt: time.Now()})
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := s.duration
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, s.prefix+sessionID, data, ttl).Err(); err != nil {
		return "", err
	}
	return sessionID, nil
}

// Resolve implements domain.SessionStore.
func (s *RedisSessionStore) Resolve(ctx context.Context, sessionID string) (uint, error) {
	data, err := s.client.Get(ctx, s.prefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, domain.ErrSessionNotFound
		}
		return 0, err
	}

	var sess redisSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return 0, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return sess.UserID, nil
}

// Destroy implements domain.SessionStore.
func (s *RedisSessionStore) Destroy(ctx context.Context, sessionID string) (bool, error) {
	removed, err := s.client.Del(ctx, s.prefix+sessionID).Result()
	if err != nil {
		return false, err
	}
	return removed > 0, nil
}

var _ domain.SessionStore = (*RedisSessionStore)(nil)
