package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/quickpick/storefront/internal/domain/entities"
	"github.com/quickpick/storefront/internal/domain/repositories"
	redisclient "github.com/quickpick/storefront/internal/infrastructure/clients/redis"
)

const sessionKeyPrefix = "session:"

// RedisSessionAdapter implements the SessionRepository interface on Redis.
// The blob under session:<token> is the persisted identity; its absence means
// the session is anonymous. Callers re-resolve before every attributed
// action, so deleting the blob (logout) takes effect immediately.
type RedisSessionAdapter struct {
	client *redisclient.Client
}

// NewRedisSessionAdapter creates a new Redis session adapter
func NewRedisSessionAdapter(client *redisclient.Client) repositories.SessionRepository {
	return &RedisSessionAdapter{
		client: client,
	}
}

// Get resolves the session blob for a token. Missing blob → (nil, nil).
func (a *RedisSessionAdapter) Get(ctx context.Context, token string) (*entities.UserSession, error) {
	if token == "" {
		return nil, nil
	}

	data, err := a.client.Client().Get(ctx, sessionKey(token)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var sess entities.UserSession
	if err := json.Unmarshal(data, &sess); err != nil {
		// A corrupt blob is treated as anonymous rather than failing the
		// triggering action.
		return nil, nil
	}
	if sess.UserID == "" {
		return nil, nil
	}
	return &sess, nil
}

// Put stores a session blob for a token
func (a *RedisSessionAdapter) Put(ctx context.Context, token string, sess *entities.UserSession, ttlSeconds int) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	ttl := time.Duration(ttlSeconds) * time.Second
	if err := a.client.Client().Set(ctx, sessionKey(token), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Delete removes a session blob
func (a *RedisSessionAdapter) Delete(ctx context.Context, token string) error {
	if err := a.client.Client().Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}
