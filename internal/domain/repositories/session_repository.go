package repositories

import (
	"context"

	"github.com/quickpick/storefront/internal/domain/entities"
)

// SessionRepository defines the interface for the persisted identity store.
// Get is called immediately before each attributed action; callers must not
// cache the returned session across actions.
type SessionRepository interface {
	// Get resolves the session blob for a token. A missing or expired blob
	// returns (nil, nil): an anonymous session, not an error.
	Get(ctx context.Context, token string) (*entities.UserSession, error)

	// Put stores a session blob for a token (set at login)
	Put(ctx context.Context, token string, session *entities.UserSession, ttlSeconds int) error

	// Delete removes a session blob (cleared at logout)
	Delete(ctx context.Context, token string) error
}
