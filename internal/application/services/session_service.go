package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/quickpick/storefront/internal/domain/entities"
	"github.com/quickpick/storefront/internal/domain/repositories"
)

// SessionService resolves the identity attached to a request. Resolution is
// repeated for every attributed action rather than cached, so a logout (the
// session blob disappearing) takes effect on the very next action.
type SessionService struct {
	repo repositories.SessionRepository
}

// NewSessionService creates a new session service. repo may be nil, in which
// case every request resolves as anonymous.
func NewSessionService(repo repositories.SessionRepository) *SessionService {
	return &SessionService{repo: repo}
}

// Resolve looks up the session for a token. Absence of a session, a blank
// token, or a store failure all resolve to anonymous (nil); resolving
// identity must never fail the action that triggered it.
func (s *SessionService) Resolve(ctx context.Context, token string) *entities.UserSession {
	if s.repo == nil || token == "" {
		return nil
	}

	sess, err := s.repo.Get(ctx, token)
	if err != nil {
		log.Warn().Err(err).Msg("failed to resolve session; treating request as anonymous")
		return nil
	}
	return sess
}

// Put stores a session blob under a token.
func (s *SessionService) Put(ctx context.Context, token string, sess *entities.UserSession, ttlSeconds int) error {
	return s.repo.Put(ctx, token, sess, ttlSeconds)
}

// Delete removes the session blob for a token, logging the user out.
func (s *SessionService) Delete(ctx context.Context, token string) error {
	return s.repo.Delete(ctx, token)
}
