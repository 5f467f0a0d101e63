package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickpick/storefront/internal/domain/entities"
)

type stubSessionRepo struct {
	sess *entities.UserSession
	err  error
}

func (r *stubSessionRepo) Get(ctx context.Context, token string) (*entities.UserSession, error) {
	return r.sess, r.err
}

func (r *stubSessionRepo) Put(ctx context.Context, token string, sess *entities.UserSession, ttlSeconds int) error {
	return nil
}

func (r *stubSessionRepo) Delete(ctx context.Context, token string) error {
	return nil
}

func TestResolve(t *testing.T) {
	svc := NewSessionService(&stubSessionRepo{
		sess: &entities.UserSession{UserID: "user-1", Email: "u@example.com"},
	})

	sess := svc.Resolve(context.Background(), "tok-1")
	require.NotNil(t, sess)
	assert.Equal(t, "user-1", sess.UserID)
}

func TestResolve_MissingSessionIsAnonymous(t *testing.T) {
	svc := NewSessionService(&stubSessionRepo{})

	assert.Nil(t, svc.Resolve(context.Background(), "tok-1"))
}

func TestResolve_BlankTokenIsAnonymous(t *testing.T) {
	svc := NewSessionService(&stubSessionRepo{
		sess: &entities.UserSession{UserID: "user-1"},
	})

	assert.Nil(t, svc.Resolve(context.Background(), ""))
}

func TestResolve_StoreFailureIsAnonymous(t *testing.T) {
	svc := NewSessionService(&stubSessionRepo{err: errors.New("redis down")})

	assert.Nil(t, svc.Resolve(context.Background(), "tok-1"))
}

func TestResolve_NilRepositoryIsAnonymous(t *testing.T) {
	svc := NewSessionService(nil)

	assert.Nil(t, svc.Resolve(context.Background(), "tok-1"))
}
