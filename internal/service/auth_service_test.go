package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"onlearn/internal/model"
	"onlearn/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*mockUserRepo, AuthService, *model.User) {
	t.Helper()
	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)
	user := &model.User{ID: 1, Name: "Alice Johnson", Email: "alice@onlearn.dev", PasswordHash: hash, Role: model.RoleStudent}
	repo := &mockUserRepo{}
	return repo, NewAuthService(repo, utils.NewJWTUtil("secret", time.Hour)), user
}

func TestAuthService_Login_Success(t *testing.T) {
	repo, svc, user := newAuthFixture(t)
	repo.On("FindByEmail", mock.Anything, "alice@onlearn.dev").Return(user, nil)

	got, token, err := svc.Login(context.Background(), "alice@onlearn.dev", "password123")

	assert.NoError(t, err)
	assert.Equal(t, user, got)
	assert.NotEmpty(t, token)
	repo.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo, svc, user := newAuthFixture(t)
	repo.On("FindByEmail", mock.Anything, "alice@onlearn.dev").Return(user, nil)

	_, token, err := svc.Login(context.Background(), "alice@onlearn.dev", "nope")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo, svc, _ := newAuthFixture(t)
	repo.On("FindByEmail", mock.Anything, "ALICE@onlearn.dev").Return(nil, nil)

	_, _, err := svc.Login(context.Background(), "ALICE@onlearn.dev", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_RepoError(t *testing.T) {
	repo, svc, _ := newAuthFixture(t)
	repo.On("FindByEmail", mock.Anything, "alice@onlearn.dev").Return(nil, errors.New("db down"))

	_, _, err := svc.Login(context.Background(), "alice@onlearn.dev", "password123")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_ResolveSession(t *testing.T) {
	repo, svc, user := newAuthFixture(t)
	repo.On("FindByEmail", mock.Anything, "alice@onlearn.dev").Return(user, nil)
	repo.On("FindByID", mock.Anything, 1).Return(user, nil)

	_, token, err := svc.Login(context.Background(), "alice@onlearn.dev", "password123")
	require.NoError(t, err)

	got, err := svc.ResolveSession(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, 1, got.ID)
}

func TestAuthService_ResolveSession_Missing(t *testing.T) {
	_, svc, _ := newAuthFixture(t)

	_, err := svc.ResolveSession(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.ResolveSession(context.Background(), "1")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthService_ResolveSession_UserGone(t *testing.T) {
	repo, svc, _ := newAuthFixture(t)
	repo.On("FindByID", mock.Anything, 42).Return(nil, nil)

	token, err := utils.NewJWTUtil("secret", time.Hour).GenerateToken(42)
	require.NoError(t, err)

	_, err = svc.ResolveSession(context.Background(), token)
	assert.ErrorIs(t, err, ErrSessionInvalid)
}
