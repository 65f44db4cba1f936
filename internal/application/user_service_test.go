package application_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rizkydarmawan/goblog/internal/application"
	"github.com/rizkydarmawan/goblog/internal/domain/entity"
	"github.com/rizkydarmawan/goblog/pkg/helpers"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newUserService(repo *fakeUserRepo) *application.UserService {
	jwt := helpers.NewJWTManager("test-access", "test-refresh", time.Hour, 24*time.Hour)
	return application.NewUserService(repo, jwt, nil, quietLogger(), 24*time.Hour)
}

func TestRegisterFirstUserBecomesAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)
	ctx := context.Background()

	first, _, err := svc.Register(ctx, "alice@example.com", "password1", "Alice")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, first.Role)

	second, _, err := svc.Register(ctx, "bob@example.com", "password2", "Bob")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, second.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)
	ctx := context.Background()

	first, _, err := svc.Register(ctx, "alice@example.com", "password1", "Alice")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "alice@example.com", "other-password", "Impostor")
	require.ErrorIs(t, err, application.ErrEmailTaken)

	// first account unaffected, no extra row
	assert.Equal(t, 1, repo.count())
	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	u, _, err := svc.Register(context.Background(), "alice@example.com", "password1", "Alice")
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "password1", stored.Password)
	assert.True(t, helpers.CompareHashAndPassword(stored.Password, "password1"))
}

func TestLoginWrongPasswordNeverAuthenticates(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice@example.com", "password1", "Alice")
	require.NoError(t, err)

	u, pair, err := svc.Login(ctx, "alice@example.com", "wrong-password")
	require.ErrorIs(t, err, application.ErrInvalidCredentials)
	assert.Nil(t, u)
	assert.Empty(t, pair.AccessToken)
	assert.Empty(t, pair.RefreshToken)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newUserService(newFakeUserRepo())

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever1")
	require.ErrorIs(t, err, application.ErrInvalidCredentials)
}

func TestLoginIssuesTokensForStoredUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)
	ctx := context.Background()

	reg, _, err := svc.Register(ctx, "alice@example.com", "password1", "Alice")
	require.NoError(t, err)

	u, pair, err := svc.Login(ctx, "alice@example.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, reg.ID, u.ID)
	require.NotEmpty(t, pair.AccessToken)

	// the session token identifies the stored user
	claims, err := svc.JWT.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, claims.UserID)
	assert.NotEmpty(t, claims.SessionID)
}

func TestGetProfileMissingUser(t *testing.T) {
	svc := newUserService(newFakeUserRepo())

	_, err := svc.GetProfile(context.Background(), 42)
	require.ErrorIs(t, err, application.ErrUserNotFound)
}
