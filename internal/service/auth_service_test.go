package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/school-portal-api/internal/models"
	"github.com/noah-isme/school-portal-api/internal/repository"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
	"github.com/noah-isme/school-portal-api/pkg/store"
)

func newAuthFixture(t *testing.T) (*AuthService, *repository.UserRepository) {
	t.Helper()
	js := store.NewJSON(store.NewMemory(), zap.NewNop())
	repo := repository.NewUserRepository(js)
	require.NoError(t, repo.SaveAll(context.Background(), []models.User{
		{ID: "user-2", Email: "admin@school.edu", Password: "admin123", Role: models.RoleAdmin, Name: "Admin User", SchoolID: "school-1"},
		{ID: "user-3", Email: "teacher@school.edu", Password: "teacher123", Role: models.RoleTeacher, Name: "Teacher User", SchoolID: "school-1"},
	}))
	return NewAuthService(repo, nil, zap.NewNop()), repo
}

func TestAuthServiceLoginSuccess(t *testing.T) {
	ctx := context.Background()
	svc, repo := newAuthFixture(t)

	user, err := svc.Login(ctx, models.LoginRequest{Email: "teacher@school.edu", Password: "teacher123"})
	require.NoError(t, err)
	assert.Equal(t, "user-3", user.ID)
	assert.True(t, svc.IsAuthenticated())

	token, ok, err := repo.AuthToken(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "user-3", token)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "teacher@school.edu", Password: "wrongpass"})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrInvalidCredentials))
	assert.False(t, svc.IsAuthenticated())
	assert.Nil(t, svc.CurrentUser())
}

func TestAuthServiceLoginUnknownEmailSameError(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture(t)

	_, wrongPass := svc.Login(ctx, models.LoginRequest{Email: "teacher@school.edu", Password: "nope"})
	_, unknown := svc.Login(ctx, models.LoginRequest{Email: "ghost@school.edu", Password: "nope"})

	assert.Equal(t, appErrors.FromError(wrongPass).Code, appErrors.FromError(unknown).Code)
	assert.Equal(t, appErrors.FromError(wrongPass).Message, appErrors.FromError(unknown).Message)
}

func TestAuthServiceResumeRestoresSession(t *testing.T) {
	ctx := context.Background()
	svc, repo := newAuthFixture(t)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "admin@school.edu", Password: "admin123"})
	require.NoError(t, err)

	// A fresh service over the same store simulates a reload.
	restarted := NewAuthService(repo, nil, zap.NewNop())
	user, err := restarted.Resume(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "user-2", user.ID)
	assert.True(t, restarted.IsAuthenticated())
}

func TestAuthServiceLogoutThenResumeIsAnonymous(t *testing.T) {
	ctx := context.Background()
	svc, repo := newAuthFixture(t)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "admin@school.edu", Password: "admin123"})
	require.NoError(t, err)

	svc.Logout(ctx)
	assert.False(t, svc.IsAuthenticated())

	restarted := NewAuthService(repo, nil, zap.NewNop())
	user, err := restarted.Resume(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.False(t, restarted.IsAuthenticated())
}

func TestAuthServiceResumeClearsDanglingToken(t *testing.T) {
	ctx := context.Background()
	js := store.NewJSON(store.NewMemory(), zap.NewNop())
	repo := repository.NewUserRepository(js)
	require.NoError(t, repo.SaveAll(ctx, []models.User{}))
	require.NoError(t, repo.SetAuthToken(ctx, "deleted-user"))

	svc := NewAuthService(repo, nil, zap.NewNop())
	user, err := svc.Resume(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	_, ok, err := repo.AuthToken(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthServiceRejectsMalformedPayload(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "not-an-email", Password: "x"})
	require.Error(t, err)
	assert.True(t, appErrors.HasCode(err, appErrors.ErrValidation))
}
