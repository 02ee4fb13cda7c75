package service

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-portal-api/internal/models"
	appErrors "github.com/noah-isme/school-portal-api/pkg/errors"
)

type authUserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	AuthToken(ctx context.Context) (string, bool, error)
	SetAuthToken(ctx context.Context, token string) error
	ClearAuthToken(ctx context.Context) error
}

// AuthService is the session manager: anonymous until a login or resume
// succeeds, authenticated afterwards. The persisted token is the user id.
type AuthService struct {
	repo      authUserRepository
	validator *validator.Validate
	logger    *zap.Logger

	mu      sync.RWMutex
	current *models.User
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(repo authUserRepository, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AuthService{repo: repo, validator: validate, logger: logger}
}

// Login authenticates against the stored user list with a case-sensitive
// exact match on email and password. A miss is reported as a generic
// invalid-credentials error with no hint whether the email exists.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid login payload")
	}

	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load users")
	}

	for i := range users {
		if users[i].Email == req.Email && users[i].Password == req.Password {
			user := users[i]

			s.mu.Lock()
			s.current = &user
			s.mu.Unlock()

			if err := s.repo.SetAuthToken(ctx, user.ID); err != nil {
				s.logger.Warn("failed to persist auth token; session will not survive a restart",
					zap.String("user_id", user.ID),
					zap.Error(err))
			}

			s.logger.Info("user logged in", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
			return &user, nil
		}
	}

	return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
}

// Logout transitions to anonymous unconditionally.
func (s *AuthService) Logout(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.repo.ClearAuthToken(ctx); err != nil {
		s.logger.Warn("failed to clear auth token", zap.Error(err))
	}
}

// Resume restores the session from the persisted token. It is the only
// path by which a user is re-authenticated across restarts. A token that
// no longer resolves to a user is cleared.
func (s *AuthService) Resume(ctx context.Context) (*models.User, error) {
	token, ok, err := s.repo.AuthToken(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to read auth token")
	}
	if !ok || token == "" {
		return nil, nil
	}

	user, err := s.repo.FindByID(ctx, token)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to resolve auth token")
	}
	if user == nil {
		if err := s.repo.ClearAuthToken(ctx); err != nil {
			s.logger.Warn("failed to clear dangling auth token", zap.Error(err))
		}
		return nil, nil
	}

	s.mu.Lock()
	s.current = user
	s.mu.Unlock()

	return user, nil
}

// CurrentUser returns the authenticated user, or nil when anonymous.
func (s *AuthService) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// IsAuthenticated reports whether a user session is active.
func (s *AuthService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}
