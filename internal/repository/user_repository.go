package repository

import (
	"context"

	"github.com/noah-isme/school-portal-api/internal/models"
	"github.com/noah-isme/school-portal-api/pkg/store"
)

// UserRepository reads the seeded user list and manages the auth token key.
type UserRepository struct {
	js *store.JSONStore
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(js *store.JSONStore) *UserRepository {
	return &UserRepository{js: js}
}

// List returns all users in stored order.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if _, err := r.js.Get(ctx, store.KeyUsers, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// SaveAll replaces the stored user list. Used by the seed path only.
func (r *UserRepository) SaveAll(ctx context.Context, users []models.User) error {
	return r.js.Set(ctx, store.KeyUsers, users)
}

// FindByID returns the user with the given id, or nil when absent.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// AuthToken returns the persisted session token when present.
func (r *UserRepository) AuthToken(ctx context.Context) (string, bool, error) {
	var token string
	ok, err := r.js.Get(ctx, store.KeyAuthToken, &token)
	if err != nil {
		return "", false, err
	}
	return token, ok, nil
}

// SetAuthToken persists the session token.
func (r *UserRepository) SetAuthToken(ctx context.Context, token string) error {
	return r.js.Set(ctx, store.KeyAuthToken, token)
}

// ClearAuthToken removes the session token.
func (r *UserRepository) ClearAuthToken(ctx context.Context) error {
	return r.js.Remove(ctx, store.KeyAuthToken)
}
