package repositories

import (
	"context"
	"sync"

	"coffeinimals/internal/apperr"
	"coffeinimals/internal/models"
)

// MockProfileRepository is an in-memory implementation of ProfileRepository.
// FailWrites can be set to make every write return a PersistenceError,
// which tests use to exercise failure atomicity.
type MockProfileRepository struct {
	profiles   map[string]models.User
	mu         sync.RWMutex
	FailWrites error
}

// NewMockProfileRepository creates a new instance of MockProfileRepository.
func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{
		profiles: make(map[string]models.User),
	}
}

// Get loads the profile document with the given ID.
func (r *MockProfileRepository) Get(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.profiles[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	user.Favorites = append(make([]string, 0, len(user.Favorites)), user.Favorites...)
	return &user, nil
}

// Set writes the full profile document, creating it when absent.
func (r *MockProfileRepository) Set(ctx context.Context, id string, user *models.User) error {
	if r.FailWrites != nil {
		return &apperr.PersistenceError{Op: "set profile " + id, Err: r.FailWrites}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *user
	stored.Favorites = append(make([]string, 0, len(user.Favorites)), user.Favorites...)
	r.profiles[id] = stored
	return nil
}

// UpdateFields merges the given fields into the profile document.
func (r *MockProfileRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	if r.FailWrites != nil {
		return &apperr.PersistenceError{Op: "update profile " + id, Err: r.FailWrites}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.profiles[id]
	if !ok {
		return apperr.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			user.Name, _ = v.(string)
		case "email":
			user.Email, _ = v.(string)
		case "favorites":
			favorites, _ := v.([]string)
			user.Favorites = append(make([]string, 0, len(favorites)), favorites...)
		}
	}
	r.profiles[id] = user
	return nil
}
