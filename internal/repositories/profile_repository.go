package repositories

import (
	"context"

	"coffeinimals/internal/models"
)

// ProfileRepository defines the interface for the profile document store.
// Documents are keyed by the account's opaque ID under a fixed "users"
// collection. Get returns apperr.ErrNotFound when no document exists;
// write failures come back wrapped as *apperr.PersistenceError.
type ProfileRepository interface {
	Get(ctx context.Context, id string) (*models.User, error)
	Set(ctx context.Context, id string, user *models.User) error
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
}
