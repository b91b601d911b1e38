package repositories

import "coffeinimals/internal/models"

// AccountRepository defines the interface for identity-provider records.
type AccountRepository interface {
	Create(account *models.Account) error
	GetByEmail(email string) (*models.Account, error)
	GetByID(id string) (*models.Account, error)
}
