package models

import "gorm.io/gorm"

// Account is the identity-provider record for one registered user.
// Only the credential pair lives here; the mutable profile fields live in
// the profile document (see User).
type Account struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// User is the in-memory view of an authenticated identity together with
// its profile document. Favorites is ordered most-recently-added first and
// never contains the same label twice.
type User struct {
	ID        string   `json:"id" bson:"_id"`
	Name      string   `json:"name" bson:"name"`
	Email     string   `json:"email" bson:"email"`
	Favorites []string `json:"favorites" bson:"favorites"`
}

// Profile holds the mutable profile fields accepted by a profile update.
type Profile struct {
	Name  string `json:"name" bson:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" bson:"email" validate:"required,email"`
}
