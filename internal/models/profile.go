package models

import (
	"time"

	"github.com/google/uuid"
)

// ProfileDB represents a user profile row. The Address field holds the
// colonia and is the sole neighbor-matching key for alert fan-out.
type ProfileDB struct {
	ProfileID         uuid.UUID  `json:"id" db:"id"`
	UserID            uuid.UUID  `json:"user_id" db:"user_id"`
	FirstName         string     `json:"first_name" db:"first_name"`
	LastName          string     `json:"last_name" db:"last_name"`
	Phone             string     `json:"phone" db:"phone"`
	BirthDate         *time.Time `json:"birth_date" db:"birth_date"`
	PostalCode        string     `json:"postal_code" db:"postal_code"`
	Address           string     `json:"address" db:"address"` // colonia
	City              string     `json:"city" db:"city"`
	ProfilePictureURL *string    `json:"profile_picture_url" db:"profile_picture_url"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at" db:"updated_at"`
}
