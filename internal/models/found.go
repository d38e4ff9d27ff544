package models

import (
	"time"

	"github.com/google/uuid"
)

// FoundPetDB links a finder to an emergency alert. Rows are never updated
// or deleted; one alert may accumulate several acknowledgments.
type FoundPetDB struct {
	FoundID   uuid.UUID `json:"id" db:"id"`
	AlertID   uuid.UUID `json:"alert_id" db:"alert_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"` // Finder
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// FoundPetContact is an acknowledgment joined with the alert and the
// finder's profile, as surfaced to the pet owner.
type FoundPetContact struct {
	FoundID         uuid.UUID `json:"id" db:"id"`
	AlertID         uuid.UUID `json:"alert_id" db:"alert_id"`
	PetName         string    `json:"pet_name" db:"pet_name"`
	PetType         string    `json:"pet_type" db:"pet_type"`
	FinderFirstName string    `json:"finder_first_name" db:"finder_first_name"`
	FinderLastName  string    `json:"finder_last_name" db:"finder_last_name"`
	FinderPhone     string    `json:"finder_phone" db:"finder_phone"`
	FinderColonia   string    `json:"finder_colonia" db:"finder_colonia"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
