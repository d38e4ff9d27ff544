package models

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyAlertDB represents a currently-lost pet. Pet attributes are
// denormalized at reporting time; the row's existence is the "still lost"
// signal and resolution deletes it.
type EmergencyAlertDB struct {
	AlertID     uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"` // Reporter
	PetName     string    `json:"pet_name" db:"pet_name"`
	PetType     string    `json:"type" db:"pet_type"`
	Description *string   `json:"description" db:"description"`
	ImageURL    *string   `json:"image_url" db:"image_url"`
	Colonia     string    `json:"colonia" db:"colonia"` // Last-seen colonia
	LostDate    time.Time `json:"lost_date" db:"lost_date"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
