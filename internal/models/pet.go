package models

import (
	"time"

	"github.com/google/uuid"
)

// Supported pet types
const (
	PetTypeDog = "perro"
	PetTypeCat = "gato"
)

// PetDB represents a registered pet owned by a user.
type PetDB struct {
	PetID     uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"` // Owner
	Type      string    `json:"type" db:"type"`       // perro or gato
	Name      string    `json:"name" db:"name"`
	Color     string    `json:"color" db:"color"`
	Size      string    `json:"size" db:"size"`
	Features  *string   `json:"features" db:"features"`
	ImageURL  *string   `json:"image_url" db:"image_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
