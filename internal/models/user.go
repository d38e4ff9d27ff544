package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents an account record in the database.
// An account starts incomplete and becomes complete once a profile is attached.
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"id"`                   // Primary key
	Email        string    `json:"email" db:"email"`             // Unique login email
	PasswordHash string    `json:"-" db:"password_hash"`         // Bcrypt hash, never serialized
	IsComplete   bool      `json:"is_complete" db:"is_complete"` // Profile attached flag
	PushToken    *string   `json:"-" db:"push_token"`            // Opaque device token for the push gateway, nil until registered
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
