package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database.
type UserDB struct {
	ID        uuid.UUID `json:"id" db:"id"`                 // Primary key
	Email     string    `json:"email" db:"email"`           // Unique email
	Password  string    `json:"password" db:"password"`     // bcrypt digest
	Name      string    `json:"name" db:"name"`             // Display name
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// PublicUser is the credential-free projection returned by login.
type PublicUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// Public strips the password digest from a user record.
func (u *UserDB) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Name: u.Name}
}
