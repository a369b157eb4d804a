package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the coarse permission group of a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// UserDB represents a user record in the database. PasswordHash is never
// serialized.
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// UserProfile is the minimal public view of a user.
// swagger:model UserProfile
type UserProfile struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  Role      `json:"role,omitempty"`
}

// Profile returns the public view of the user.
func (u *UserDB) Profile() UserProfile {
	return UserProfile{ID: u.UserID, Name: u.Name, Email: u.Email, Role: u.Role}
}
