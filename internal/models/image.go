package models

import (
	"time"

	"github.com/google/uuid"
)

// ImageStatus is the moderation state of an image.
type ImageStatus string

const (
	StatusPending  ImageStatus = "pending"
	StatusApproved ImageStatus = "approved"
	StatusRejected ImageStatus = "rejected"
)

// Valid reports whether s is a known status.
func (s ImageStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether moderation may move an image from s to next.
// Pending is the only non-terminal state.
func (s ImageStatus) CanTransitionTo(next ImageStatus) bool {
	return s == StatusPending && (next == StatusApproved || next == StatusRejected)
}

// Visibility is the owner-controlled exposure flag of an image.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// Valid reports whether v is a known visibility.
func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

// ImageDB represents an image row in the database
type ImageDB struct {
	ImageID     uuid.UUID   `json:"id" db:"image_id"`
	Description string      `json:"description" db:"description"`
	ImageURL    string      `json:"imageUrl" db:"image_url"`
	PublicID    string      `json:"publicId" db:"public_id"` // object store reference
	UserID      uuid.UUID   `json:"user" db:"user_id"`
	Status      ImageStatus `json:"status" db:"status"`
	Visibility  Visibility  `json:"visibility" db:"visibility"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
}

// PublicImage is an approved public image with denormalized owner info.
// swagger:model PublicImage
type PublicImage struct {
	ImageID     uuid.UUID   `json:"id" db:"image_id"`
	Description string      `json:"description" db:"description"`
	ImageURL    string      `json:"imageUrl" db:"image_url"`
	Status      ImageStatus `json:"status" db:"status"`
	Visibility  Visibility  `json:"visibility" db:"visibility"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
	User        UserProfile `json:"user" db:"-"`

	OwnerID    uuid.UUID `json:"-" db:"owner_id"`
	OwnerName  string    `json:"-" db:"owner_name"`
	OwnerEmail string    `json:"-" db:"owner_email"`
}
