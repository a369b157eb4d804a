package models

import (
	"time"

	"github.com/google/uuid"
)

// LikeDB is a single like; the (image, user) pair is unique.
type LikeDB struct {
	ImageID   uuid.UUID `json:"image" db:"image_id"`
	UserID    uuid.UUID `json:"user" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
