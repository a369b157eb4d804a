package models

import (
	"time"

	"github.com/google/uuid"
)

// CommentDB represents a comment row in the database
type CommentDB struct {
	CommentID uuid.UUID `json:"id" db:"comment_id"`
	ImageID   uuid.UUID `json:"image" db:"image_id"` // not checked against images
	UserID    uuid.UUID `json:"user" db:"user_id"`
	Content   string    `json:"content" db:"content"` // stored verbatim
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
