package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-image-gallery/internal/logger"
	"github.com/sbilibin2017/gw-image-gallery/internal/models"
)

//go:generate mockgen -source=like.go -destination=like_mock.go -package=services

// LikeToggler flips the like state of a pair atomically.
type LikeToggler interface {
	Toggle(ctx context.Context, imageID, userID uuid.UUID) (bool, error)
}

// LikeReader reads like state.
type LikeReader interface {
	Count(ctx context.Context, imageID uuid.UUID) (int, error)
	Exists(ctx context.Context, imageID, userID uuid.UUID) (bool, error)
}

// LikeService likes and unlikes images. The image is not required to exist.
type LikeService struct {
	toggler LikeToggler
	reader  LikeReader
}

// NewLikeService creates a new LikeService.
func NewLikeService(toggler LikeToggler, reader LikeReader) *LikeService {
	return &LikeService{toggler: toggler, reader: reader}
}

// Toggle likes the image if the caller has not liked it yet, otherwise
// removes the like. Reports the new state.
func (s *LikeService) Toggle(ctx context.Context, identity models.Identity, imageID uuid.UUID) (bool, error) {
	liked, err := s.toggler.Toggle(ctx, imageID, identity.UserID)
	if err != nil {
		logger.Log.Errorw("failed to toggle like", "image_id", imageID, "user_id", identity.UserID, "error", err)
		return false, err
	}
	logger.Log.Infow("like toggled", "image_id", imageID, "user_id", identity.UserID, "liked", liked)
	return liked, nil
}

// Status returns the like count of the image and whether the caller likes it.
func (s *LikeService) Status(ctx context.Context, identity models.Identity, imageID uuid.UUID) (count int, liked bool, err error) {
	count, err = s.reader.Count(ctx, imageID)
	if err != nil {
		logger.Log.Errorw("failed to count likes", "image_id", imageID, "error", err)
		return 0, false, err
	}
	liked, err = s.reader.Exists(ctx, imageID, identity.UserID)
	if err != nil {
		logger.Log.Errorw("failed to check like", "image_id", imageID, "user_id", identity.UserID, "error", err)
		return 0, false, err
	}
	return count, liked, nil
}
