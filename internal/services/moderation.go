package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-image-gallery/internal/logger"
	"github.com/sbilibin2017/gw-image-gallery/internal/models"
)

// ModerationService moves images out of the pending state.
type ModerationService struct {
	reader      ImageReader
	writer      ImageWriter
	kafkaWriter KafkaWriter
}

// NewModerationService creates a new ModerationService. kafkaWriter may be nil.
func NewModerationService(reader ImageReader, writer ImageWriter, kafkaWriter KafkaWriter) *ModerationService {
	return &ModerationService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// Queue lists images in the given status for review.
func (s *ModerationService) Queue(ctx context.Context, identity models.Identity, status models.ImageStatus) ([]models.ImageDB, error) {
	if !identity.Can(models.CapModerate) {
		return nil, ErrForbidden
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	images, err := s.reader.ListByStatus(ctx, status)
	if err != nil {
		logger.Log.Errorw("failed to list images by status", "status", status, "error", err)
		return nil, err
	}
	return images, nil
}

// Approve moves a pending image to approved.
func (s *ModerationService) Approve(ctx context.Context, identity models.Identity, imageID uuid.UUID) (*models.ImageDB, error) {
	return s.transition(ctx, identity, imageID, models.StatusApproved)
}

// Reject moves a pending image to rejected.
func (s *ModerationService) Reject(ctx context.Context, identity models.Identity, imageID uuid.UUID) (*models.ImageDB, error) {
	return s.transition(ctx, identity, imageID, models.StatusRejected)
}

func (s *ModerationService) transition(ctx context.Context, identity models.Identity, imageID uuid.UUID, next models.ImageStatus) (*models.ImageDB, error) {
	if !identity.Can(models.CapModerate) {
		logger.Log.Warnw("moderation attempt without capability", "user_id", identity.UserID, "image_id", imageID)
		return nil, ErrForbidden
	}

	current, err := s.reader.GetByID(ctx, imageID)
	if err != nil {
		logger.Log.Errorw("failed to get image", "image_id", imageID, "error", err)
		return nil, err
	}
	if current == nil {
		return nil, ErrImageNotFound
	}
	if !current.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	// The update only matches a still-pending row, so a concurrent moderator
	// that got there first makes this a no-op.
	img, err := s.writer.UpdateStatus(ctx, imageID, current.Status, next)
	if err != nil {
		logger.Log.Errorw("failed to update image status", "image_id", imageID, "status", next, "error", err)
		return nil, err
	}
	if img == nil {
		return nil, ErrInvalidTransition
	}

	logger.Log.Infow("image moderated", "image_id", imageID, "status", next, "moderator_id", identity.UserID)

	eventType := models.EventImageApproved
	if next == models.StatusRejected {
		eventType = models.EventImageRejected
	}
	publishImageEvent(ctx, s.kafkaWriter, eventType, img, identity.UserID)

	return img, nil
}
