package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-image-gallery/internal/logger"
	"github.com/sbilibin2017/gw-image-gallery/internal/models"
)

//go:generate mockgen -source=comment.go -destination=comment_mock.go -package=services

// CommentReader defines read operations for comments.
type CommentReader interface {
	GetByID(ctx context.Context, commentID uuid.UUID) (*models.CommentDB, error)
	ListByImage(ctx context.Context, imageID uuid.UUID) ([]models.CommentDB, error)
}

// CommentWriter defines write operations for comments.
type CommentWriter interface {
	Save(ctx context.Context, c *models.CommentDB) error
	Delete(ctx context.Context, commentID uuid.UUID) error
}

// CommentService handles comments on images.
type CommentService struct {
	reader CommentReader
	writer CommentWriter
}

// NewCommentService creates a new CommentService.
func NewCommentService(reader CommentReader, writer CommentWriter) *CommentService {
	return &CommentService{reader: reader, writer: writer}
}

// Add stores a comment verbatim. Empty content is rejected, whitespace-only
// content is kept. The image is not required to exist.
func (s *CommentService) Add(ctx context.Context, identity models.Identity, imageID uuid.UUID, content string) (*models.CommentDB, error) {
	if content == "" {
		return nil, ErrEmptyComment
	}

	c := &models.CommentDB{
		CommentID: uuid.New(),
		ImageID:   imageID,
		UserID:    identity.UserID,
		Content:   content,
	}
	if err := s.writer.Save(ctx, c); err != nil {
		logger.Log.Errorw("failed to save comment", "image_id", imageID, "user_id", identity.UserID, "error", err)
		return nil, err
	}
	return c, nil
}

// List returns the comments on an image, oldest first.
func (s *CommentService) List(ctx context.Context, imageID uuid.UUID) ([]models.CommentDB, error) {
	comments, err := s.reader.ListByImage(ctx, imageID)
	if err != nil {
		logger.Log.Errorw("failed to list comments", "image_id", imageID, "error", err)
		return nil, err
	}
	return comments, nil
}

// Delete removes a comment. Only its author or a moderator may do so.
func (s *CommentService) Delete(ctx context.Context, identity models.Identity, commentID uuid.UUID) error {
	c, err := s.reader.GetByID(ctx, commentID)
	if err != nil {
		logger.Log.Errorw("failed to get comment", "comment_id", commentID, "error", err)
		return err
	}
	if c == nil {
		return ErrCommentNotFound
	}
	if c.UserID != identity.UserID && !identity.Can(models.CapModerate) {
		return ErrForbidden
	}
	if err := s.writer.Delete(ctx, commentID); err != nil {
		logger.Log.Errorw("failed to delete comment", "comment_id", commentID, "error", err)
		return err
	}
	return nil
}
