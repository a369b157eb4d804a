package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-image-gallery/internal/logger"
	"github.com/sbilibin2017/gw-image-gallery/internal/models"
)

const commentColumns = `comment_id, image_id, user_id, content, created_at`

type CommentReadRepository struct {
	db *sqlx.DB
}

func NewCommentReadRepository(db *sqlx.DB) *CommentReadRepository {
	return &CommentReadRepository{db: db}
}

// GetByID returns the comment, or nil if it does not exist.
func (r *CommentReadRepository) GetByID(ctx context.Context, commentID uuid.UUID) (*models.CommentDB, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE comment_id = $1`

	var c models.CommentDB
	err := r.db.GetContext(ctx, &c, query, commentID)

	logger.Log.Infow(
		"query", query,
		"args", []any{commentID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByImage returns the comments on an image, oldest first.
func (r *CommentReadRepository) ListByImage(ctx context.Context, imageID uuid.UUID) ([]models.CommentDB, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE image_id = $1 ORDER BY created_at, comment_id`

	comments := []models.CommentDB{}
	err := r.db.SelectContext(ctx, &comments, query, imageID)

	logger.Log.Infow(
		"query", query,
		"args", []any{imageID},
		"result", len(comments),
		"error", err,
	)

	return comments, err
}

type CommentWriteRepository struct {
	db *sqlx.DB
}

func NewCommentWriteRepository(db *sqlx.DB) *CommentWriteRepository {
	return &CommentWriteRepository{db: db}
}

// Save inserts a comment and fills in its creation time.
func (r *CommentWriteRepository) Save(ctx context.Context, c *models.CommentDB) error {
	const query = `
		INSERT INTO comments (comment_id, image_id, user_id, content, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at
	`
	args := []any{c.CommentID, c.ImageID, c.UserID, c.Content}

	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&c.CreatedAt)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Delete removes a comment.
func (r *CommentWriteRepository) Delete(ctx context.Context, commentID uuid.UUID) error {
	const query = `DELETE FROM comments WHERE comment_id = $1`

	res, err := r.db.ExecContext(ctx, query, commentID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{commentID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
