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

const imageColumns = `image_id, description, image_url, public_id, user_id, status, visibility, created_at`

// ImageReadRepository handles image read operations
type ImageReadRepository struct {
	db *sqlx.DB
}

func NewImageReadRepository(db *sqlx.DB) *ImageReadRepository {
	return &ImageReadRepository{db: db}
}

// GetByID returns the image, or nil if it does not exist.
func (r *ImageReadRepository) GetByID(ctx context.Context, imageID uuid.UUID) (*models.ImageDB, error) {
	query := `SELECT ` + imageColumns + ` FROM images WHERE image_id = $1`

	var img models.ImageDB
	err := r.db.GetContext(ctx, &img, query, imageID)

	logger.Log.Infow(
		"query", query,
		"args", []any{imageID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// ListPublic returns approved public images, newest first, with owner info.
func (r *ImageReadRepository) ListPublic(ctx context.Context) ([]models.PublicImage, error) {
	const query = `
		SELECT i.image_id, i.description, i.image_url, i.status, i.visibility, i.created_at,
		       u.user_id AS owner_id, u.name AS owner_name, u.email AS owner_email
		FROM images i
		JOIN users u ON u.user_id = i.user_id
		WHERE i.status = $1 AND i.visibility = $2
		ORDER BY i.created_at DESC, i.image_id DESC
	`

	images := []models.PublicImage{}
	err := r.db.SelectContext(ctx, &images, query, models.StatusApproved, models.VisibilityPublic)
	for i := range images {
		images[i].User = models.UserProfile{
			ID:    images[i].OwnerID,
			Name:  images[i].OwnerName,
			Email: images[i].OwnerEmail,
		}
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{models.StatusApproved, models.VisibilityPublic},
		"result", len(images),
		"error", err,
	)

	return images, err
}

// ListByUser returns every image owned by the user regardless of status
// or visibility, newest first.
func (r *ImageReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ImageDB, error) {
	query := `SELECT ` + imageColumns + ` FROM images WHERE user_id = $1 ORDER BY created_at DESC, image_id DESC`
	return r.list(ctx, query, userID)
}

// ListByStatus returns images in the given moderation state, newest first.
func (r *ImageReadRepository) ListByStatus(ctx context.Context, status models.ImageStatus) ([]models.ImageDB, error) {
	query := `SELECT ` + imageColumns + ` FROM images WHERE status = $1 ORDER BY created_at DESC, image_id DESC`
	return r.list(ctx, query, status)
}

func (r *ImageReadRepository) list(ctx context.Context, query string, arg any) ([]models.ImageDB, error) {
	images := []models.ImageDB{}
	err := r.db.SelectContext(ctx, &images, query, arg)

	logger.Log.Infow(
		"query", query,
		"args", []any{arg},
		"result", len(images),
		"error", err,
	)

	return images, err
}

// ImageWriteRepository handles image write operations
type ImageWriteRepository struct {
	db *sqlx.DB
}

func NewImageWriteRepository(db *sqlx.DB) *ImageWriteRepository {
	return &ImageWriteRepository{db: db}
}

// Save inserts a new image and fills in its creation time.
func (r *ImageWriteRepository) Save(ctx context.Context, img *models.ImageDB) error {
	const query = `
		INSERT INTO images (image_id, description, image_url, public_id, user_id, status, visibility, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING created_at
	`
	args := []any{img.ImageID, img.Description, img.ImageURL, img.PublicID, img.UserID, img.Status, img.Visibility}

	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&img.CreatedAt)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// UpdateStatus moves an image from one status to another in a single
// conditional statement. Returns nil when the image does not exist or is no
// longer in the from status.
func (r *ImageWriteRepository) UpdateStatus(ctx context.Context, imageID uuid.UUID, from, to models.ImageStatus) (*models.ImageDB, error) {
	query := `
		UPDATE images SET status = $3
		WHERE image_id = $1 AND status = $2
		RETURNING ` + imageColumns

	return r.updateOne(ctx, query, imageID, from, to)
}

// UpdateVisibility sets the visibility of an image. Returns nil when the
// image does not exist.
func (r *ImageWriteRepository) UpdateVisibility(ctx context.Context, imageID uuid.UUID, visibility models.Visibility) (*models.ImageDB, error) {
	query := `
		UPDATE images SET visibility = $2
		WHERE image_id = $1
		RETURNING ` + imageColumns

	return r.updateOne(ctx, query, imageID, visibility)
}

// Delete removes an image together with its likes and comments.
func (r *ImageWriteRepository) Delete(ctx context.Context, imageID uuid.UUID) error {
	const query = `
		WITH removed_likes AS (
			DELETE FROM likes WHERE image_id = $1
		), removed_comments AS (
			DELETE FROM comments WHERE image_id = $1
		)
		DELETE FROM images WHERE image_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, imageID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{imageID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

func (r *ImageWriteRepository) updateOne(ctx context.Context, query string, args ...any) (*models.ImageDB, error) {
	var img models.ImageDB
	err := r.db.GetContext(ctx, &img, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}
