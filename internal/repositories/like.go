package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-image-gallery/internal/logger"
)

// LikeWriteRepository flips like records
type LikeWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewLikeWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *LikeWriteRepository {
	return &LikeWriteRepository{db: db, txGetter: txGetter}
}

// Toggle deletes the like for (imageID, userID) if present, otherwise creates
// it, and reports whether the pair is liked afterwards.
//
// The statements run under a transaction-scoped advisory lock on the pair, so
// concurrent toggles for the same pair are applied one after another. The
// request transaction is used when present; otherwise Toggle opens its own.
func (r *LikeWriteRepository) Toggle(ctx context.Context, imageID, userID uuid.UUID) (liked bool, err error) {
	var tx *sqlx.Tx
	if r.txGetter != nil {
		tx = r.txGetter(ctx)
	}
	if tx == nil {
		var own *sqlx.Tx
		own, err = r.db.BeginTxx(ctx, nil)
		if err != nil {
			return false, err
		}
		defer func() {
			if err != nil {
				own.Rollback()
				return
			}
			err = own.Commit()
		}()
		tx = own
	}

	const lockQuery = `SELECT pg_advisory_xact_lock(hashtextextended($1::text || ':' || $2::text, 0))`
	if _, err = tx.ExecContext(ctx, lockQuery, imageID, userID); err != nil {
		logger.Log.Errorw("failed to lock like pair", "image_id", imageID, "user_id", userID, "error", err)
		return false, err
	}

	const deleteQuery = `DELETE FROM likes WHERE image_id = $1 AND user_id = $2`
	res, err := tx.ExecContext(ctx, deleteQuery, imageID, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete like", "image_id", imageID, "user_id", userID, "error", err)
		return false, err
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if removed > 0 {
		logger.Log.Infow(
			"query", deleteQuery,
			"args", []any{imageID, userID},
			"result", removed,
		)
		return false, nil
	}

	const insertQuery = `
		INSERT INTO likes (image_id, user_id, created_at)
		VALUES ($1, $2, NOW())
	`
	_, err = tx.ExecContext(ctx, insertQuery, imageID, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(insertQuery), " "),
		"args", []any{imageID, userID},
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return true, nil
}

// LikeReadRepository handles like read operations
type LikeReadRepository struct {
	db *sqlx.DB
}

func NewLikeReadRepository(db *sqlx.DB) *LikeReadRepository {
	return &LikeReadRepository{db: db}
}

// Count returns the number of likes on an image.
func (r *LikeReadRepository) Count(ctx context.Context, imageID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM likes WHERE image_id = $1`

	var count int
	err := r.db.GetContext(ctx, &count, query, imageID)

	logger.Log.Infow(
		"query", query,
		"args", []any{imageID},
		"result", count,
		"error", err,
	)

	return count, err
}

// Exists reports whether the user likes the image.
func (r *LikeReadRepository) Exists(ctx context.Context, imageID, userID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM likes WHERE image_id = $1 AND user_id = $2)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, imageID, userID)

	logger.Log.Infow(
		"query", query,
		"args", []any{imageID, userID},
		"result", exists,
		"error", err,
	)

	return exists, err
}
