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

const userColumns = `user_id, name, email, password_hash, role, created_at, updated_at`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil if none exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

// GetByID returns the user with the given id, or nil if none exists.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return r.getOne(ctx, query, userID)
}

// List returns all users ordered by registration time.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at, user_id`

	users := []models.UserDB{}
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Infow(
		"query", query,
		"result", len(users),
		"error", err,
	)

	return users, err
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, arg)

	logger.Log.Infow(
		"query", query,
		"args", []any{arg},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and fills in its timestamps.
// Returns ErrDuplicateKey when the email is taken.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (user_id, name, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	args := []any{user.UserID, user.Name, user.Email, user.PasswordHash, user.Role}

	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&user.CreatedAt, &user.UpdatedAt)

	// Password hash is left out of the log line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{user.UserID, user.Name, user.Email, user.Role},
		"error", err,
	)

	return mapWriteError(err)
}

// Update changes the name and, when email is non-nil, the email of a user.
// Returns nil when the user does not exist.
func (r *UserWriteRepository) Update(ctx context.Context, userID uuid.UUID, name string, email *string) (*models.UserDB, error) {
	query := `
		UPDATE users
		SET name = $2,
		    email = COALESCE($3, email),
		    updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + userColumns

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID, name, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, name, email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapWriteError(err)
	}
	return &user, nil
}

// Delete removes a user together with their images, likes and comments,
// including likes and comments other users left on those images.
// Reports whether a user row was removed.
func (r *UserWriteRepository) Delete(ctx context.Context, userID uuid.UUID) (bool, error) {
	const query = `
		WITH owned AS (
			SELECT image_id FROM images WHERE user_id = $1
		), removed_likes AS (
			DELETE FROM likes WHERE image_id IN (SELECT image_id FROM owned)
		), removed_comments AS (
			DELETE FROM comments WHERE image_id IN (SELECT image_id FROM owned)
		)
		DELETE FROM users WHERE user_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}
