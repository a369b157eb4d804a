package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-image-gallery/internal/logger"
)

// schema is applied idempotently at startup.
//
// likes.image_id and comments.image_id intentionally carry no foreign key:
// likes and comments may reference images that do not exist.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id       UUID PRIMARY KEY,
		name          VARCHAR(100) NOT NULL,
		email         VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role          VARCHAR(16)  NOT NULL DEFAULT 'user' CHECK (role IN ('user', 'admin')),
		created_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS images (
		image_id    UUID PRIMARY KEY,
		description TEXT        NOT NULL DEFAULT '',
		image_url   TEXT        NOT NULL,
		public_id   TEXT        NOT NULL,
		user_id     UUID        NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
		status      VARCHAR(16) NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'rejected')),
		visibility  VARCHAR(16) NOT NULL DEFAULT 'public' CHECK (visibility IN ('public', 'private')),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS images_public_idx ON images (status, visibility, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS images_user_idx ON images (user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS likes (
		image_id   UUID        NOT NULL,
		user_id    UUID        NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (image_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS comments (
		comment_id UUID PRIMARY KEY,
		image_id   UUID        NOT NULL,
		user_id    UUID        NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
		content    TEXT        NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS comments_image_idx ON comments (image_id, created_at)`,
}

// Migrate creates the tables and indexes used by the repositories.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.Log.Errorw("migration failed", "statement", stmt, "error", err)
			return err
		}
	}
	logger.Log.Infow("schema migrated", "statements", len(schema))
	return nil
}
