package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gw-image-gallery/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestMapWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"unique violation", &pgconn.PgError{Code: "23505"}, ErrDuplicateKey},
		{"wrapped unique violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), ErrDuplicateKey},
		{"other pg error", &pgconn.PgError{Code: "23503"}, nil},
		{"plain error", errors.New("boom"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapWriteError(tt.err)
			if tt.want != nil {
				assert.ErrorIs(t, got, tt.want)
				return
			}
			assert.Equal(t, tt.err, got)
		})
	}
}

func TestUserWriteRepository_Save_DuplicateMock(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("INSERT INTO users").WillReturnError(&pgconn.PgError{Code: "23505"})

	err := NewUserWriteRepository(db).Save(context.Background(), &models.UserDB{
		UserID: uuid.New(), Name: "A", Email: "a@example.com", PasswordHash: "x", Role: models.RoleUser,
	})
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImageWriteRepository_UpdateStatus_NoMatchMock(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("UPDATE images SET status").
		WillReturnRows(sqlmock.NewRows([]string{"image_id"}))

	got, err := NewImageWriteRepository(db).UpdateStatus(context.Background(), uuid.New(), models.StatusPending, models.StatusApproved)
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_ErrorMock(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnError(errors.New("permission denied"))

	err := Migrate(context.Background(), db)
	assert.EqualError(t, err, "permission denied")
}
