package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-image-gallery/internal/models"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("requires docker")
	}

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, Migrate(context.Background(), db))
	// Running twice must be harmless
	require.NoError(t, Migrate(context.Background(), db))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func seedUser(t *testing.T, db *sqlx.DB, email string) *models.UserDB {
	t.Helper()
	user := &models.UserDB{
		UserID:       uuid.New(),
		Name:         "seed",
		Email:        email,
		PasswordHash: "hash",
		Role:         models.RoleUser,
	}
	require.NoError(t, NewUserWriteRepository(db).Save(context.Background(), user))
	return user
}

func seedImage(t *testing.T, db *sqlx.DB, owner uuid.UUID, status models.ImageStatus, visibility models.Visibility) *models.ImageDB {
	t.Helper()
	id := uuid.New()
	img := &models.ImageDB{
		ImageID:     id,
		Description: "seed",
		ImageURL:    "http://localhost/uploads/images/" + id.String() + ".png",
		PublicID:    "images/" + id.String() + ".png",
		UserID:      owner,
		Status:      status,
		Visibility:  visibility,
	}
	require.NoError(t, NewImageWriteRepository(db).Save(context.Background(), img))
	return img
}
