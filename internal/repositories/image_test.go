package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-image-gallery/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	readRepo := NewImageReadRepository(db)
	writeRepo := NewImageWriteRepository(db)

	owner := seedUser(t, db, "owner@example.com")
	stranger := seedUser(t, db, "stranger@example.com")

	pending := seedImage(t, db, owner.UserID, models.StatusPending, models.VisibilityPublic)
	approvedOld := seedImage(t, db, owner.UserID, models.StatusApproved, models.VisibilityPublic)
	approvedNew := seedImage(t, db, stranger.UserID, models.StatusApproved, models.VisibilityPublic)
	hidden := seedImage(t, db, owner.UserID, models.StatusApproved, models.VisibilityPrivate)
	rejected := seedImage(t, db, owner.UserID, models.StatusRejected, models.VisibilityPublic)

	t.Run("GetByID", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, pending.ImageID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, pending.PublicID, got.PublicID)
		assert.Equal(t, models.StatusPending, got.Status)

		got, err = readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("ListPublic returns approved public newest first", func(t *testing.T) {
		images, err := readRepo.ListPublic(ctx)
		require.NoError(t, err)
		require.Len(t, images, 2)
		assert.Equal(t, approvedNew.ImageID, images[0].ImageID)
		assert.Equal(t, approvedOld.ImageID, images[1].ImageID)
		assert.Equal(t, "stranger@example.com", images[0].User.Email)
		assert.Equal(t, stranger.UserID, images[0].User.ID)
	})

	t.Run("ListByUser includes every status", func(t *testing.T) {
		images, err := readRepo.ListByUser(ctx, owner.UserID)
		require.NoError(t, err)
		assert.Len(t, images, 4)
	})

	t.Run("ListByStatus", func(t *testing.T) {
		images, err := readRepo.ListByStatus(ctx, models.StatusPending)
		require.NoError(t, err)
		require.Len(t, images, 1)
		assert.Equal(t, pending.ImageID, images[0].ImageID)

		images, err = readRepo.ListByStatus(ctx, models.StatusRejected)
		require.NoError(t, err)
		require.Len(t, images, 1)
		assert.Equal(t, rejected.ImageID, images[0].ImageID)
	})

	t.Run("UpdateStatus is conditional", func(t *testing.T) {
		got, err := writeRepo.UpdateStatus(ctx, pending.ImageID, models.StatusPending, models.StatusApproved)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, models.StatusApproved, got.Status)

		got, err = writeRepo.UpdateStatus(ctx, pending.ImageID, models.StatusPending, models.StatusRejected)
		assert.NoError(t, err)
		assert.Nil(t, got)

		got, err = writeRepo.UpdateStatus(ctx, uuid.New(), models.StatusPending, models.StatusApproved)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("UpdateVisibility", func(t *testing.T) {
		got, err := writeRepo.UpdateVisibility(ctx, hidden.ImageID, models.VisibilityPublic)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, models.VisibilityPublic, got.Visibility)

		images, err := readRepo.ListPublic(ctx)
		require.NoError(t, err)
		assert.Len(t, images, 4)

		got, err = writeRepo.UpdateVisibility(ctx, uuid.New(), models.VisibilityPrivate)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Delete removes likes and comments", func(t *testing.T) {
		_, err := NewLikeWriteRepository(db, nil).Toggle(ctx, rejected.ImageID, stranger.UserID)
		require.NoError(t, err)
		require.NoError(t, NewCommentWriteRepository(db).Save(ctx, &models.CommentDB{
			CommentID: uuid.New(), ImageID: rejected.ImageID, UserID: stranger.UserID, Content: "meh",
		}))

		require.NoError(t, writeRepo.Delete(ctx, rejected.ImageID))

		got, err := readRepo.GetByID(ctx, rejected.ImageID)
		assert.NoError(t, err)
		assert.Nil(t, got)

		count, err := NewLikeReadRepository(db).Count(ctx, rejected.ImageID)
		assert.NoError(t, err)
		assert.Equal(t, 0, count)

		comments, err := NewCommentReadRepository(db).ListByImage(ctx, rejected.ImageID)
		assert.NoError(t, err)
		assert.Empty(t, comments)
	})
}
