package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-image-gallery/internal/models"
	"github.com/sbilibin2017/gw-image-gallery/internal/repositories"
	"github.com/sbilibin2017/gw-image-gallery/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockUserReader(ctrl)
	svc := services.NewUserService(reader, nil, nil, nil, nil)

	user := &models.UserDB{UserID: uuid.New(), Name: "alice"}
	reader.EXPECT().GetByID(gomock.Any(), user.UserID).Return(user, nil)
	got, err := svc.Me(context.Background(), user.UserID)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	reader.EXPECT().GetByID(gomock.Any(), user.UserID).Return(nil, nil)
	_, err = svc.Me(context.Background(), user.UserID)
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockUserWriter(ctrl)
	svc := services.NewUserService(nil, writer, nil, nil, nil)

	userID := uuid.New()
	email := "new@example.com"

	writer.EXPECT().Update(gomock.Any(), userID, "alice", &email).Return(&models.UserDB{UserID: userID, Name: "alice", Email: email}, nil)
	user, err := svc.UpdateProfile(context.Background(), userID, "alice", &email)
	require.NoError(t, err)
	assert.Equal(t, email, user.Email)

	writer.EXPECT().Update(gomock.Any(), userID, "alice", &email).Return(nil, repositories.ErrDuplicateKey)
	_, err = svc.UpdateProfile(context.Background(), userID, "alice", &email)
	assert.ErrorIs(t, err, services.ErrDuplicateEmail)

	writer.EXPECT().Update(gomock.Any(), userID, "alice", gomock.Nil()).Return(nil, nil)
	_, err = svc.UpdateProfile(context.Background(), userID, "alice", nil)
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestUserService_DeleteAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockUserWriter(ctrl)
	images := services.NewMockImageReader(ctrl)
	objects := services.NewMockObjectStorage(ctrl)
	revoker := services.NewMockTokenRevoker(ctrl)
	auth := services.NewAuthService(nil, nil, nil, revoker)
	svc := services.NewUserService(nil, writer, images, objects, auth)

	identity := models.Identity{UserID: uuid.New(), TokenID: "jti", ExpiresAt: time.Now().Add(time.Hour)}
	owned := []models.ImageDB{{ImageID: uuid.New(), PublicID: "images/a.png"}, {ImageID: uuid.New(), PublicID: "images/b.png"}}

	t.Run("removes account, objects and token", func(t *testing.T) {
		images.EXPECT().ListByUser(gomock.Any(), identity.UserID).Return(owned, nil)
		writer.EXPECT().Delete(gomock.Any(), identity.UserID).Return(true, nil)
		objects.EXPECT().Delete(gomock.Any(), "images/a.png").Return(nil)
		objects.EXPECT().Delete(gomock.Any(), "images/b.png").Return(errors.New("missing"))
		revoker.EXPECT().Revoke(gomock.Any(), "jti", gomock.Any()).Return(nil)

		assert.NoError(t, svc.DeleteAccount(context.Background(), identity))
	})

	t.Run("already gone", func(t *testing.T) {
		images.EXPECT().ListByUser(gomock.Any(), identity.UserID).Return(nil, nil)
		writer.EXPECT().Delete(gomock.Any(), identity.UserID).Return(false, nil)

		assert.ErrorIs(t, svc.DeleteAccount(context.Background(), identity), services.ErrUserNotFound)
	})
}

func TestUserService_ListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockUserReader(ctrl)
	svc := services.NewUserService(reader, nil, nil, nil, nil)

	users := []models.UserDB{{UserID: uuid.New()}}
	reader.EXPECT().List(gomock.Any()).Return(users, nil)
	got, err := svc.ListUsers(context.Background(), models.Identity{Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, users, got)

	_, err = svc.ListUsers(context.Background(), models.Identity{Role: models.RoleUser})
	assert.ErrorIs(t, err, services.ErrForbidden)
}
