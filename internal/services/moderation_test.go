package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-image-gallery/internal/models"
	"github.com/sbilibin2017/gw-image-gallery/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModerationService_Transitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockImageReader(ctrl)
	writer := services.NewMockImageWriter(ctrl)
	kafka := services.NewMockKafkaWriter(ctrl)
	svc := services.NewModerationService(reader, writer, kafka)

	admin := models.Identity{UserID: uuid.New(), Role: models.RoleAdmin}
	user := models.Identity{UserID: uuid.New(), Role: models.RoleUser}
	imageID := uuid.New()
	pending := &models.ImageDB{ImageID: imageID, Status: models.StatusPending}

	tests := []struct {
		name      string
		identity  models.Identity
		approve   bool
		current   *models.ImageDB
		updated   *models.ImageDB
		writerErr error
		wantErr   error
		wantEvent bool
	}{
		{
			name:      "approve pending",
			identity:  admin,
			approve:   true,
			current:   pending,
			updated:   &models.ImageDB{ImageID: imageID, Status: models.StatusApproved},
			wantEvent: true,
		},
		{
			name:      "reject pending",
			identity:  admin,
			current:   pending,
			updated:   &models.ImageDB{ImageID: imageID, Status: models.StatusRejected},
			wantEvent: true,
		},
		{
			name:     "non-moderator",
			identity: user,
			approve:  true,
			wantErr:  services.ErrForbidden,
		},
		{
			name:     "missing image",
			identity: admin,
			approve:  true,
			wantErr:  services.ErrImageNotFound,
		},
		{
			name:     "already approved",
			identity: admin,
			current:  &models.ImageDB{ImageID: imageID, Status: models.StatusApproved},
			wantErr:  services.ErrInvalidTransition,
		},
		{
			name:     "lost race",
			identity: admin,
			approve:  true,
			current:  pending,
			wantErr:  services.ErrInvalidTransition,
		},
		{
			name:      "writer error",
			identity:  admin,
			approve:   true,
			current:   pending,
			writerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := models.StatusRejected
			if tt.approve {
				next = models.StatusApproved
			}
			if tt.identity.Can(models.CapModerate) {
				reader.EXPECT().GetByID(gomock.Any(), imageID).Return(tt.current, nil)
				if tt.current != nil && tt.current.Status == models.StatusPending {
					writer.EXPECT().UpdateStatus(gomock.Any(), imageID, models.StatusPending, next).Return(tt.updated, tt.writerErr)
				}
			}
			if tt.wantEvent {
				kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			}

			var (
				img *models.ImageDB
				err error
			)
			if tt.approve {
				img, err = svc.Approve(context.Background(), tt.identity, imageID)
			} else {
				img, err = svc.Reject(context.Background(), tt.identity, imageID)
			}

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, img)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, next, img.Status)
		})
	}
}

func TestModerationService_Queue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockImageReader(ctrl)
	svc := services.NewModerationService(reader, nil, nil)

	admin := models.Identity{UserID: uuid.New(), Role: models.RoleAdmin}
	queue := []models.ImageDB{{ImageID: uuid.New(), Status: models.StatusPending}}

	reader.EXPECT().ListByStatus(gomock.Any(), models.StatusPending).Return(queue, nil)
	got, err := svc.Queue(context.Background(), admin, models.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, queue, got)

	_, err = svc.Queue(context.Background(), admin, "archived")
	assert.ErrorIs(t, err, services.ErrInvalidStatus)

	_, err = svc.Queue(context.Background(), models.Identity{Role: models.RoleUser}, models.StatusPending)
	assert.ErrorIs(t, err, services.ErrForbidden)
}
