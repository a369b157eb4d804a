package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-image-gallery/internal/logger"
	"github.com/sbilibin2017/gw-image-gallery/internal/models"
	"github.com/sbilibin2017/gw-image-gallery/internal/repositories"
)

// UserService manages the caller's own profile and the admin user list.
type UserService struct {
	reader  UserReader
	writer  UserWriter
	images  ImageReader
	objects ObjectStorage
	auth    *AuthService
}

// NewUserService creates a new UserService. auth is used to revoke the
// caller's token on account deletion and may be nil.
func NewUserService(reader UserReader, writer UserWriter, images ImageReader, objects ObjectStorage, auth *AuthService) *UserService {
	return &UserService{
		reader:  reader,
		writer:  writer,
		images:  images,
		objects: objects,
		auth:    auth,
	}
}

// Me returns the caller's profile.
func (s *UserService) Me(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile changes the caller's name and, if given, email. Email is
// accepted as is, without re-verification.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, name string, email *string) (*models.UserDB, error) {
	user, err := s.writer.Update(ctx, userID, name, email)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		logger.Log.Errorw("failed to update user", "user_id", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// DeleteAccount removes the caller together with their images, likes and
// comments, deletes their stored objects and revokes the current token.
func (s *UserService) DeleteAccount(ctx context.Context, identity models.Identity) error {
	owned, err := s.images.ListByUser(ctx, identity.UserID)
	if err != nil {
		logger.Log.Errorw("failed to list user images", "user_id", identity.UserID, "error", err)
		return err
	}

	deleted, err := s.writer.Delete(ctx, identity.UserID)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "user_id", identity.UserID, "error", err)
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}

	for _, img := range owned {
		if err := s.objects.Delete(ctx, img.PublicID); err != nil {
			logger.Log.Warnw("failed to delete image object", "image_id", img.ImageID, "public_id", img.PublicID, "error", err)
		}
	}

	if s.auth != nil {
		if err := s.auth.Logout(ctx, identity); err != nil {
			logger.Log.Warnw("failed to revoke token of deleted user", "user_id", identity.UserID, "error", err)
		}
	}

	logger.Log.Infow("user deleted", "user_id", identity.UserID, "images", len(owned))
	return nil
}

// ListUsers returns all accounts. Requires CapManageUsers.
func (s *UserService) ListUsers(ctx context.Context, identity models.Identity) ([]models.UserDB, error) {
	if !identity.Can(models.CapManageUsers) {
		return nil, ErrForbidden
	}
	users, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}
