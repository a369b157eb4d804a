package services

import (
	"bytes"
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-image-gallery/internal/logger"
	"github.com/sbilibin2017/gw-image-gallery/internal/models"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

//go:generate mockgen -source=image.go -destination=image_mock.go -package=services

// ImageReader defines read operations for images.
type ImageReader interface {
	GetByID(ctx context.Context, imageID uuid.UUID) (*models.ImageDB, error)
	ListPublic(ctx context.Context) ([]models.PublicImage, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ImageDB, error)
	ListByStatus(ctx context.Context, status models.ImageStatus) ([]models.ImageDB, error)
}

// ImageWriter defines write operations for images.
type ImageWriter interface {
	Save(ctx context.Context, img *models.ImageDB) error
	UpdateStatus(ctx context.Context, imageID uuid.UUID, from, to models.ImageStatus) (*models.ImageDB, error)
	UpdateVisibility(ctx context.Context, imageID uuid.UUID, visibility models.Visibility) (*models.ImageDB, error)
	Delete(ctx context.Context, imageID uuid.UUID) error
}

// ObjectStorage stores image bytes.
type ObjectStorage interface {
	Put(ctx context.Context, key string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

// UploadInput is a decoded upload request.
type UploadInput struct {
	Description string
	Visibility  models.Visibility
	Data        []byte
}

var formatExtensions = map[string]string{
	"jpeg": "jpg",
	"png":  "png",
	"gif":  "gif",
	"bmp":  "bmp",
	"tiff": "tiff",
	"webp": "webp",
}

// ImageService handles uploads, listings and owner operations on images.
type ImageService struct {
	reader      ImageReader
	writer      ImageWriter
	objects     ObjectStorage
	kafkaWriter KafkaWriter
}

// NewImageService creates a new ImageService. kafkaWriter may be nil.
func NewImageService(reader ImageReader, writer ImageWriter, objects ObjectStorage, kafkaWriter KafkaWriter) *ImageService {
	return &ImageService{
		reader:      reader,
		writer:      writer,
		objects:     objects,
		kafkaWriter: kafkaWriter,
	}
}

// Upload stores the image bytes and creates a pending image owned by the caller.
func (s *ImageService) Upload(ctx context.Context, identity models.Identity, in UploadInput) (*models.ImageDB, error) {
	if len(in.Data) == 0 {
		return nil, ErrMissingImage
	}
	visibility := in.Visibility
	if visibility == "" {
		visibility = models.VisibilityPublic
	}
	if !visibility.Valid() {
		return nil, ErrInvalidVisibility
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(in.Data))
	if err != nil {
		logger.Log.Warnw("rejected upload", "user_id", identity.UserID, "error", err)
		return nil, ErrUnsupportedImage
	}
	ext, ok := formatExtensions[format]
	if !ok {
		return nil, ErrUnsupportedImage
	}

	img := &models.ImageDB{
		ImageID:     uuid.New(),
		Description: in.Description,
		UserID:      identity.UserID,
		Status:      models.StatusPending,
		Visibility:  visibility,
	}
	img.PublicID = "images/" + img.ImageID.String() + "." + ext

	url, err := s.objects.Put(ctx, img.PublicID, bytes.NewReader(in.Data))
	if err != nil {
		logger.Log.Errorw("failed to store image object", "public_id", img.PublicID, "error", err)
		return nil, err
	}
	img.ImageURL = url

	if err := s.writer.Save(ctx, img); err != nil {
		logger.Log.Errorw("failed to save image", "image_id", img.ImageID, "error", err)
		if derr := s.objects.Delete(ctx, img.PublicID); derr != nil {
			logger.Log.Warnw("failed to remove orphaned image object", "public_id", img.PublicID, "error", derr)
		}
		return nil, err
	}

	publishImageEvent(ctx, s.kafkaWriter, models.EventImageUploaded, img, identity.UserID)
	return img, nil
}

// ListPublic returns approved public images, newest first.
func (s *ImageService) ListPublic(ctx context.Context) ([]models.PublicImage, error) {
	images, err := s.reader.ListPublic(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list public images", "error", err)
		return nil, err
	}
	return images, nil
}

// ListMine returns all images owned by the caller.
func (s *ImageService) ListMine(ctx context.Context, identity models.Identity) ([]models.ImageDB, error) {
	images, err := s.reader.ListByUser(ctx, identity.UserID)
	if err != nil {
		logger.Log.Errorw("failed to list user images", "user_id", identity.UserID, "error", err)
		return nil, err
	}
	return images, nil
}

// SetVisibility changes the visibility of one of the caller's images.
func (s *ImageService) SetVisibility(ctx context.Context, identity models.Identity, imageID uuid.UUID, visibility models.Visibility) (*models.ImageDB, error) {
	if !visibility.Valid() {
		return nil, ErrInvalidVisibility
	}
	if _, err := s.owned(ctx, identity, imageID, false); err != nil {
		return nil, err
	}

	img, err := s.writer.UpdateVisibility(ctx, imageID, visibility)
	if err != nil {
		logger.Log.Errorw("failed to update visibility", "image_id", imageID, "error", err)
		return nil, err
	}
	if img == nil {
		return nil, ErrImageNotFound
	}
	return img, nil
}

// Delete removes one of the caller's images. Moderators may delete any image.
func (s *ImageService) Delete(ctx context.Context, identity models.Identity, imageID uuid.UUID) error {
	img, err := s.owned(ctx, identity, imageID, true)
	if err != nil {
		return err
	}

	if err := s.writer.Delete(ctx, imageID); err != nil {
		logger.Log.Errorw("failed to delete image", "image_id", imageID, "error", err)
		return err
	}
	if err := s.objects.Delete(ctx, img.PublicID); err != nil {
		logger.Log.Warnw("failed to delete image object", "public_id", img.PublicID, "error", err)
	}
	return nil
}

// owned loads the image and checks the caller owns it.
func (s *ImageService) owned(ctx context.Context, identity models.Identity, imageID uuid.UUID, moderatorOK bool) (*models.ImageDB, error) {
	img, err := s.reader.GetByID(ctx, imageID)
	if err != nil {
		logger.Log.Errorw("failed to get image", "image_id", imageID, "error", err)
		return nil, err
	}
	if img == nil {
		return nil, ErrImageNotFound
	}
	if img.UserID != identity.UserID && !(moderatorOK && identity.Can(models.CapModerate)) {
		return nil, ErrForbidden
	}
	return img, nil
}
