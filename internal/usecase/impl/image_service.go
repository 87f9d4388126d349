package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"eventsathi/config"
	deliverycontext "eventsathi/internal/delivery/context"
	"eventsathi/internal/domain/entity"
	domainerrors "eventsathi/internal/domain/errors"
	"eventsathi/internal/domain/repository"
	"eventsathi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
)

// imageService implements the ImageUsecase interface. Image bytes live in
// the blob bucket under vendor-scoped keys; each object has a metadata row
// so listings never have to scan the bucket.
type imageService struct {
	imageRepo     repository.VendorImageRepository
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// ImageServiceParams holds dependencies for ImageService, injected by Fx.
type ImageServiceParams struct {
	fx.In

	ImageRepo repository.VendorImageRepository
	Bucket    *blob.Bucket
	Config    *config.Config
	Logger    *slog.Logger
}

// NewImageService is the constructor for imageService.
func NewImageService(params ImageServiceParams) usecase.ImageUsecase {
	publicBaseURL := ""
	if params.Config != nil && params.Config.Storage != nil {
		publicBaseURL = strings.TrimRight(params.Config.Storage.PublicBaseURL, "/")
	}

	return &imageService{
		imageRepo:     params.ImageRepo,
		bucket:        params.Bucket,
		publicBaseURL: publicBaseURL,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *imageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadVendorImages stores the uploaded files and records their metadata.
// Uploads are applied one at a time; a failure part way through keeps the
// images already stored and reports the error for the rest.
func (srv *imageService) UploadVendorImages(ctx context.Context, vendorUserID uuid.UUID, uploads []*usecase.ImageUpload) ([]*entity.VendorImage, error) {
	stored := make([]*entity.VendorImage, 0, len(uploads))

	for _, upload := range uploads {
		image, err := srv.storeOne(ctx, vendorUserID, upload)
		if err != nil {
			srv.log(ctx).Error("Failed to store vendor image",
				slog.Any("vendor_user_id", vendorUserID),
				slog.String("filename", upload.Filename),
				slog.Any("error", err))

			return stored, err
		}
		stored = append(stored, image)
	}

	srv.log(ctx).Info("Vendor images uploaded", slog.Any("vendor_user_id", vendorUserID), slog.Int("count", len(stored)))

	return stored, nil
}

func (srv *imageService) storeOne(ctx context.Context, vendorUserID uuid.UUID, upload *usecase.ImageUpload) (*entity.VendorImage, error) {
	imageID := uuid.New()
	key := objectKey(vendorUserID, imageID, upload.Filename)

	writer, err := srv.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: upload.ContentType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open bucket writer")
	}

	size, err := writer.ReadFrom(upload.Reader)
	if err != nil {
		_ = writer.Close()

		return nil, errors.Wrap(err, "failed to write image to bucket")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize image in bucket")
	}

	image := &entity.VendorImage{
		ID:           imageID,
		VendorUserID: vendorUserID,
		ObjectKey:    key,
		URL:          srv.publicURL(key),
		ContentType:  upload.ContentType,
		SizeBytes:    size,
		CreatedAt:    time.Now(),
	}

	if err := srv.imageRepo.Create(ctx, image); err != nil {
		// The metadata row is the source of truth; without it the object
		// is unreachable, so remove it again.
		if delErr := srv.bucket.Delete(ctx, key); delErr != nil {
			srv.log(ctx).Error("Failed to remove orphaned bucket object",
				slog.String("object_key", key),
				slog.Any("error", delErr))
		}

		return nil, errors.Wrap(err, "failed to record image metadata")
	}

	return image, nil
}

// ListVendorImages returns the metadata for a vendor's images.
func (srv *imageService) ListVendorImages(ctx context.Context, vendorUserID uuid.UUID) ([]*entity.VendorImage, error) {
	images, err := srv.imageRepo.ListByVendor(ctx, vendorUserID)
	if err != nil {
		srv.log(ctx).Error("Failed to list vendor images", slog.Any("vendor_user_id", vendorUserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list vendor images")
	}

	return images, nil
}

// DeleteVendorImage removes an image a vendor owns, bucket object first so a
// failure leaves the metadata row behind for a retry rather than an
// unreachable object.
func (srv *imageService) DeleteVendorImage(ctx context.Context, vendorUserID, imageID uuid.UUID) error {
	image, err := srv.imageRepo.FindByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			return errors.Wrap(domainerrors.ErrImageNotFound, "image not found")
		}

		return errors.Wrap(err, "failed to load image metadata")
	}

	if image.VendorUserID != vendorUserID {
		srv.log(ctx).Warn("Vendor attempted to delete another vendor's image",
			slog.Any("vendor_user_id", vendorUserID),
			slog.Any("image_id", imageID))

		return errors.Wrap(domainerrors.ErrImageOwnershipViolation, "image belongs to another vendor")
	}

	if err := srv.bucket.Delete(ctx, image.ObjectKey); err != nil {
		srv.log(ctx).Error("Failed to delete image from bucket", slog.String("object_key", image.ObjectKey), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete image from bucket")
	}

	if err := srv.imageRepo.Delete(ctx, imageID); err != nil {
		return errors.Wrap(err, "failed to delete image metadata")
	}

	srv.log(ctx).Info("Vendor image deleted", slog.Any("vendor_user_id", vendorUserID), slog.Any("image_id", imageID))

	return nil
}

func objectKey(vendorUserID, imageID uuid.UUID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))

	return fmt.Sprintf("vendor-images/%s/%s%s", vendorUserID, imageID, ext)
}

func (srv *imageService) publicURL(key string) string {
	if srv.publicBaseURL == "" {
		return "/" + key
	}

	return srv.publicBaseURL + "/" + key
}
