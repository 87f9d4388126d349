package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"eventsathi/internal/domain/entity"
	domainerrors "eventsathi/internal/domain/errors"
	"eventsathi/internal/domain/repository"
	mockRepo "eventsathi/internal/mocks/repository"
	"eventsathi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/memblob"
)

// imageServiceFixtures holds all test dependencies for image service tests.
// The bucket is an in-memory gocloud bucket so tests exercise the real
// writer/delete paths.
type imageServiceFixtures struct {
	service   usecase.ImageUsecase
	imageRepo *mockRepo.MockVendorImageRepository
	bucket    *blob.Bucket
}

func createTestImageService(t *testing.T) imageServiceFixtures {
	imageRepo := mockRepo.NewMockVendorImageRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	bucket, err := blob.OpenBucket(context.Background(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	service := NewImageService(ImageServiceParams{
		ImageRepo: imageRepo,
		Bucket:    bucket,
		Logger:    logger,
	})

	return imageServiceFixtures{
		service:   service,
		imageRepo: imageRepo,
		bucket:    bucket,
	}
}

func TestImageService_UploadVendorImages_Success(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	uploads := []*usecase.ImageUpload{
		{Filename: "hall.JPG", ContentType: "image/jpeg", Reader: strings.NewReader("jpeg bytes")},
		{Filename: "stage.png", ContentType: "image/png", Reader: strings.NewReader("png bytes")},
	}

	fx.imageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.VendorImage")).
		Run(func(ctx context.Context, image *entity.VendorImage) {
			assert.Equal(t, vendorID, image.VendorUserID)
			assert.True(t, strings.HasPrefix(image.ObjectKey, "vendor-images/"+vendorID.String()+"/"))
		}).
		Return(nil).
		Times(2)

	stored, err := fx.service.UploadVendorImages(ctx, vendorID, uploads)

	require.NoError(t, err)
	require.Len(t, stored, 2)
	// Extensions are lower-cased in the object key.
	assert.True(t, strings.HasSuffix(stored[0].ObjectKey, ".jpg"))
	assert.True(t, strings.HasSuffix(stored[1].ObjectKey, ".png"))
	assert.Equal(t, int64(len("jpeg bytes")), stored[0].SizeBytes)

	// The bytes really landed in the bucket.
	exists, err := fx.bucket.Exists(ctx, stored[0].ObjectKey)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestImageService_UploadVendorImages_MetadataFailureRemovesObject(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	uploads := []*usecase.ImageUpload{
		{Filename: "hall.jpg", ContentType: "image/jpeg", Reader: strings.NewReader("jpeg bytes")},
	}

	var orphanKey string
	fx.imageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.VendorImage")).
		Run(func(ctx context.Context, image *entity.VendorImage) {
			orphanKey = image.ObjectKey
		}).
		Return(errors.New("connection reset"))

	stored, err := fx.service.UploadVendorImages(ctx, vendorID, uploads)

	assert.Error(t, err)
	assert.Empty(t, stored)

	exists, err := fx.bucket.Exists(ctx, orphanKey)
	require.NoError(t, err)
	assert.False(t, exists, "bucket object should be removed when the metadata write fails")
}

func TestImageService_ListVendorImages(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	images := []*entity.VendorImage{
		{ID: uuid.New(), VendorUserID: vendorID, CreatedAt: time.Now()},
	}

	fx.imageRepo.EXPECT().ListByVendor(ctx, vendorID).Return(images, nil)

	got, err := fx.service.ListVendorImages(ctx, vendorID)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestImageService_DeleteVendorImage_Success(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	vendorID := uuid.New()
	imageID := uuid.New()
	key := "vendor-images/" + vendorID.String() + "/" + imageID.String() + ".jpg"

	require.NoError(t, fx.bucket.WriteAll(ctx, key, []byte("jpeg bytes"), nil))

	fx.imageRepo.EXPECT().FindByID(ctx, imageID).Return(&entity.VendorImage{
		ID:           imageID,
		VendorUserID: vendorID,
		ObjectKey:    key,
	}, nil)
	fx.imageRepo.EXPECT().Delete(ctx, imageID).Return(nil)

	err := fx.service.DeleteVendorImage(ctx, vendorID, imageID)

	require.NoError(t, err)

	exists, err := fx.bucket.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestImageService_DeleteVendorImage_NotFound(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	imageID := uuid.New()

	fx.imageRepo.EXPECT().FindByID(ctx, imageID).Return(nil, repository.ErrImageNotFound)

	err := fx.service.DeleteVendorImage(ctx, uuid.New(), imageID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrImageNotFound))
}

func TestImageService_DeleteVendorImage_OtherVendorsImage(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	owner := uuid.New()
	imageID := uuid.New()
	key := "vendor-images/" + owner.String() + "/" + imageID.String() + ".jpg"

	require.NoError(t, fx.bucket.WriteAll(ctx, key, []byte("jpeg bytes"), nil))

	fx.imageRepo.EXPECT().FindByID(ctx, imageID).Return(&entity.VendorImage{
		ID:           imageID,
		VendorUserID: owner,
		ObjectKey:    key,
	}, nil)

	err := fx.service.DeleteVendorImage(ctx, uuid.New(), imageID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrImageOwnershipViolation))

	// The object stays untouched for its real owner.
	exists, err := fx.bucket.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, exists)
}
