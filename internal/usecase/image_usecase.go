package usecase

import (
	"context"
	"io"

	"eventsathi/internal/domain/entity"

	"github.com/google/uuid"
)

// ImageUpload is one file from a multipart upload request.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// ImageUsecase defines vendor image storage operations. Bytes go to the
// object storage bucket; metadata rows go to the credential store database.
type ImageUsecase interface {
	// UploadVendorImages stores the uploaded files and records their metadata.
	UploadVendorImages(ctx context.Context, vendorUserID uuid.UUID, uploads []*ImageUpload) ([]*entity.VendorImage, error)

	// ListVendorImages returns the metadata for a vendor's images.
	ListVendorImages(ctx context.Context, vendorUserID uuid.UUID) ([]*entity.VendorImage, error)

	// DeleteVendorImage removes an image a vendor owns, bucket object first.
	DeleteVendorImage(ctx context.Context, vendorUserID, imageID uuid.UUID) error
}
