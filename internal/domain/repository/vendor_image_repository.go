package repository

import (
	"context"

	"eventsathi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrImageNotFound is returned when no image row matches the lookup.
var ErrImageNotFound = errors.New("image not found")

// VendorImageRepository defines persistence operations for vendor image metadata.
type VendorImageRepository interface {
	// Create persists metadata for an uploaded image.
	Create(ctx context.Context, image *entity.VendorImage) error

	// FindByID retrieves image metadata by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.VendorImage, error)

	// ListByVendor returns all images owned by a vendor, newest first.
	ListByVendor(ctx context.Context, vendorUserID uuid.UUID) ([]*entity.VendorImage, error)

	// Delete removes an image metadata row.
	Delete(ctx context.Context, id uuid.UUID) error
}
