package postgres

import (
	"context"

	"eventsathi/internal/domain/entity"
	domainerrors "eventsathi/internal/domain/errors"
	"eventsathi/internal/domain/repository"
	"eventsathi/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// vendorImageRepository implements the domain's VendorImageRepository interface using GORM.
type vendorImageRepository struct {
	db *gorm.DB
}

// NewVendorImageRepository is the constructor for vendorImageRepository.
func NewVendorImageRepository(db *gorm.DB) repository.VendorImageRepository {
	return &vendorImageRepository{db: db}
}

// Create persists metadata for an uploaded image.
func (repo *vendorImageRepository) Create(ctx context.Context, image *entity.VendorImage) error {
	imageM := fromVendorImageDomain(image)

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create vendor image")
	}

	image.CreatedAt = imageM.CreatedAt

	return nil
}

// FindByID retrieves image metadata by ID.
func (repo *vendorImageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.VendorImage, error) {
	var imageM model.VendorImageModel
	if err := repo.db.WithContext(ctx).First(&imageM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor image by id")
	}

	return toVendorImageDomain(&imageM), nil
}

// ListByVendor returns all images owned by a vendor, newest first.
func (repo *vendorImageRepository) ListByVendor(ctx context.Context, vendorUserID uuid.UUID) ([]*entity.VendorImage, error) {
	var models []*model.VendorImageModel
	err := repo.db.WithContext(ctx).
		Where("vendor_user_id = ?", vendorUserID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendor images")
	}

	images := make([]*entity.VendorImage, 0, len(models))
	for _, imageM := range models {
		images = append(images, toVendorImageDomain(imageM))
	}

	return images, nil
}

// Delete removes an image metadata row.
func (repo *vendorImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.VendorImageModel{}, "id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete vendor image")
	}

	return nil
}

func toVendorImageDomain(imageM *model.VendorImageModel) *entity.VendorImage {
	return &entity.VendorImage{
		ID:           imageM.ID,
		VendorUserID: imageM.VendorUserID,
		ObjectKey:    imageM.ObjectKey,
		URL:          imageM.URL,
		ContentType:  imageM.ContentType,
		SizeBytes:    imageM.SizeBytes,
		CreatedAt:    imageM.CreatedAt,
	}
}

func fromVendorImageDomain(image *entity.VendorImage) *model.VendorImageModel {
	return &model.VendorImageModel{
		ID:           image.ID,
		VendorUserID: image.VendorUserID,
		ObjectKey:    image.ObjectKey,
		URL:          image.URL,
		ContentType:  image.ContentType,
		SizeBytes:    image.SizeBytes,
		CreatedAt:    image.CreatedAt,
	}
}
