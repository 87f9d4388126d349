package postgres

import (
	"context"
	"encoding/json"

	"eventsathi/internal/domain/entity"
	domainerrors "eventsathi/internal/domain/errors"
	"eventsathi/internal/domain/repository"
	"eventsathi/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain's UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading the role profile.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("CustomerProfile").
		Preload("VendorProfile").
		First(&userM, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM)
}

// FindByEmail retrieves a single user by their email address, preloading the role profile.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("CustomerProfile").
		Preload("VendorProfile").
		First(&userM, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM)
}

// Create persists a new user entity, including its role profile. GORM's
// Create with associations inserts into users and customers or vendors in
// one statement batch.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM, err := fromUserDomain(user)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) || isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "user row violates schema constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity, including its role profile.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM, err := fromUserDomain(user)
	if err != nil {
		return err
	}

	err = repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(userM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// List returns all users with their role profiles, newest first.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var models []*model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("CustomerProfile").
		Preload("VendorProfile").
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(models))
	for _, userM := range models {
		user, err := toUserDomain(userM)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

// toUserDomain maps a persistence model back to a pure domain entity.
func toUserDomain(userM *model.UserModel) (*entity.User, error) {
	user := &entity.User{
		ID:           userM.ID,
		Email:        userM.Email,
		PasswordHash: userM.PasswordHash,
		Role:         entity.Role(userM.Role),
		CreatedAt:    userM.CreatedAt,
		UpdatedAt:    userM.UpdatedAt,
	}

	if userM.CustomerProfile != nil {
		user.CustomerProfile = &entity.CustomerProfile{
			UserID:    userM.CustomerProfile.UserID,
			Name:      userM.CustomerProfile.Name,
			Phone:     userM.CustomerProfile.Phone,
			Gender:    userM.CustomerProfile.Gender,
			CreatedAt: userM.CustomerProfile.CreatedAt,
			UpdatedAt: userM.CustomerProfile.UpdatedAt,
		}
	}

	if userM.VendorProfile != nil {
		var categories []string
		if len(userM.VendorProfile.Categories) > 0 {
			if err := json.Unmarshal(userM.VendorProfile.Categories, &categories); err != nil {
				return nil, errors.Wrap(err, "failed to decode vendor categories")
			}
		}

		user.VendorProfile = &entity.VendorProfile{
			UserID:       userM.VendorProfile.UserID,
			VendorName:   userM.VendorProfile.VendorName,
			BusinessName: userM.VendorProfile.BusinessName,
			Phone:        userM.VendorProfile.Phone,
			PAN:          userM.VendorProfile.PAN,
			Aadhaar:      userM.VendorProfile.Aadhaar,
			GST:          userM.VendorProfile.GST,
			Categories:   categories,
			Address:      userM.VendorProfile.Address,
			CreatedAt:    userM.VendorProfile.CreatedAt,
			UpdatedAt:    userM.VendorProfile.UpdatedAt,
		}
	}

	return user, nil
}

// fromUserDomain maps a pure domain entity to a GORM persistence model.
func fromUserDomain(user *entity.User) (*model.UserModel, error) {
	userM := &model.UserModel{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role.String(),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	if user.CustomerProfile != nil {
		userM.CustomerProfile = &model.CustomerProfileModel{
			UserID: user.ID,
			Name:   user.CustomerProfile.Name,
			Phone:  user.CustomerProfile.Phone,
			Gender: user.CustomerProfile.Gender,
		}
	}

	if user.VendorProfile != nil {
		categories := user.VendorProfile.Categories
		if categories == nil {
			categories = []string{}
		}
		encoded, err := json.Marshal(categories)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode vendor categories")
		}

		userM.VendorProfile = &model.VendorProfileModel{
			UserID:       user.ID,
			VendorName:   user.VendorProfile.VendorName,
			BusinessName: user.VendorProfile.BusinessName,
			Phone:        user.VendorProfile.Phone,
			PAN:          user.VendorProfile.PAN,
			Aadhaar:      user.VendorProfile.Aadhaar,
			GST:          user.VendorProfile.GST,
			Categories:   encoded,
			Address:      user.VendorProfile.Address,
		}
	}

	return userM, nil
}
