package impl

import (
	"context"
	"log/slog"

	deliverycontext "eventsathi/internal/delivery/context"
	"eventsathi/internal/domain/entity"
	domainerrors "eventsathi/internal/domain/errors"
	"eventsathi/internal/domain/repository"
	"eventsathi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCustomerProfile returns the customer profile for a user.
func (srv *profileService) GetCustomerProfile(ctx context.Context, userID uuid.UUID) (*entity.CustomerProfile, error) {
	user, err := srv.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.CustomerProfile == nil {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "user has no customer profile")
	}

	return user.CustomerProfile, nil
}

// UpdateCustomerProfile applies the given changes to a customer profile.
func (srv *profileService) UpdateCustomerProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateCustomerProfileInput) (*entity.CustomerProfile, error) {
	user, err := srv.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.CustomerProfile == nil {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "user has no customer profile")
	}

	if input.Name != nil {
		user.CustomerProfile.Name = *input.Name
	}
	if input.Phone != nil {
		user.CustomerProfile.Phone = *input.Phone
	}
	if input.Gender != nil {
		user.CustomerProfile.Gender = *input.Gender
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to update customer profile", slog.Any("user_id", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update customer profile")
	}

	srv.log(ctx).Debug("Customer profile updated", slog.Any("user_id", userID))

	return user.CustomerProfile, nil
}

// GetVendorProfile returns the vendor profile for a user.
func (srv *profileService) GetVendorProfile(ctx context.Context, userID uuid.UUID) (*entity.VendorProfile, error) {
	user, err := srv.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.VendorProfile == nil {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "user has no vendor profile")
	}

	return user.VendorProfile, nil
}

// UpdateVendorProfile applies the given changes to a vendor profile. PAN and
// Aadhaar are identity documents collected once at sign-up and stay fixed.
func (srv *profileService) UpdateVendorProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateVendorProfileInput) (*entity.VendorProfile, error) {
	user, err := srv.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.VendorProfile == nil {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "user has no vendor profile")
	}

	if input.VendorName != nil {
		user.VendorProfile.VendorName = *input.VendorName
	}
	if input.BusinessName != nil {
		user.VendorProfile.BusinessName = *input.BusinessName
	}
	if input.Phone != nil {
		user.VendorProfile.Phone = *input.Phone
	}
	if input.GST != nil {
		user.VendorProfile.GST = *input.GST
	}
	if input.Categories != nil {
		user.VendorProfile.Categories = dedupeCategories(input.Categories)
	}
	if input.Address != nil {
		user.VendorProfile.Address = *input.Address
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to update vendor profile", slog.Any("user_id", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update vendor profile")
	}

	srv.log(ctx).Debug("Vendor profile updated", slog.Any("user_id", userID))

	return user.VendorProfile, nil
}

// ListUsers returns all users for the admin console.
func (srv *profileService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *profileService) loadUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
