package postgres

import (
	"context"
	"time"

	"eventsathi/internal/domain/entity"
	domainerrors "eventsathi/internal/domain/errors"
	"eventsathi/internal/domain/repository"
	"eventsathi/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the domain's SessionRepository interface using GORM.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Create persists a new session row.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindByID retrieves a session by its ID.
func (repo *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var sessionM model.SessionModel
	if err := repo.db.WithContext(ctx).First(&sessionM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by id")
	}

	return toSessionDomain(&sessionM), nil
}

// FindByTokenHash retrieves a session by the hash of its refresh token.
func (repo *sessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	var sessionM model.SessionModel
	if err := repo.db.WithContext(ctx).First(&sessionM, "token_hash = ?", tokenHash).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by token hash")
	}

	return toSessionDomain(&sessionM), nil
}

// Delete removes a session row. Deleting a session that does not exist is
// not an error.
func (repo *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.SessionModel{}, "id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete session")
	}

	return nil
}

// DeleteByUserID removes every session belonging to a user.
func (repo *sessionRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.SessionModel{}, "user_id = ?", userID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete sessions for user")
	}

	return nil
}

// DeleteExpired removes sessions whose expiry is in the past and returns
// how many rows were removed.
func (repo *sessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).Delete(&model.SessionModel{}, "expires_at < ?", time.Now())
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired sessions")
	}

	return result.RowsAffected, nil
}

func toSessionDomain(sessionM *model.SessionModel) *entity.Session {
	return &entity.Session{
		ID:            sessionM.ID,
		UserID:        sessionM.UserID,
		Email:         sessionM.Email,
		Role:          entity.Role(sessionM.Role),
		TokenHash:     sessionM.TokenHash,
		ProviderToken: sessionM.ProviderToken,
		ExpiresAt:     sessionM.ExpiresAt,
		CreatedAt:     sessionM.CreatedAt,
	}
}

func fromSessionDomain(session *entity.Session) *model.SessionModel {
	return &model.SessionModel{
		ID:            session.ID,
		UserID:        session.UserID,
		Email:         session.Email,
		Role:          session.Role.String(),
		TokenHash:     session.TokenHash,
		ProviderToken: session.ProviderToken,
		ExpiresAt:     session.ExpiresAt,
		CreatedAt:     session.CreatedAt,
	}
}
