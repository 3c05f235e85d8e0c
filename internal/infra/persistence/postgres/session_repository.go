package postgres

import (
	"context"

	"vintagecomics/internal/domain/entity"
	"vintagecomics/internal/domain/repository"
	"vintagecomics/internal/errors"
	"vintagecomics/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new instance of a session repository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func toSessionDomain(m *model.SessionModel) *entity.Session {
	return &entity.Session{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		TokenHash:  m.TokenHash,
		Email:      m.Email,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		ExpiresAt:  m.ExpiresAt,
		CreatedAt:  m.CreatedAt,
	}
}

func fromSessionDomain(s *entity.Session) *model.SessionModel {
	return &model.SessionModel{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		TokenHash:  s.TokenHash,
		Email:      s.Email,
		FirstName:  s.FirstName,
		LastName:   s.LastName,
		ExpiresAt:  s.ExpiresAt,
		CreatedAt:  s.CreatedAt,
	}
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	record := fromSessionDomain(session)
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return errors.Wrap(err, "failed to create session")
	}

	session.ID = record.ID
	session.CreatedAt = record.CreatedAt

	return nil
}

func (r *sessionRepository) FindByTokenHash(ctx context.Context, hash string) (*entity.Session, error) {
	var found model.SessionModel
	if err := r.db.WithContext(ctx).Where("token_hash = ?", hash).First(&found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by token hash")
	}

	return toSessionDomain(&found), nil
}

func (r *sessionRepository) DeleteByTokenHash(ctx context.Context, hash string) error {
	// Deleting an absent session is a no-op so logout stays idempotent.
	if err := r.db.WithContext(ctx).Where("token_hash = ?", hash).Delete(&model.SessionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete session by token hash")
	}

	return nil
}
