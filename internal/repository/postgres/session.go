package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/vehicle-assess-api/internal/domain"
)

type SessionRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewSessionRepository(writerDB, readerDB *gorm.DB) *SessionRepository {
	return &SessionRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	return r.writerDB.WithContext(ctx).Create(session).Error
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	var session domain.Session
	if err := r.writerDB.WithContext(ctx).First(&session, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	var session domain.Session
	if err := r.writerDB.WithContext(ctx).First(&session, "token = ?", token).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) (int64, error) {
	result := r.writerDB.WithContext(ctx).Where("token = ?", token).Delete(&domain.Session{})
	return result.RowsAffected, result.Error
}

func (r *SessionRepository) DeleteExpired(ctx context.Context, tenantID string, beforeMillis int64) (int64, error) {
	result := r.writerDB.WithContext(ctx).
		Where("tenant_id = ? AND expires_at < ?", tenantID, beforeMillis).
		Delete(&domain.Session{})
	return result.RowsAffected, result.Error
}
