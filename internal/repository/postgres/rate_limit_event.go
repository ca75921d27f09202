package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/vehicle-assess-api/internal/domain"
)

type RateLimitEventRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewRateLimitEventRepository(writerDB, readerDB *gorm.DB) *RateLimitEventRepository {
	return &RateLimitEventRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *RateLimitEventRepository) Create(ctx context.Context, event *domain.RateLimitEvent) error {
	return r.writerDB.WithContext(ctx).Create(event).Error
}

func (r *RateLimitEventRepository) List(ctx context.Context, tenantID string, limit int) ([]domain.RateLimitEvent, error) {
	var events []domain.RateLimitEvent
	db := r.readerDB.WithContext(ctx)
	if tenantID != "" {
		db = db.Where("tenant_id = ?", tenantID)
	}
	db = paginate(db, limit, 0).Order("created_at DESC")
	if err := db.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *RateLimitEventRepository) DeleteBefore(ctx context.Context, tenantID string, beforeMillis int64) (int64, error) {
	result := r.writerDB.WithContext(ctx).
		Where("tenant_id = ? AND created_at < ?", tenantID, beforeMillis).
		Delete(&domain.RateLimitEvent{})
	return result.RowsAffected, result.Error
}
