package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/vehicle-assess-api/internal/domain"
)

type SearchHistoryRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewSearchHistoryRepository(writerDB, readerDB *gorm.DB) *SearchHistoryRepository {
	return &SearchHistoryRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *SearchHistoryRepository) Create(ctx context.Context, entry *domain.SearchHistory) error {
	return r.writerDB.WithContext(ctx).Create(entry).Error
}

func (r *SearchHistoryRepository) List(ctx context.Context, tenantID, userID string, limit int) ([]domain.SearchHistory, error) {
	var entries []domain.SearchHistory
	db := r.readerDB.WithContext(ctx).Where("tenant_id = ? AND user_id = ?", tenantID, userID)
	db = paginate(db, limit, 0).Order("created_at DESC")
	if err := db.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *SearchHistoryRepository) DeleteByUser(ctx context.Context, tenantID, userID string) (int64, error) {
	result := r.writerDB.WithContext(ctx).
		Where("tenant_id = ? AND user_id = ?", tenantID, userID).
		Delete(&domain.SearchHistory{})
	return result.RowsAffected, result.Error
}

func (r *SearchHistoryRepository) DeleteBefore(ctx context.Context, tenantID string, beforeMillis int64) (int64, error) {
	result := r.writerDB.WithContext(ctx).
		Where("tenant_id = ? AND created_at < ?", tenantID, beforeMillis).
		Delete(&domain.SearchHistory{})
	return result.RowsAffected, result.Error
}
