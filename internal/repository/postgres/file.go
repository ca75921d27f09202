package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/kingrain94/vehicle-assess-api/internal/domain"
)

type FileRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewFileRepository(writerDB, readerDB *gorm.DB) *FileRepository {
	return &FileRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *FileRepository) Create(ctx context.Context, file *domain.File) error {
	return r.writerDB.WithContext(ctx).Create(file).Error
}

// GetByID is not tenant scoped. Callers compare the tenant themselves.
func (r *FileRepository) GetByID(ctx context.Context, id string) (*domain.File, error) {
	var file domain.File
	if err := r.readerDB.WithContext(ctx).First(&file, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *FileRepository) List(ctx context.Context, filter domain.FileFilter) ([]domain.File, error) {
	if filter.TenantID == "" {
		return nil, fmt.Errorf("tenant_id is required")
	}

	var files []domain.File
	db := r.readerDB.WithContext(ctx).Where("tenant_id = ?", filter.TenantID)
	if filter.BookingID != "" {
		db = db.Where("booking_id = ?", filter.BookingID)
	}
	if filter.Category != "" {
		db = db.Where("category = ?", filter.Category)
	}

	db = paginate(db, filter.Limit, filter.Offset).Order("created_at DESC")
	if err := db.Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

func (r *FileRepository) Delete(ctx context.Context, id string) error {
	return r.writerDB.WithContext(ctx).Delete(&domain.File{}, "id = ?", id).Error
}

func (r *FileRepository) Stats(ctx context.Context, tenantID string) (int64, int64, error) {
	var result struct {
		Count      int64
		TotalBytes int64
	}
	err := r.readerDB.WithContext(ctx).Model(&domain.File{}).
		Select("COUNT(*) AS count, COALESCE(SUM(size), 0) AS total_bytes").
		Where("tenant_id = ?", tenantID).
		Scan(&result).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get file stats: %w", err)
	}
	return result.Count, result.TotalBytes, nil
}
