package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/vehicle-assess-api/internal/domain"
)

type TextStreamRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewTextStreamRepository(writerDB, readerDB *gorm.DB) *TextStreamRepository {
	return &TextStreamRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *TextStreamRepository) Create(ctx context.Context, stream *domain.TextStream) error {
	return r.writerDB.WithContext(ctx).Create(stream).Error
}

// GetByID reads from the writer: streams are polled while being written.
func (r *TextStreamRepository) GetByID(ctx context.Context, id string) (*domain.TextStream, error) {
	var stream domain.TextStream

	db, err := getTenantScope(r.writerDB, ctx)
	if err != nil {
		return nil, err
	}

	if err := db.First(&stream, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &stream, nil
}

func (r *TextStreamRepository) Update(ctx context.Context, stream *domain.TextStream) error {
	return r.writerDB.WithContext(ctx).Save(stream).Error
}
