package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/vehicle-assess-api/internal/domain"
)

type EmbeddingRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewEmbeddingRepository(writerDB, readerDB *gorm.DB) *EmbeddingRepository {
	return &EmbeddingRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *EmbeddingRepository) Create(ctx context.Context, embedding *domain.Embedding) error {
	return r.writerDB.WithContext(ctx).Create(embedding).Error
}

func (r *EmbeddingRepository) ListBySource(ctx context.Context, tenantID, sourceType string) ([]domain.Embedding, error) {
	var embeddings []domain.Embedding
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ? AND source_type = ?", tenantID, sourceType).
		Find(&embeddings).Error
	if err != nil {
		return nil, err
	}
	return embeddings, nil
}
