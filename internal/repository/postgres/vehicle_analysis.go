package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/kingrain94/vehicle-assess-api/internal/domain"
)

type VehicleAnalysisRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewVehicleAnalysisRepository(writerDB, readerDB *gorm.DB) *VehicleAnalysisRepository {
	return &VehicleAnalysisRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *VehicleAnalysisRepository) Create(ctx context.Context, analysis *domain.VehicleAnalysis) error {
	return r.writerDB.WithContext(ctx).Create(analysis).Error
}

func (r *VehicleAnalysisRepository) GetByID(ctx context.Context, id string) (*domain.VehicleAnalysis, error) {
	var analysis domain.VehicleAnalysis

	db, err := getTenantScope(r.writerDB, ctx)
	if err != nil {
		return nil, err
	}

	if err := db.First(&analysis, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (r *VehicleAnalysisRepository) GetByIDs(ctx context.Context, tenantID string, ids []string) ([]domain.VehicleAnalysis, error) {
	if len(ids) == 0 {
		return []domain.VehicleAnalysis{}, nil
	}
	var analyses []domain.VehicleAnalysis
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ? AND id IN ?", tenantID, ids).
		Find(&analyses).Error
	if err != nil {
		return nil, err
	}
	return analyses, nil
}

func (r *VehicleAnalysisRepository) List(ctx context.Context, tenantID string, limit, offset int) ([]domain.VehicleAnalysis, error) {
	var analyses []domain.VehicleAnalysis
	db := r.readerDB.WithContext(ctx).Where("tenant_id = ?", tenantID)
	db = paginate(db, limit, offset).Order("created_at DESC")
	if err := db.Find(&analyses).Error; err != nil {
		return nil, err
	}
	return analyses, nil
}

func (r *VehicleAnalysisRepository) Patch(ctx context.Context, id string, updates map[string]any) (int64, error) {
	result := r.writerDB.WithContext(ctx).Model(&domain.VehicleAnalysis{}).Where("id = ?", id).Updates(updates)
	return result.RowsAffected, result.Error
}

// Update saves the whole record so the json columns go through their serializer
func (r *VehicleAnalysisRepository) Update(ctx context.Context, analysis *domain.VehicleAnalysis) error {
	return r.writerDB.WithContext(ctx).Save(analysis).Error
}

func (r *VehicleAnalysisRepository) CountByStatus(ctx context.Context, tenantID string) (map[domain.AnalysisStatus]int64, error) {
	type countResult struct {
		Status string
		Count  int64
	}
	var results []countResult

	err := r.readerDB.WithContext(ctx).Model(&domain.VehicleAnalysis{}).
		Select("status, COUNT(*) AS count").
		Where("tenant_id = ?", tenantID).
		Group("status").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count analyses by status: %w", err)
	}

	counts := make(map[domain.AnalysisStatus]int64, len(results))
	for _, res := range results {
		counts[domain.AnalysisStatus(res.Status)] = res.Count
	}
	return counts, nil
}
