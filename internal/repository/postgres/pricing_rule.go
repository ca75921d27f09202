package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/vehicle-assess-api/internal/domain"
)

type PricingRuleRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewPricingRuleRepository(writerDB, readerDB *gorm.DB) *PricingRuleRepository {
	return &PricingRuleRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *PricingRuleRepository) Create(ctx context.Context, rule *domain.PricingRule) error {
	return r.writerDB.WithContext(ctx).Create(rule).Error
}

func (r *PricingRuleRepository) GetByID(ctx context.Context, id string) (*domain.PricingRule, error) {
	var rule domain.PricingRule

	db, err := getTenantScope(r.readerDB, ctx)
	if err != nil {
		return nil, err
	}

	if err := db.First(&rule, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *PricingRuleRepository) List(ctx context.Context, tenantID string, activeOnly bool) ([]domain.PricingRule, error) {
	var rules []domain.PricingRule
	db := r.readerDB.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if activeOnly {
		db = db.Where("active = ?", true)
	}
	if err := db.Order("service_type ASC, name ASC").Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *PricingRuleRepository) Update(ctx context.Context, rule *domain.PricingRule) error {
	return r.writerDB.WithContext(ctx).Save(rule).Error
}

func (r *PricingRuleRepository) Delete(ctx context.Context, id string) (int64, error) {
	db, err := getTenantScope(r.writerDB, ctx)
	if err != nil {
		return 0, err
	}
	result := db.Delete(&domain.PricingRule{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
