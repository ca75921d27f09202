package postgres

import (
	"context"

	"github.com/kingrain94/vehicle-assess-api/internal/utils"
	"gorm.io/gorm"
)

// getTenantScope returns a scoped database instance with tenant isolation
func getTenantScope(db *gorm.DB, ctx context.Context) (*gorm.DB, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return db.WithContext(ctx).Where("tenant_id = ?", tenantID), nil
}

// paginate applies limit/offset when set
func paginate(db *gorm.DB, limit, offset int) *gorm.DB {
	if limit > 0 {
		db = db.Limit(limit)
	}
	if offset > 0 {
		db = db.Offset(offset)
	}
	return db
}
