package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kingrain94/vehicle-assess-api/internal/domain"
)

type NotificationPreferenceRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewNotificationPreferenceRepository(writerDB, readerDB *gorm.DB) *NotificationPreferenceRepository {
	return &NotificationPreferenceRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *NotificationPreferenceRepository) Get(ctx context.Context, tenantID, userID string) (*domain.NotificationPreference, error) {
	var pref domain.NotificationPreference
	err := r.readerDB.WithContext(ctx).
		First(&pref, "tenant_id = ? AND user_id = ?", tenantID, userID).Error
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// Upsert inserts the preference or overwrites the row for the same tenant and user.
func (r *NotificationPreferenceRepository) Upsert(ctx context.Context, pref *domain.NotificationPreference) error {
	return r.writerDB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tenant_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email_enabled", "sms_enabled", "booking_reminders",
			"analysis_updates", "reminder_lead_minutes", "updated_at",
		}),
	}).Create(pref).Error
}
