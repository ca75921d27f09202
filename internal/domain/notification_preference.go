package domain

const DefaultReminderLeadMinutes = 60

type NotificationPreference struct {
	ID                  string  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID            string  `gorm:"type:uuid;not null;uniqueIndex:ux_notification_prefs_tenant_user,priority:1" json:"tenant_id"`
	UserID              string  `gorm:"type:uuid;not null;uniqueIndex:ux_notification_prefs_tenant_user,priority:2" json:"user_id"`
	EmailEnabled        bool    `gorm:"not null;default:true" json:"email_enabled"`
	SMSEnabled          bool    `gorm:"not null;default:false" json:"sms_enabled"`
	BookingReminders    bool    `gorm:"not null;default:true" json:"booking_reminders"`
	AnalysisUpdates     bool    `gorm:"not null;default:true" json:"analysis_updates"`
	ReminderLeadMinutes int     `gorm:"not null;default:60" json:"reminder_lead_minutes"`
	CreatedAt           int64   `gorm:"autoCreateTime:milli" json:"created_at"`
	UpdatedAt           int64   `gorm:"autoUpdateTime:milli" json:"updated_at"`
	Tenant              *Tenant `gorm:"foreignKey:TenantID" json:"-"`
}

func (NotificationPreference) TableName() string {
	return "notification_preferences"
}

// DefaultNotificationPreference is returned when a user has not saved any preferences yet.
func DefaultNotificationPreference(tenantID, userID string) *NotificationPreference {
	return &NotificationPreference{
		TenantID:            tenantID,
		UserID:              userID,
		EmailEnabled:        true,
		BookingReminders:    true,
		AnalysisUpdates:     true,
		ReminderLeadMinutes: DefaultReminderLeadMinutes,
	}
}
