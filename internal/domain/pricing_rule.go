package domain

type PricingRule struct {
	ID              string  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID        string  `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Name            string  `gorm:"type:text;not null" json:"name"`
	ServiceType     string  `gorm:"type:text;not null" json:"service_type"`
	VehicleClass    string  `gorm:"type:text" json:"vehicle_class"`
	BasePriceCents  int64   `gorm:"not null;default:0" json:"base_price_cents"`
	HourlyRateCents int64   `gorm:"not null;default:0" json:"hourly_rate_cents"`
	Active          bool    `gorm:"not null;default:true" json:"active"`
	CreatedAt       int64   `gorm:"autoCreateTime:milli" json:"created_at"`
	UpdatedAt       int64   `gorm:"autoUpdateTime:milli" json:"updated_at"`
	Tenant          *Tenant `gorm:"foreignKey:TenantID" json:"-"`
}

func (PricingRule) TableName() string {
	return "pricing_rules"
}
