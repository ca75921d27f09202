package domain

type User struct {
	ID         string   `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID   string   `gorm:"type:uuid;not null;index" json:"tenant_id"`
	ExternalID string   `gorm:"type:text;uniqueIndex" json:"external_id"`
	Email      string   `gorm:"type:text;not null;unique" json:"email"`
	Name       string   `gorm:"type:text;not null" json:"name"`
	Roles      []string `gorm:"type:jsonb;serializer:json;not null" json:"roles"`
	Active     bool     `gorm:"not null;default:true" json:"active"`
	CreatedAt  int64    `gorm:"autoCreateTime:milli" json:"created_at"`
	UpdatedAt  int64    `gorm:"autoUpdateTime:milli" json:"updated_at"`
	Tenant     *Tenant  `gorm:"foreignKey:TenantID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
