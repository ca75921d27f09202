package domain

type RateLimitScope string

const (
	RateLimitScopeTenant RateLimitScope = "tenant"
	RateLimitScopeGlobal RateLimitScope = "global"
)

// RateLimitEvent records a throttled request. It is written for reporting only.
type RateLimitEvent struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID  string `gorm:"type:text;index" json:"tenant_id"`
	Key       string `gorm:"type:text;not null" json:"key"`
	Scope     string `gorm:"type:text;not null" json:"scope"`
	Limit     int    `gorm:"not null" json:"limit"`
	Path      string `gorm:"type:text" json:"path"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;index" json:"created_at"`
}

func (RateLimitEvent) TableName() string {
	return "rate_limit_events"
}
