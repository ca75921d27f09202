package domain

type SearchHistory struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID    string `gorm:"type:uuid;not null;index:idx_search_history_tenant_user,priority:1" json:"tenant_id"`
	UserID      string `gorm:"type:uuid;not null;index:idx_search_history_tenant_user,priority:2" json:"user_id"`
	Query       string `gorm:"type:text;not null" json:"query"`
	Kind        string `gorm:"type:text;not null;default:'bookings'" json:"kind"`
	ResultCount int    `gorm:"not null;default:0" json:"result_count"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli" json:"created_at"`
}

func (SearchHistory) TableName() string {
	return "search_history"
}

// BookingSearchFilter is a full-text search over a tenant's booking index.
type BookingSearchFilter struct {
	TenantID string `json:"tenant_id"`
	Query    string `json:"query"`
	Status   string `json:"status"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}
