package domain

type TenantPlan string

const (
	PlanFree TenantPlan = "free"
	PlanPro  TenantPlan = "pro"
)

type SubscriptionStatus string

const (
	SubscriptionNone      SubscriptionStatus = "none"
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

type Tenant struct {
	ID                 string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name               string `gorm:"type:text;not null" json:"name"`
	Slug               string `gorm:"type:text;uniqueIndex" json:"slug"`
	Plan               string `gorm:"type:text;not null;default:'free'" json:"plan"`
	SubscriptionStatus string `gorm:"type:text;not null;default:'none'" json:"subscription_status"`
	StripeCustomerID   string `gorm:"type:text" json:"stripe_customer_id,omitempty"`
	RateLimit          int    `gorm:"not null;default:1000" json:"rate_limit"`
	CreatedAt          int64  `gorm:"autoCreateTime:milli" json:"created_at"`
	UpdatedAt          int64  `gorm:"autoUpdateTime:milli" json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}

// DashboardStats is the tenant overview shown on the dashboard.
type DashboardStats struct {
	BookingCounts    map[BookingStatus]int64  `json:"booking_counts"`
	UpcomingBookings int64                    `json:"upcoming_bookings"`
	FileCount        int64                    `json:"file_count"`
	FileBytes        int64                    `json:"file_bytes"`
	AnalysisCounts   map[AnalysisStatus]int64 `json:"analysis_counts"`
}
