package dto

import "github.com/kingrain94/vehicle-assess-api/internal/domain"

// TenantResponse represents a tenant
type TenantResponse struct {
	ID                 string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name               string `json:"name" example:"Downtown Auto"`
	Slug               string `json:"slug" example:"downtownauto"`
	Plan               string `json:"plan" example:"free"`
	SubscriptionStatus string `json:"subscription_status" example:"none"`
	RateLimit          int    `json:"rate_limit" example:"1000"`
	CreatedAt          int64  `json:"created_at" example:"1752787248000"`
	UpdatedAt          int64  `json:"updated_at" example:"1752787248000"`
}

// DashboardResponse is the tenant overview
type DashboardResponse struct {
	BookingCounts     map[string]int64 `json:"booking_counts"`
	UpcomingBookings  int64            `json:"upcoming_bookings" example:"4"`
	FileCount         int64            `json:"file_count" example:"12"`
	FileBytes         int64            `json:"file_bytes" example:"1536"`
	FileSizeFormatted string           `json:"file_size_formatted" example:"1.5 KB"`
	AnalysisCounts    map[string]int64 `json:"analysis_counts"`
}

// SuccessResponse is returned by handlers that report an outcome flag
type SuccessResponse struct {
	Success bool   `json:"success" example:"true"`
	Error   string `json:"error,omitempty" example:""`
}

type UserResponse struct {
	ID        string   `json:"id"`
	TenantID  string   `json:"tenant_id"`
	Email     string   `json:"email"`
	Name      string   `json:"name"`
	Roles     []string `json:"roles"`
	CreatedAt int64    `json:"created_at"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at" example:"1752787248000"`
}

type FileResponse struct {
	ID            string  `json:"id"`
	TenantID      string  `json:"tenant_id"`
	BookingID     *string `json:"booking_id,omitempty"`
	FileName      string  `json:"file_name" example:"front.jpg"`
	ContentType   string  `json:"content_type" example:"image/jpeg"`
	Size          int64   `json:"size" example:"1536"`
	SizeFormatted string  `json:"size_formatted" example:"1.5 KB"`
	Category      string  `json:"category" example:"vehicle_photo"`
	CreatedAt     int64   `json:"created_at"`
}

// FileURLResponse carries a presigned download URL, or null when none could be issued
type FileURLResponse struct {
	URL *string `json:"url"`
}

type BookingResponse struct {
	ID              string  `json:"id"`
	TenantID        string  `json:"tenant_id"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email,omitempty"`
	CustomerPhone   string  `json:"customer_phone,omitempty"`
	VehicleMake     string  `json:"vehicle_make,omitempty"`
	VehicleModel    string  `json:"vehicle_model,omitempty"`
	VehicleYear     int     `json:"vehicle_year,omitempty"`
	VehicleVIN      string  `json:"vehicle_vin,omitempty"`
	ServiceType     string  `json:"service_type"`
	StartTime       int64   `json:"start_time"`
	EndTime         int64   `json:"end_time"`
	Status          string  `json:"status"`
	Notes           string  `json:"notes,omitempty"`
	PriceCents      int64   `json:"price_cents"`
	CalendarEventID *string `json:"calendar_event_id,omitempty"`
	CreatedAt       int64   `json:"created_at"`
	UpdatedAt       int64   `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

type AvailabilityResponse struct {
	StartTime int64             `json:"start_time"`
	EndTime   int64             `json:"end_time"`
	Busy      []domain.TimeSlot `json:"busy"`
}

type BookingSearchResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int64             `json:"total"`
}

// NotificationPreferenceResponse has a null id until the user saves preferences
type NotificationPreferenceResponse struct {
	ID                  *string `json:"id"`
	UserID              string  `json:"user_id"`
	EmailEnabled        bool    `json:"email_enabled"`
	SMSEnabled          bool    `json:"sms_enabled"`
	BookingReminders    bool    `json:"booking_reminders"`
	AnalysisUpdates     bool    `json:"analysis_updates"`
	ReminderLeadMinutes int     `json:"reminder_lead_minutes"`
}

// TextStreamEvent is published on every text stream change
type TextStreamEvent struct {
	StreamID  string `json:"stream_id"`
	TenantID  string `json:"tenant_id"`
	Status    string `json:"status"`
	Chunk     string `json:"chunk,omitempty"`
	Error     string `json:"error,omitempty"`
	UpdatedAt int64  `json:"updated_at"`
}

type AnalysisResponse struct {
	ID             string           `json:"id"`
	BookingID      *string          `json:"booking_id,omitempty"`
	VehicleInfo    string           `json:"vehicle_info"`
	FileIDs        []string         `json:"file_ids"`
	Status         string           `json:"status"`
	Summary        string           `json:"summary,omitempty"`
	ConditionScore *int             `json:"condition_score,omitempty"`
	Findings       []domain.Finding `json:"findings,omitempty"`
	Model          string           `json:"model,omitempty"`
	StreamID       string           `json:"stream_id"`
	Error          string           `json:"error,omitempty"`
	CreatedAt      int64            `json:"created_at"`
	UpdatedAt      int64            `json:"updated_at"`
}

type SimilarAnalysisResponse struct {
	Analysis AnalysisResponse `json:"analysis"`
	Score    float64          `json:"score" example:"0.92"`
}

type ChatMessageResponse struct {
	Role    string `json:"role" example:"assistant"`
	Content string `json:"content"`
}

type ChatResponse struct {
	Message ChatMessageResponse `json:"message"`
	Model   string              `json:"model,omitempty"`
}

type StripeWebhookResponse struct {
	Received bool `json:"received" example:"true"`
}

type CleanupResponse struct {
	Message    string `json:"message" example:"Cleanup scheduled"`
	BeforeDate int64  `json:"before_date" example:"1752787248000"`
}
