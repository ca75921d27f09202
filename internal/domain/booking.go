package domain

import "slices"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

var ValidBookingStatuses = []BookingStatus{BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted}

func IsValidBookingStatus(status string) bool {
	return slices.Contains(ValidBookingStatuses, BookingStatus(status))
}

// Booking is a customer appointment for a vehicle assessment. StartTime and
// EndTime are epoch milliseconds.
type Booking struct {
	ID              string  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID        string  `gorm:"type:uuid;not null;index:idx_bookings_tenant_start,priority:1" json:"tenant_id"`
	CustomerName    string  `gorm:"type:text;not null" json:"customer_name"`
	CustomerEmail   string  `gorm:"type:text" json:"customer_email"`
	CustomerPhone   string  `gorm:"type:text" json:"customer_phone"`
	VehicleMake     string  `gorm:"type:text" json:"vehicle_make"`
	VehicleModel    string  `gorm:"type:text" json:"vehicle_model"`
	VehicleYear     int     `json:"vehicle_year"`
	VehicleVIN      string  `gorm:"type:text" json:"vehicle_vin"`
	ServiceType     string  `gorm:"type:text;not null" json:"service_type"`
	StartTime       int64   `gorm:"not null;index:idx_bookings_tenant_start,priority:2" json:"start_time"`
	EndTime         int64   `gorm:"not null" json:"end_time"`
	Status          string  `gorm:"type:text;not null;default:'pending'" json:"status"`
	Notes           string  `gorm:"type:text" json:"notes"`
	PriceCents      int64   `gorm:"not null;default:0" json:"price_cents"`
	CalendarEventID *string `gorm:"type:text;uniqueIndex" json:"calendar_event_id,omitempty"`
	CreatedAt       int64   `gorm:"autoCreateTime:milli" json:"created_at"`
	UpdatedAt       int64   `gorm:"autoUpdateTime:milli" json:"updated_at"`
	Tenant          *Tenant `gorm:"foreignKey:TenantID" json:"-"`
}

func (Booking) TableName() string {
	return "bookings"
}

type BookingFilter struct {
	TenantID  string `json:"tenant_id"`
	Status    string `json:"status"`
	StartTime int64  `json:"start_time"`
	EndTime   int64  `json:"end_time"`
	Page      int    `json:"page"`
	PageSize  int    `json:"page_size"`
	Limit     int    `json:"limit"`
	Offset    int    `json:"offset"`
}

// TimeSlot is a busy interval in epoch milliseconds.
type TimeSlot struct {
	BookingID string `json:"booking_id"`
	StartTime int64  `json:"start_time"`
	EndTime   int64  `json:"end_time"`
	Status    string `json:"status"`
}
