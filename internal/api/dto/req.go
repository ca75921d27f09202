package dto

type CreateTenantRequest struct {
	Name string `json:"name" binding:"required" example:"Downtown Auto"`
	Slug string `json:"slug" binding:"omitempty,alphanum" example:"downtownauto"`
}

type UpdateTenantRequest struct {
	Name      string `json:"name" example:"Downtown Auto"`
	Plan      string `json:"plan" binding:"omitempty,oneof=free pro" example:"pro"`
	RateLimit int    `json:"rate_limit" binding:"omitempty,min=1" example:"1000"`
}

// LogoutRequest carries the session token when it is not sent as a cookie
type LogoutRequest struct {
	Token string `json:"token" example:"4b0a9f0e-..."`
}

type CreateBookingRequest struct {
	CustomerName  string `json:"customer_name" binding:"required" example:"Ada Lovelace"`
	CustomerEmail string `json:"customer_email" binding:"omitempty,email" example:"ada@example.com"`
	CustomerPhone string `json:"customer_phone" example:"+1 555 0100"`
	VehicleMake   string `json:"vehicle_make" example:"Honda"`
	VehicleModel  string `json:"vehicle_model" example:"Civic"`
	VehicleYear   int    `json:"vehicle_year" binding:"omitempty,min=1900,max=2100" example:"2019"`
	VehicleVIN    string `json:"vehicle_vin" binding:"omitempty,len=17" example:"1HGBH41JXMN109186"`
	ServiceType   string `json:"service_type" binding:"required" example:"pre_purchase_inspection"`
	StartTime     string `json:"start_time" binding:"required" example:"2025-07-17T09:00:00Z"`
	EndTime       string `json:"end_time" binding:"required" example:"2025-07-17T10:00:00Z"`
	Notes         string `json:"notes" example:"Customer reports a rattle at idle"`
	PriceCents    int64  `json:"price_cents" binding:"omitempty,min=0" example:"12900"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,booking_status" example:"confirmed"`
}

// CalendarWebhookRequest is the callback sent by the calendar provider
type CalendarWebhookRequest struct {
	Type  string        `json:"type" binding:"required" example:"event.deleted"`
	Event CalendarEvent `json:"event"`
}

type CalendarEvent struct {
	ID       string            `json:"id" example:"evt_123"`
	Start    string            `json:"start" example:"2025-07-17T09:00:00Z"`
	End      string            `json:"end" example:"2025-07-17T10:00:00Z"`
	Status   string            `json:"status" example:"confirmed"`
	Metadata map[string]string `json:"metadata"`
}

type CreatePricingRuleRequest struct {
	Name            string `json:"name" binding:"required" example:"Standard inspection"`
	ServiceType     string `json:"service_type" binding:"required" example:"pre_purchase_inspection"`
	VehicleClass    string `json:"vehicle_class" example:"sedan"`
	BasePriceCents  int64  `json:"base_price_cents" binding:"min=0" example:"9900"`
	HourlyRateCents int64  `json:"hourly_rate_cents" binding:"min=0" example:"4500"`
	Active          *bool  `json:"active" example:"true"`
}

type UpdatePricingRuleRequest struct {
	Name            *string `json:"name" example:"Standard inspection"`
	ServiceType     *string `json:"service_type" example:"pre_purchase_inspection"`
	VehicleClass    *string `json:"vehicle_class" example:"sedan"`
	BasePriceCents  *int64  `json:"base_price_cents" binding:"omitempty,min=0" example:"9900"`
	HourlyRateCents *int64  `json:"hourly_rate_cents" binding:"omitempty,min=0" example:"4500"`
	Active          *bool   `json:"active" example:"true"`
}

type UpdateNotificationPreferenceRequest struct {
	EmailEnabled        bool `json:"email_enabled" example:"true"`
	SMSEnabled          bool `json:"sms_enabled" example:"false"`
	BookingReminders    bool `json:"booking_reminders" example:"true"`
	AnalysisUpdates     bool `json:"analysis_updates" example:"true"`
	ReminderLeadMinutes int  `json:"reminder_lead_minutes" binding:"min=0,max=10080" example:"60"`
}

type CreateAnalysisRequest struct {
	BookingID   string   `json:"booking_id" binding:"omitempty,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	VehicleInfo string   `json:"vehicle_info" binding:"required" example:"2019 Honda Civic, 48k miles"`
	FileIDs     []string `json:"file_ids" binding:"omitempty,dive,uuid"`
}

type SimilarAnalysisRequest struct {
	Query string `json:"query" binding:"required" example:"rust on rear quarter panel"`
	Limit int    `json:"limit" binding:"omitempty,min=1,max=50" example:"5"`
}

type ChatMessageRequest struct {
	Role    string `json:"role" binding:"required,chat_role" example:"user"`
	Content string `json:"content" example:"What should I check on a used Civic?"`
}

type ChatRequest struct {
	Messages []ChatMessageRequest `json:"messages" binding:"required,min=1,dive"`
}

// StripeEvent is the subset of a Stripe webhook event the API reads
type StripeEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object StripeObject `json:"object"`
	} `json:"data"`
}

type StripeObject struct {
	ID       string            `json:"id"`
	Customer string            `json:"customer"`
	Metadata map[string]string `json:"metadata"`
}
