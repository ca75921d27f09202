package dto

import (
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/pkg/utils"
)

func FromTenant(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		ID:                 t.ID,
		Name:               t.Name,
		Slug:               t.Slug,
		Plan:               t.Plan,
		SubscriptionStatus: t.SubscriptionStatus,
		RateLimit:          t.RateLimit,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

func FromDashboardStats(stats *domain.DashboardStats) DashboardResponse {
	resp := DashboardResponse{
		BookingCounts:     make(map[string]int64, len(stats.BookingCounts)),
		UpcomingBookings:  stats.UpcomingBookings,
		FileCount:         stats.FileCount,
		FileBytes:         stats.FileBytes,
		FileSizeFormatted: utils.FormatFileSize(stats.FileBytes),
		AnalysisCounts:    make(map[string]int64, len(stats.AnalysisCounts)),
	}
	for status, count := range stats.BookingCounts {
		resp.BookingCounts[string(status)] = count
	}
	for status, count := range stats.AnalysisCounts {
		resp.AnalysisCounts[string(status)] = count
	}
	return resp
}

func FromUser(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		TenantID:  u.TenantID,
		Email:     u.Email,
		Name:      u.Name,
		Roles:     u.Roles,
		CreatedAt: u.CreatedAt,
	}
}

func FromFile(f *domain.File) FileResponse {
	return FileResponse{
		ID:            f.ID,
		TenantID:      f.TenantID,
		BookingID:     f.BookingID,
		FileName:      f.FileName,
		ContentType:   f.ContentType,
		Size:          f.Size,
		SizeFormatted: utils.FormatFileSize(f.Size),
		Category:      f.Category,
		CreatedAt:     f.CreatedAt,
	}
}

func FromFiles(files []domain.File) []FileResponse {
	responses := make([]FileResponse, len(files))
	for i := range files {
		responses[i] = FromFile(&files[i])
	}
	return responses
}

// ToBooking converts the request; times must already be parsed to epoch milliseconds.
func (r *CreateBookingRequest) ToBooking(tenantID string, startMillis, endMillis int64) *domain.Booking {
	return &domain.Booking{
		TenantID:      tenantID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		VehicleMake:   r.VehicleMake,
		VehicleModel:  r.VehicleModel,
		VehicleYear:   r.VehicleYear,
		VehicleVIN:    r.VehicleVIN,
		ServiceType:   r.ServiceType,
		StartTime:     startMillis,
		EndTime:       endMillis,
		Status:        string(domain.BookingPending),
		Notes:         r.Notes,
		PriceCents:    r.PriceCents,
	}
}

func FromBooking(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		TenantID:        b.TenantID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		VehicleMake:     b.VehicleMake,
		VehicleModel:    b.VehicleModel,
		VehicleYear:     b.VehicleYear,
		VehicleVIN:      b.VehicleVIN,
		ServiceType:     b.ServiceType,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		Status:          b.Status,
		Notes:           b.Notes,
		PriceCents:      b.PriceCents,
		CalendarEventID: b.CalendarEventID,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func FromBookings(bookings []domain.Booking) []BookingResponse {
	responses := make([]BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = FromBooking(&bookings[i])
	}
	return responses
}

func (r *CreatePricingRuleRequest) ToPricingRule(tenantID string) *domain.PricingRule {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &domain.PricingRule{
		TenantID:        tenantID,
		Name:            r.Name,
		ServiceType:     r.ServiceType,
		VehicleClass:    r.VehicleClass,
		BasePriceCents:  r.BasePriceCents,
		HourlyRateCents: r.HourlyRateCents,
		Active:          active,
	}
}

// ApplyTo copies the fields that were set onto rule
func (r *UpdatePricingRuleRequest) ApplyTo(rule *domain.PricingRule) {
	if r.Name != nil {
		rule.Name = *r.Name
	}
	if r.ServiceType != nil {
		rule.ServiceType = *r.ServiceType
	}
	if r.VehicleClass != nil {
		rule.VehicleClass = *r.VehicleClass
	}
	if r.BasePriceCents != nil {
		rule.BasePriceCents = *r.BasePriceCents
	}
	if r.HourlyRateCents != nil {
		rule.HourlyRateCents = *r.HourlyRateCents
	}
	if r.Active != nil {
		rule.Active = *r.Active
	}
}

// FromNotificationPreference leaves ID nil for unsaved defaults
func FromNotificationPreference(p *domain.NotificationPreference) NotificationPreferenceResponse {
	var id *string
	if p.ID != "" {
		id = &p.ID
	}
	return NotificationPreferenceResponse{
		ID:                  id,
		UserID:              p.UserID,
		EmailEnabled:        p.EmailEnabled,
		SMSEnabled:          p.SMSEnabled,
		BookingReminders:    p.BookingReminders,
		AnalysisUpdates:     p.AnalysisUpdates,
		ReminderLeadMinutes: p.ReminderLeadMinutes,
	}
}

func FromAnalysis(a *domain.VehicleAnalysis) AnalysisResponse {
	return AnalysisResponse{
		ID:             a.ID,
		BookingID:      a.BookingID,
		VehicleInfo:    a.VehicleInfo,
		FileIDs:        a.FileIDs,
		Status:         a.Status,
		Summary:        a.Summary,
		ConditionScore: a.ConditionScore,
		Findings:       a.Findings,
		Model:          a.Model,
		StreamID:       a.StreamID,
		Error:          a.Error,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func FromAnalyses(analyses []domain.VehicleAnalysis) []AnalysisResponse {
	responses := make([]AnalysisResponse, len(analyses))
	for i := range analyses {
		responses[i] = FromAnalysis(&analyses[i])
	}
	return responses
}

func (r *ChatRequest) ToMessages() []domain.ChatMessage {
	messages := make([]domain.ChatMessage, len(r.Messages))
	for i, m := range r.Messages {
		messages[i] = domain.ChatMessage{Role: m.Role, Content: m.Content}
	}
	return messages
}
