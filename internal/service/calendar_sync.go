package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/metrics"
	"github.com/kingrain94/vehicle-assess-api/pkg/utils"
)

const (
	CalendarEventCreated = "event.created"
	CalendarEventUpdated = "event.updated"
	CalendarEventDeleted = "event.deleted"
)

const errCalendarEventNotFound = "calendar event not found"

func calendarEventLabel(eventType string) string {
	return metrics.EventType(eventType, CalendarEventCreated, CalendarEventUpdated, CalendarEventDeleted)
}

// HandleCalendarWebhook applies a calendar provider callback. It never
// returns an error; the outcome is reported in the response.
func (s *BookingService) HandleCalendarWebhook(ctx context.Context, req dto.CalendarWebhookRequest) dto.SuccessResponse {
	var resp dto.SuccessResponse

	switch req.Type {
	case CalendarEventCreated:
		resp = s.linkCalendarEvent(ctx, req.Event)
	case CalendarEventUpdated:
		resp = s.applyCalendarUpdate(ctx, req.Event)
	case CalendarEventDeleted:
		resp = s.applyCalendarDelete(ctx, req.Event)
	default:
		s.logger.Warn("Unsupported calendar event type", zap.String("type", req.Type))
		resp = dto.SuccessResponse{Success: false, Error: "unsupported event type"}
	}

	outcome := "success"
	if !resp.Success {
		outcome = "ignored"
	}
	metrics.WebhookEvents.WithLabelValues("calendar", calendarEventLabel(req.Type), outcome).Inc()
	return resp
}

// linkCalendarEvent only links a booking whose tenant matches the tenant_id
// the event was pushed with.
func (s *BookingService) linkCalendarEvent(ctx context.Context, event dto.CalendarEvent) dto.SuccessResponse {
	bookingID := event.Metadata["booking_id"]
	tenantID := event.Metadata["tenant_id"]
	if _, err := uuid.Parse(bookingID); err != nil || tenantID == "" {
		s.logger.Info("Calendar event without a booking reference", zap.String("event_id", event.ID))
		return dto.SuccessResponse{Success: false}
	}

	booking, err := s.repo.Booking().GetByID(ctx, bookingID)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && booking.TenantID != tenantID) {
		s.logger.Info("Calendar event references unknown booking",
			zap.String("event_id", event.ID),
			zap.String("booking_id", bookingID),
		)
		return dto.SuccessResponse{Success: false}
	}
	if err != nil {
		s.logger.Error("Failed to load booking for calendar event", err, zap.String("event_id", event.ID))
		return dto.SuccessResponse{Success: false, Error: err.Error()}
	}

	if _, err := s.repo.Booking().Patch(ctx, booking.ID, map[string]any{"calendar_event_id": event.ID}); err != nil {
		s.logger.Error("Failed to link calendar event", err, zap.String("event_id", event.ID))
		return dto.SuccessResponse{Success: false, Error: err.Error()}
	}
	return dto.SuccessResponse{Success: true}
}

func (s *BookingService) findByCalendarEvent(ctx context.Context, eventID string) (*domain.Booking, error) {
	if eventID == "" {
		return nil, ErrBookingNotFound
	}
	booking, err := s.repo.Booking().GetByCalendarEventID(ctx, eventID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookingNotFound
	}
	return booking, err
}

func (s *BookingService) applyCalendarUpdate(ctx context.Context, event dto.CalendarEvent) dto.SuccessResponse {
	booking, err := s.findByCalendarEvent(ctx, event.ID)
	if errors.Is(err, ErrBookingNotFound) {
		s.logger.Info("Calendar update for unknown event", zap.String("event_id", event.ID))
		return dto.SuccessResponse{Success: false, Error: errCalendarEventNotFound}
	}
	if err != nil {
		return dto.SuccessResponse{Success: false, Error: err.Error()}
	}

	updates := map[string]any{}
	if event.Start != "" {
		if start, err := utils.ParseUserMillis(event.Start, false); err == nil {
			updates["start_time"] = start
			booking.StartTime = start
		}
	}
	if event.End != "" {
		if end, err := utils.ParseUserMillis(event.End, true); err == nil {
			updates["end_time"] = end
			booking.EndTime = end
		}
	}
	if event.Status == string(domain.BookingCancelled) {
		updates["status"] = string(domain.BookingCancelled)
		booking.Status = string(domain.BookingCancelled)
	}
	if len(updates) == 0 {
		return dto.SuccessResponse{Success: true}
	}

	if _, err := s.repo.Booking().Patch(ctx, booking.ID, updates); err != nil {
		s.logger.Error("Failed to apply calendar update", err, zap.String("booking_id", booking.ID))
		return dto.SuccessResponse{Success: false, Error: err.Error()}
	}

	s.reindex(ctx, booking)
	return dto.SuccessResponse{Success: true}
}

func (s *BookingService) applyCalendarDelete(ctx context.Context, event dto.CalendarEvent) dto.SuccessResponse {
	booking, err := s.findByCalendarEvent(ctx, event.ID)
	if errors.Is(err, ErrBookingNotFound) {
		s.logger.Info("Calendar deletion for unknown event", zap.String("event_id", event.ID))
		return dto.SuccessResponse{Success: false, Error: errCalendarEventNotFound}
	}
	if err != nil {
		return dto.SuccessResponse{Success: false, Error: err.Error()}
	}

	updates := map[string]any{
		"status":            string(domain.BookingCancelled),
		"calendar_event_id": nil,
	}
	if _, err := s.repo.Booking().Patch(ctx, booking.ID, updates); err != nil {
		s.logger.Error("Failed to cancel booking for deleted event", err, zap.String("booking_id", booking.ID))
		return dto.SuccessResponse{Success: false, Error: err.Error()}
	}
	booking.Status = string(domain.BookingCancelled)
	booking.CalendarEventID = nil

	s.reindex(ctx, booking)
	return dto.SuccessResponse{Success: true}
}
