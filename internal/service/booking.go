package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/metrics"
	"github.com/kingrain94/vehicle-assess-api/internal/repository"
	"github.com/kingrain94/vehicle-assess-api/internal/service/calendar"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
	"github.com/kingrain94/vehicle-assess-api/pkg/utils"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type BookingService struct {
	repo       repository.Repository
	sqsService SQSService
	calendar   CalendarProvider
	logger     *logger.Logger
}

// NewBookingService wires the booking service. calendar may be nil when no
// calendar provider is configured.
func NewBookingService(repo repository.Repository, sqsService SQSService, calendar CalendarProvider, logger *logger.Logger) *BookingService {
	return &BookingService{
		repo:       repo,
		sqsService: sqsService,
		calendar:   calendar,
		logger:     logger,
	}
}

func (s *BookingService) Create(ctx context.Context, tenantID string, req dto.CreateBookingRequest) (*domain.Booking, error) {
	startMillis, err := utils.ParseUserMillis(req.StartTime, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	endMillis, err := utils.ParseUserMillis(req.EndTime, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	if endMillis <= startMillis {
		return nil, ErrInvalidTimeRange
	}

	booking := req.ToBooking(tenantID, startMillis, endMillis)
	if err := s.repo.Booking().Create(ctx, booking); err != nil {
		return nil, err
	}
	metrics.BookingsCreated.Inc()

	if err := s.sqsService.SendIndexMessage(ctx, booking); err != nil {
		s.logger.Error("Failed to enqueue booking for indexing", err, zap.String("booking_id", booking.ID))
	}

	s.pushToCalendar(ctx, booking)
	return booking, nil
}

// pushToCalendar creates the external event. Failures are logged only.
func (s *BookingService) pushToCalendar(ctx context.Context, booking *domain.Booking) {
	if s.calendar == nil {
		return
	}

	eventID, err := s.calendar.CreateEvent(ctx, calendar.Event{
		Title:       fmt.Sprintf("%s: %s", booking.ServiceType, booking.CustomerName),
		Description: bookingDescription(booking),
		Start:       time.UnixMilli(booking.StartTime).UTC(),
		End:         time.UnixMilli(booking.EndTime).UTC(),
		Metadata: map[string]string{
			"booking_id": booking.ID,
			"tenant_id":  booking.TenantID,
		},
	})
	if err != nil {
		s.logger.Error("Failed to push booking to calendar", err, zap.String("booking_id", booking.ID))
		return
	}

	if _, err := s.repo.Booking().Patch(ctx, booking.ID, map[string]any{"calendar_event_id": eventID}); err != nil {
		s.logger.Error("Failed to link calendar event", err,
			zap.String("booking_id", booking.ID),
			zap.String("event_id", eventID),
		)
		return
	}
	booking.CalendarEventID = &eventID
}

// bookingDescription renders the calendar event body. Every user supplied
// value is escaped.
func bookingDescription(b *domain.Booking) string {
	var sb strings.Builder
	sb.WriteString("<p><strong>Customer:</strong> " + utils.EscapeHTML(b.CustomerName) + "</p>")
	if b.CustomerEmail != "" {
		sb.WriteString("<p><strong>Email:</strong> " + utils.EscapeHTML(b.CustomerEmail) + "</p>")
	}
	if b.CustomerPhone != "" {
		sb.WriteString("<p><strong>Phone:</strong> " + utils.EscapeHTML(b.CustomerPhone) + "</p>")
	}
	vehicle := strings.TrimSpace(fmt.Sprintf("%s %s", b.VehicleMake, b.VehicleModel))
	if b.VehicleYear > 0 {
		vehicle = fmt.Sprintf("%d %s", b.VehicleYear, vehicle)
	}
	if vehicle != "" {
		sb.WriteString("<p><strong>Vehicle:</strong> " + utils.EscapeHTML(vehicle) + "</p>")
	}
	sb.WriteString("<p><strong>Service:</strong> " + utils.EscapeHTML(b.ServiceType) + "</p>")
	if b.Notes != "" {
		sb.WriteString("<p>" + utils.EscapeHTML(b.Notes) + "</p>")
	}
	return sb.String()
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.repo.Booking().GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookingNotFound
	}
	return booking, err
}

func (s *BookingService) List(ctx context.Context, filter domain.BookingFilter) (dto.BookingListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}
	filter.Limit = filter.PageSize
	filter.Offset = (filter.Page - 1) * filter.PageSize

	bookings, total, err := s.repo.Booking().List(ctx, filter)
	if err != nil {
		return dto.BookingListResponse{}, err
	}

	return dto.BookingListResponse{
		Bookings: dto.FromBookings(bookings),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (s *BookingService) UpdateStatus(ctx context.Context, id, status string) (*domain.Booking, error) {
	if !domain.IsValidBookingStatus(status) {
		return nil, ErrInvalidBookingStatus
	}
	if status == string(domain.BookingCancelled) {
		return s.Cancel(ctx, id)
	}

	booking, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.Booking().Patch(ctx, booking.ID, map[string]any{"status": status}); err != nil {
		return nil, err
	}
	booking.Status = status

	s.reindex(ctx, booking)
	return booking, nil
}

// Cancel marks the booking cancelled and removes its calendar event
func (s *BookingService) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.CalendarEventID != nil && s.calendar != nil {
		if err := s.calendar.DeleteEvent(ctx, *booking.CalendarEventID); err != nil {
			s.logger.Error("Failed to delete calendar event", err,
				zap.String("booking_id", booking.ID),
				zap.String("event_id", *booking.CalendarEventID),
			)
		}
	}

	updates := map[string]any{
		"status":            string(domain.BookingCancelled),
		"calendar_event_id": nil,
	}
	if _, err := s.repo.Booking().Patch(ctx, booking.ID, updates); err != nil {
		return nil, err
	}
	booking.Status = string(domain.BookingCancelled)
	booking.CalendarEventID = nil

	s.reindex(ctx, booking)
	return booking, nil
}

func (s *BookingService) Delete(ctx context.Context, tenantID, id string) error {
	deleted, err := s.repo.Booking().Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrBookingNotFound
	}

	if err := s.repo.BookingSearch().Delete(ctx, tenantID, id); err != nil {
		s.logger.Warn("Failed to remove booking from search index",
			zap.String("booking_id", id),
			zap.Error(err),
		)
	}
	return nil
}

// Availability lists the busy intervals in [start, end). Overlapping
// bookings are reported as they are.
func (s *BookingService) Availability(ctx context.Context, tenantID, start, end string) (dto.AvailabilityResponse, error) {
	startMillis, err := utils.ParseUserMillis(start, false)
	if err != nil {
		return dto.AvailabilityResponse{}, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	endMillis, err := utils.ParseUserMillis(end, true)
	if err != nil {
		return dto.AvailabilityResponse{}, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	if endMillis <= startMillis {
		return dto.AvailabilityResponse{}, ErrInvalidTimeRange
	}

	bookings, err := s.repo.Booking().ListBusy(ctx, tenantID, startMillis, endMillis)
	if err != nil {
		return dto.AvailabilityResponse{}, err
	}

	busy := make([]domain.TimeSlot, len(bookings))
	for i, b := range bookings {
		busy[i] = domain.TimeSlot{
			BookingID: b.ID,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Status:    b.Status,
		}
	}

	return dto.AvailabilityResponse{
		StartTime: startMillis,
		EndTime:   endMillis,
		Busy:      busy,
	}, nil
}

func (s *BookingService) reindex(ctx context.Context, booking *domain.Booking) {
	if err := s.sqsService.SendIndexMessage(ctx, booking); err != nil {
		s.logger.Error("Failed to enqueue booking for indexing", err, zap.String("booking_id", booking.ID))
	}
}
