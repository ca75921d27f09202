package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/metrics"
	"github.com/kingrain94/vehicle-assess-api/internal/mocks"
	"github.com/kingrain94/vehicle-assess-api/internal/service/calendar"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
)

const testBookingID = "9d3c1a5e-4b7f-4e2a-8c6d-1f0e2d3c4b5a"

type BookingServiceTestSuite struct {
	suite.Suite
	mockRepo     *mocks.Repository
	mockBooking  *mocks.BookingRepository
	mockSearch   *mocks.BookingSearchRepository
	mockSQS      *mocks.SQSService
	mockCalendar *mocks.CalendarProvider
	service      *BookingService
}

func (s *BookingServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockBooking = new(mocks.BookingRepository)
	s.mockSearch = new(mocks.BookingSearchRepository)
	s.mockSQS = new(mocks.SQSService)
	s.mockCalendar = new(mocks.CalendarProvider)

	s.mockRepo.On("Booking").Return(s.mockBooking)
	s.mockRepo.On("BookingSearch").Return(s.mockSearch)

	s.service = NewBookingService(s.mockRepo, s.mockSQS, s.mockCalendar, logger.NewNopLogger())
}

func TestBookingService(t *testing.T) {
	suite.Run(t, new(BookingServiceTestSuite))
}

func (s *BookingServiceTestSuite) createRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		CustomerName: "Tom & Jerry's <Garage>",
		VehicleMake:  "Honda",
		VehicleModel: "Civic",
		ServiceType:  "inspection",
		StartTime:    "2025-07-17T09:00:00Z",
		EndTime:      "2025-07-17T10:00:00Z",
	}
}

func (s *BookingServiceTestSuite) TestCreate_Success() {
	// Arrange
	ctx := context.Background()
	var pushed calendar.Event

	s.mockBooking.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Booking).ID = testBookingID }).
		Return(nil)
	s.mockSQS.On("SendIndexMessage", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
	s.mockCalendar.On("CreateEvent", ctx, mock.AnythingOfType("calendar.Event")).
		Run(func(args mock.Arguments) { pushed = args.Get(1).(calendar.Event) }).
		Return("evt_1", nil)
	s.mockBooking.On("Patch", ctx, testBookingID, map[string]any{"calendar_event_id": "evt_1"}).Return(int64(1), nil)

	// Act
	booking, err := s.service.Create(ctx, "tenant1", s.createRequest())

	// Assert
	s.Require().NoError(err)
	s.Equal(string(domain.BookingPending), booking.Status)
	s.Equal(int64(3600000), booking.EndTime-booking.StartTime)
	s.Equal("evt_1", *booking.CalendarEventID)
	s.Contains(pushed.Description, "Tom &amp; Jerry&#039;s &lt;Garage&gt;")
	s.NotContains(pushed.Description, "<Garage>")
	s.Equal(testBookingID, pushed.Metadata["booking_id"])
	s.mockSQS.AssertExpectations(s.T())
}

func (s *BookingServiceTestSuite) TestCreate_EndBeforeStart() {
	req := s.createRequest()
	req.EndTime = "2025-07-17T08:00:00Z"

	_, err := s.service.Create(context.Background(), "tenant1", req)

	s.ErrorIs(err, ErrInvalidTimeRange)
	s.mockBooking.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *BookingServiceTestSuite) TestCreate_CalendarFailureIsLoggedOnly() {
	ctx := context.Background()
	s.mockBooking.On("Create", ctx, mock.Anything).Return(nil)
	s.mockSQS.On("SendIndexMessage", ctx, mock.Anything).Return(errors.New("queue down"))
	s.mockCalendar.On("CreateEvent", ctx, mock.Anything).Return("", errors.New("calendar down"))

	booking, err := s.service.Create(ctx, "tenant1", s.createRequest())

	s.NoError(err)
	s.Nil(booking.CalendarEventID)
	s.mockBooking.AssertNotCalled(s.T(), "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func (s *BookingServiceTestSuite) TestCreate_WithoutCalendar() {
	ctx := context.Background()
	svc := NewBookingService(s.mockRepo, s.mockSQS, nil, logger.NewNopLogger())
	s.mockBooking.On("Create", ctx, mock.Anything).Return(nil)
	s.mockSQS.On("SendIndexMessage", ctx, mock.Anything).Return(nil)

	_, err := svc.Create(ctx, "tenant1", s.createRequest())

	s.NoError(err)
	s.mockCalendar.AssertNotCalled(s.T(), "CreateEvent", mock.Anything, mock.Anything)
}

func (s *BookingServiceTestSuite) TestGet_NotFound() {
	ctx := context.Background()
	s.mockBooking.On("GetByID", ctx, "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := s.service.Get(ctx, "missing")

	s.ErrorIs(err, ErrBookingNotFound)
}

func (s *BookingServiceTestSuite) TestList_AppliesPagination() {
	ctx := context.Background()
	expectedFilter := domain.BookingFilter{TenantID: "tenant1", Page: 3, PageSize: 10, Limit: 10, Offset: 20}
	s.mockBooking.On("List", ctx, expectedFilter).Return([]domain.Booking{{ID: "b1"}}, int64(21), nil)

	resp, err := s.service.List(ctx, domain.BookingFilter{TenantID: "tenant1", Page: 3, PageSize: 10})

	s.Require().NoError(err)
	s.Equal(int64(21), resp.Total)
	s.Len(resp.Bookings, 1)
	s.Equal(3, resp.Page)
}

func (s *BookingServiceTestSuite) TestUpdateStatus_Invalid() {
	_, err := s.service.UpdateStatus(context.Background(), testBookingID, "archived")

	s.ErrorIs(err, ErrInvalidBookingStatus)
}

func (s *BookingServiceTestSuite) TestUpdateStatus_Confirmed() {
	ctx := context.Background()
	s.mockBooking.On("GetByID", ctx, testBookingID).Return(&domain.Booking{ID: testBookingID, Status: "pending"}, nil)
	s.mockBooking.On("Patch", ctx, testBookingID, map[string]any{"status": "confirmed"}).Return(int64(1), nil)
	s.mockSQS.On("SendIndexMessage", ctx, mock.Anything).Return(nil)

	booking, err := s.service.UpdateStatus(ctx, testBookingID, "confirmed")

	s.Require().NoError(err)
	s.Equal("confirmed", booking.Status)
}

func (s *BookingServiceTestSuite) TestCancel_RemovesCalendarEvent() {
	// Arrange
	ctx := context.Background()
	eventID := "evt_9"
	s.mockBooking.On("GetByID", ctx, testBookingID).Return(&domain.Booking{ID: testBookingID, CalendarEventID: &eventID}, nil)
	s.mockCalendar.On("DeleteEvent", ctx, "evt_9").Return(nil)
	s.mockBooking.On("Patch", ctx, testBookingID, map[string]any{"status": "cancelled", "calendar_event_id": nil}).Return(int64(1), nil)
	s.mockSQS.On("SendIndexMessage", ctx, mock.Anything).Return(nil)

	// Act
	booking, err := s.service.Cancel(ctx, testBookingID)

	// Assert
	s.Require().NoError(err)
	s.Equal("cancelled", booking.Status)
	s.Nil(booking.CalendarEventID)
	s.mockCalendar.AssertExpectations(s.T())
}

func (s *BookingServiceTestSuite) TestDelete() {
	ctx := context.Background()
	s.mockBooking.On("Delete", ctx, testBookingID).Return(int64(1), nil)
	s.mockSearch.On("Delete", ctx, "tenant1", testBookingID).Return(errors.New("index missing"))

	s.NoError(s.service.Delete(ctx, "tenant1", testBookingID))
}

func (s *BookingServiceTestSuite) TestDelete_NotFound() {
	ctx := context.Background()
	s.mockBooking.On("Delete", ctx, testBookingID).Return(int64(0), nil)

	s.ErrorIs(s.service.Delete(ctx, "tenant1", testBookingID), ErrBookingNotFound)
}

func (s *BookingServiceTestSuite) TestAvailability_ReportsOverlaps() {
	// Arrange
	ctx := context.Background()
	busy := []domain.Booking{
		{ID: "a", StartTime: 1000, EndTime: 5000, Status: "confirmed"},
		{ID: "b", StartTime: 2000, EndTime: 3000, Status: "pending"},
	}
	s.mockBooking.On("ListBusy", ctx, "tenant1", int64(0), int64(10000)).Return(busy, nil)

	// Act
	resp, err := s.service.Availability(ctx, "tenant1", "0", "10000")

	// Assert
	s.Require().NoError(err)
	s.Len(resp.Busy, 2)
	s.Equal("b", resp.Busy[1].BookingID)
}

func (s *BookingServiceTestSuite) TestCalendarWebhook_DeletedUnknownEvent() {
	// Arrange
	ctx := context.Background()
	s.mockBooking.On("GetByCalendarEventID", ctx, "evt_unknown").Return(nil, gorm.ErrRecordNotFound)

	// Act
	resp := s.service.HandleCalendarWebhook(ctx, dto.CalendarWebhookRequest{
		Type:  CalendarEventDeleted,
		Event: dto.CalendarEvent{ID: "evt_unknown"},
	})

	// Assert
	s.False(resp.Success)
	s.NotEmpty(resp.Error)
	s.mockBooking.AssertNotCalled(s.T(), "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func (s *BookingServiceTestSuite) TestCalendarWebhook_DeletedCancelsBooking() {
	ctx := context.Background()
	s.mockBooking.On("GetByCalendarEventID", ctx, "evt_1").Return(&domain.Booking{ID: testBookingID}, nil)
	s.mockBooking.On("Patch", ctx, testBookingID, map[string]any{"status": "cancelled", "calendar_event_id": nil}).Return(int64(1), nil)
	s.mockSQS.On("SendIndexMessage", ctx, mock.Anything).Return(nil)

	resp := s.service.HandleCalendarWebhook(ctx, dto.CalendarWebhookRequest{Type: CalendarEventDeleted, Event: dto.CalendarEvent{ID: "evt_1"}})

	s.True(resp.Success)
}

func (s *BookingServiceTestSuite) TestCalendarWebhook_UpdatedUnknownEvent() {
	ctx := context.Background()
	s.mockBooking.On("GetByCalendarEventID", ctx, "evt_x").Return(nil, gorm.ErrRecordNotFound)

	resp := s.service.HandleCalendarWebhook(ctx, dto.CalendarWebhookRequest{Type: CalendarEventUpdated, Event: dto.CalendarEvent{ID: "evt_x"}})

	s.False(resp.Success)
	s.Equal(errCalendarEventNotFound, resp.Error)
}

func (s *BookingServiceTestSuite) TestCalendarWebhook_UpdatedPatchesTimes() {
	ctx := context.Background()
	s.mockBooking.On("GetByCalendarEventID", ctx, "evt_1").Return(&domain.Booking{ID: testBookingID}, nil)
	s.mockBooking.On("Patch", ctx, testBookingID, map[string]any{"start_time": int64(1000), "end_time": int64(2000)}).Return(int64(1), nil)
	s.mockSQS.On("SendIndexMessage", ctx, mock.Anything).Return(nil)

	resp := s.service.HandleCalendarWebhook(ctx, dto.CalendarWebhookRequest{
		Type:  CalendarEventUpdated,
		Event: dto.CalendarEvent{ID: "evt_1", Start: "1000", End: "2000"},
	})

	s.True(resp.Success)
	s.mockBooking.AssertExpectations(s.T())
}

func (s *BookingServiceTestSuite) TestCalendarWebhook_CreatedLinksBooking() {
	ctx := context.Background()
	s.mockBooking.On("GetByID", ctx, testBookingID).Return(&domain.Booking{ID: testBookingID, TenantID: "tenant1"}, nil)
	s.mockBooking.On("Patch", ctx, testBookingID, map[string]any{"calendar_event_id": "evt_2"}).Return(int64(1), nil)

	resp := s.service.HandleCalendarWebhook(ctx, dto.CalendarWebhookRequest{
		Type:  CalendarEventCreated,
		Event: dto.CalendarEvent{ID: "evt_2", Metadata: map[string]string{"booking_id": testBookingID, "tenant_id": "tenant1"}},
	})

	s.True(resp.Success)
	s.mockBooking.AssertExpectations(s.T())
}

func (s *BookingServiceTestSuite) TestCalendarWebhook_CreatedRejectsOtherTenant() {
	// Arrange
	ctx := context.Background()
	s.mockBooking.On("GetByID", ctx, testBookingID).Return(&domain.Booking{ID: testBookingID, TenantID: "tenant1"}, nil)

	// Act
	resp := s.service.HandleCalendarWebhook(ctx, dto.CalendarWebhookRequest{
		Type:  CalendarEventCreated,
		Event: dto.CalendarEvent{ID: "evt_2", Metadata: map[string]string{"booking_id": testBookingID, "tenant_id": "tenant2"}},
	})

	// Assert
	s.False(resp.Success)
	s.mockBooking.AssertNotCalled(s.T(), "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func (s *BookingServiceTestSuite) TestCalendarWebhook_CreatedRequiresTenant() {
	resp := s.service.HandleCalendarWebhook(context.Background(), dto.CalendarWebhookRequest{
		Type:  CalendarEventCreated,
		Event: dto.CalendarEvent{ID: "evt_2", Metadata: map[string]string{"booking_id": testBookingID}},
	})

	s.False(resp.Success)
	s.mockBooking.AssertNotCalled(s.T(), "GetByID", mock.Anything, mock.Anything)
}

func (s *BookingServiceTestSuite) TestCalendarWebhook_CreatedWithoutBookingIsNoop() {
	resp := s.service.HandleCalendarWebhook(context.Background(), dto.CalendarWebhookRequest{
		Type:  CalendarEventCreated,
		Event: dto.CalendarEvent{ID: "evt_3"},
	})

	s.False(resp.Success)
	s.Empty(resp.Error)
}

func (s *BookingServiceTestSuite) TestCalendarWebhook_UnsupportedType() {
	resp := s.service.HandleCalendarWebhook(context.Background(), dto.CalendarWebhookRequest{Type: "event.moved"})

	s.False(resp.Success)
	s.Equal("unsupported event type", resp.Error)
}

func (s *BookingServiceTestSuite) TestCalendarWebhook_TypeLabelIsBounded() {
	// Arrange
	other := metrics.WebhookEvents.WithLabelValues("calendar", "other", "ignored")
	seriesBefore := testutil.CollectAndCount(metrics.WebhookEvents)
	otherBefore := testutil.ToFloat64(other)

	// Act
	for i := 0; i < 50; i++ {
		s.service.HandleCalendarWebhook(context.Background(), dto.CalendarWebhookRequest{Type: fmt.Sprintf("junk-%d", i)})
	}

	// Assert
	s.Equal(seriesBefore, testutil.CollectAndCount(metrics.WebhookEvents))
	s.Equal(otherBefore+50, testutil.ToFloat64(other))
}

func TestBookingDescription_EscapesEveryField(t *testing.T) {
	desc := bookingDescription(&domain.Booking{
		CustomerName:  `"Mallory"`,
		CustomerEmail: "m@example.com",
		ServiceType:   "<script>",
		Notes:         "it's & done",
	})

	for _, raw := range []string{`"Mallory"`, "<script>", "it's"} {
		if strings.Contains(desc, raw) {
			t.Fatalf("description contains unescaped %q: %s", raw, desc)
		}
	}
}
