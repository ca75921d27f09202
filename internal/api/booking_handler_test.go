package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/middleware"
	"github.com/kingrain94/vehicle-assess-api/internal/service"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Create(ctx context.Context, tenantID string, req dto.CreateBookingRequest) (*domain.Booking, error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) List(ctx context.Context, filter domain.BookingFilter) (dto.BookingListResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(dto.BookingListResponse), args.Error(1)
}

func (m *MockBookingService) UpdateStatus(ctx context.Context, id, status string) (*domain.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) Delete(ctx context.Context, tenantID, id string) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockBookingService) Availability(ctx context.Context, tenantID, start, end string) (dto.AvailabilityResponse, error) {
	args := m.Called(ctx, tenantID, start, end)
	return args.Get(0).(dto.AvailabilityResponse), args.Error(1)
}

type BookingHandlerTestSuite struct {
	suite.Suite
	mockService *MockBookingService
	handler     *BookingHandler
}

func (s *BookingHandlerTestSuite) SetupSuite() {
	s.Require().NoError(middleware.RegisterValidators())
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.mockService = new(MockBookingService)
	s.handler = NewBookingHandler(s.mockService)
}

func TestBookingHandler(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateBooking_Success() {
	// Arrange
	req := dto.CreateBookingRequest{
		CustomerName: "Ada Lovelace",
		ServiceType:  "pre_purchase_inspection",
		StartTime:    "2025-07-17T09:00:00Z",
		EndTime:      "2025-07-17T10:00:00Z",
	}
	booking := &domain.Booking{
		ID:           "booking1",
		TenantID:     "tenant1",
		CustomerName: req.CustomerName,
		ServiceType:  req.ServiceType,
		StartTime:    1752742800000,
		EndTime:      1752746400000,
		Status:       string(domain.BookingPending),
	}
	s.mockService.On("Create", mock.Anything, "tenant1", req).Return(booking, nil)

	c, w := newTestContext(http.MethodPost, "/api/v1/bookings", req)
	authenticate(c, "tenant1", "user1", "staff")

	// Act
	s.handler.CreateBooking(c)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var response dto.BookingResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("booking1", response.ID)
	s.Equal("pending", response.Status)
	s.Equal(int64(1752742800000), response.StartTime)
	s.mockService.AssertExpectations(s.T())
}

func (s *BookingHandlerTestSuite) TestCreateBooking_InvalidTimeRange() {
	req := dto.CreateBookingRequest{
		CustomerName: "Ada Lovelace",
		ServiceType:  "diagnostic",
		StartTime:    "2025-07-17T10:00:00Z",
		EndTime:      "2025-07-17T09:00:00Z",
	}
	s.mockService.On("Create", mock.Anything, "tenant1", req).Return(nil, service.ErrInvalidTimeRange)

	c, w := newTestContext(http.MethodPost, "/api/v1/bookings", req)
	authenticate(c, "tenant1", "user1", "staff")
	s.handler.CreateBooking(c)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *BookingHandlerTestSuite) TestCreateBooking_MissingFields() {
	c, w := newTestContext(http.MethodPost, "/api/v1/bookings", `{"customer_name":"Ada"}`)
	authenticate(c, "tenant1", "user1", "staff")

	s.handler.CreateBooking(c)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
}

func (s *BookingHandlerTestSuite) TestListBookings_ParsesDateBounds() {
	// Arrange
	filter := domain.BookingFilter{
		TenantID:  "tenant1",
		Status:    "confirmed",
		StartTime: 1752710400000, // 2025-07-17T00:00:00Z
		EndTime:   1752796799999, // 2025-07-17T23:59:59.999Z
		Page:      2,
	}
	s.mockService.On("List", mock.Anything, filter).
		Return(dto.BookingListResponse{Bookings: []dto.BookingResponse{}, Total: 0, Page: 2, PageSize: 20}, nil)

	c, w := newTestContext(http.MethodGet,
		"/api/v1/bookings?status=confirmed&start_time=2025-07-17&end_time=2025-07-17&page=2", nil)
	authenticate(c, "tenant1", "user1")

	// Act
	s.handler.ListBookings(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *BookingHandlerTestSuite) TestListBookings_BadDate() {
	c, w := newTestContext(http.MethodGet, "/api/v1/bookings?start_time=yesterday", nil)
	authenticate(c, "tenant1", "user1")

	s.handler.ListBookings(c)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *BookingHandlerTestSuite) TestUpdateBookingStatus_RejectsUnknownStatus() {
	c, w := newTestContext(http.MethodPatch, "/api/v1/bookings/booking1/status", `{"status":"archived"}`)
	c.AddParam("id", "booking1")
	authenticate(c, "tenant1", "user1", "staff")

	s.handler.UpdateBookingStatus(c)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (s *BookingHandlerTestSuite) TestCancelBooking_NotFound() {
	s.mockService.On("Cancel", mock.Anything, "missing").Return(nil, service.ErrBookingNotFound)

	c, w := newTestContext(http.MethodPost, "/api/v1/bookings/missing/cancel", nil)
	c.AddParam("id", "missing")
	s.handler.CancelBooking(c)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *BookingHandlerTestSuite) TestGetAvailability_RequiresBounds() {
	c, w := newTestContext(http.MethodGet, "/api/v1/bookings/availability?start=2025-07-17", nil)
	authenticate(c, "tenant1", "user1")

	s.handler.GetAvailability(c)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Availability", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *BookingHandlerTestSuite) TestGetAvailability_Success() {
	expected := dto.AvailabilityResponse{
		StartTime: 1752710400000,
		EndTime:   1752796799999,
		Busy:      []domain.TimeSlot{{BookingID: "booking1", StartTime: 1752742800000, EndTime: 1752746400000, Status: "confirmed"}},
	}
	s.mockService.On("Availability", mock.Anything, "tenant1", "2025-07-17", "2025-07-17").Return(expected, nil)

	c, w := newTestContext(http.MethodGet, "/api/v1/bookings/availability?start=2025-07-17&end=2025-07-17", nil)
	authenticate(c, "tenant1", "user1")
	s.handler.GetAvailability(c)

	s.Equal(http.StatusOK, w.Code)
	var response dto.AvailabilityResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(expected, response)
}
