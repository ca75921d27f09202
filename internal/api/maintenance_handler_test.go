package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
)

type MockMaintenanceService struct {
	mock.Mock
}

func (m *MockMaintenanceService) ScheduleCleanup(ctx context.Context, tenantID string, beforeDate time.Time) (dto.CleanupResponse, error) {
	args := m.Called(ctx, tenantID, beforeDate)
	return args.Get(0).(dto.CleanupResponse), args.Error(1)
}

type MockRateLimitEventService struct {
	mock.Mock
}

func (m *MockRateLimitEventService) List(ctx context.Context, tenantID string, limit int) ([]domain.RateLimitEvent, error) {
	args := m.Called(ctx, tenantID, limit)
	return args.Get(0).([]domain.RateLimitEvent), args.Error(1)
}

type MaintenanceHandlerTestSuite struct {
	suite.Suite
	maintenance *MockMaintenanceService
	events      *MockRateLimitEventService
	handler     *MaintenanceHandler
}

func (s *MaintenanceHandlerTestSuite) SetupTest() {
	s.maintenance = new(MockMaintenanceService)
	s.events = new(MockRateLimitEventService)
	s.handler = NewMaintenanceHandler(s.maintenance, s.events)
}

func TestMaintenanceHandler(t *testing.T) {
	suite.Run(t, new(MaintenanceHandlerTestSuite))
}

func (s *MaintenanceHandlerTestSuite) TestCleanup_Scheduled() {
	// Arrange
	before := time.Date(2025, 1, 1, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	s.maintenance.On("ScheduleCleanup", mock.Anything, "tenant1", mock.MatchedBy(before.Equal)).
		Return(dto.CleanupResponse{Message: "Cleanup scheduled", BeforeDate: before.UnixMilli()}, nil)

	c, w := newTestContext(http.MethodDelete, "/api/v1/maintenance/cleanup?before_date=2025-01-01", nil)
	authenticate(c, "tenant1", "user1", "admin")

	// Act
	s.handler.Cleanup(c)

	// Assert
	s.Equal(http.StatusAccepted, w.Code)
	s.Contains(w.Body.String(), "Cleanup scheduled")
	s.maintenance.AssertExpectations(s.T())
}

func (s *MaintenanceHandlerTestSuite) TestCleanup_Validation() {
	future := time.Now().Add(48 * time.Hour).Format("2006-01-02")
	tests := []struct {
		name  string
		query string
	}{
		{name: "missing", query: ""},
		{name: "malformed", query: "?before_date=last-week"},
		{name: "future", query: "?before_date=" + future},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			c, w := newTestContext(http.MethodDelete, "/api/v1/maintenance/cleanup"+tt.query, nil)
			authenticate(c, "tenant1", "user1", "admin")

			s.handler.Cleanup(c)

			s.Equal(http.StatusBadRequest, w.Code)
		})
	}
	s.maintenance.AssertNotCalled(s.T(), "ScheduleCleanup", mock.Anything, mock.Anything, mock.Anything)
}

func (s *MaintenanceHandlerTestSuite) TestListRateLimitEvents() {
	events := []domain.RateLimitEvent{{ID: "evt1", TenantID: "tenant1", Scope: "tenant", Limit: 1000}}
	s.events.On("List", mock.Anything, "tenant1", 10).Return(events, nil)

	c, w := newTestContext(http.MethodGet, "/api/v1/rate-limit-events?limit=10", nil)
	authenticate(c, "tenant1", "user1", "admin")
	s.handler.ListRateLimitEvents(c)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"evt1"`)
}
