package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/vehicle-assess-api/internal/mocks"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
)

type MaintenanceServiceTestSuite struct {
	suite.Suite
	mockRepo      *mocks.Repository
	mockRateLimit *mocks.RateLimitEventRepository
	mockHistory   *mocks.SearchHistoryRepository
	mockSession   *mocks.SessionRepository
	mockSQS       *mocks.SQSService
	service       *MaintenanceService
}

func (s *MaintenanceServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockRateLimit = new(mocks.RateLimitEventRepository)
	s.mockHistory = new(mocks.SearchHistoryRepository)
	s.mockSession = new(mocks.SessionRepository)
	s.mockSQS = new(mocks.SQSService)

	s.mockRepo.On("RateLimitEvent").Return(s.mockRateLimit)
	s.mockRepo.On("SearchHistory").Return(s.mockHistory)
	s.mockRepo.On("Session").Return(s.mockSession)

	s.service = NewMaintenanceService(s.mockRepo, s.mockSQS, logger.NewNopLogger())
}

func TestMaintenanceService(t *testing.T) {
	suite.Run(t, new(MaintenanceServiceTestSuite))
}

func (s *MaintenanceServiceTestSuite) TestScheduleCleanup() {
	ctx := context.Background()
	before := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s.mockSQS.On("SendCleanupMessage", ctx, "tenant1", before).Return(nil)

	resp, err := s.service.ScheduleCleanup(ctx, "tenant1", before)

	s.Require().NoError(err)
	s.Equal(before.UnixMilli(), resp.BeforeDate)
	s.Equal("Cleanup scheduled", resp.Message)
}

func (s *MaintenanceServiceTestSuite) TestScheduleCleanup_QueueError() {
	ctx := context.Background()
	before := time.Now()
	s.mockSQS.On("SendCleanupMessage", ctx, "tenant1", before).Return(errors.New("queue down"))

	_, err := s.service.ScheduleCleanup(ctx, "tenant1", before)

	s.Error(err)
}

func (s *MaintenanceServiceTestSuite) TestCleanup_PurgesEveryTable() {
	// Arrange
	ctx := context.Background()
	before := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	millis := before.UnixMilli()
	s.mockRateLimit.On("DeleteBefore", ctx, "tenant1", millis).Return(int64(3), nil)
	s.mockHistory.On("DeleteBefore", ctx, "tenant1", millis).Return(int64(2), nil)
	s.mockSession.On("DeleteExpired", ctx, "tenant1", millis).Return(int64(1), nil)

	// Act
	result, err := s.service.Cleanup(ctx, "tenant1", before)

	// Assert
	s.Require().NoError(err)
	s.Equal(CleanupResult{RateLimitEvents: 3, SearchHistory: 2, Sessions: 1}, result)
}

func (s *MaintenanceServiceTestSuite) TestCleanup_StopsOnError() {
	ctx := context.Background()
	before := time.Now()
	s.mockRateLimit.On("DeleteBefore", ctx, "tenant1", before.UnixMilli()).Return(int64(0), errors.New("db down"))

	_, err := s.service.Cleanup(ctx, "tenant1", before)

	s.Error(err)
	s.mockHistory.AssertNotCalled(s.T(), "DeleteBefore", mock.Anything, mock.Anything, mock.Anything)
}
