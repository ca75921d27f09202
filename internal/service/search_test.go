package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/mocks"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
)

type SearchServiceTestSuite struct {
	suite.Suite
	mockRepo    *mocks.Repository
	mockSearch  *mocks.BookingSearchRepository
	mockHistory *mocks.SearchHistoryRepository
	service     *SearchService
}

func (s *SearchServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockSearch = new(mocks.BookingSearchRepository)
	s.mockHistory = new(mocks.SearchHistoryRepository)

	s.mockRepo.On("BookingSearch").Return(s.mockSearch)
	s.mockRepo.On("SearchHistory").Return(s.mockHistory)

	s.service = NewSearchService(s.mockRepo, logger.NewNopLogger())
}

func TestSearchService(t *testing.T) {
	suite.Run(t, new(SearchServiceTestSuite))
}

func (s *SearchServiceTestSuite) TestSearchBookings_RecordsHistory() {
	// Arrange
	ctx := context.Background()
	filter := &domain.BookingSearchFilter{TenantID: "tenant1", Query: "  civic "}
	s.mockSearch.On("Search", ctx, filter).Return([]domain.Booking{{ID: "b1"}}, int64(1), nil)
	s.mockHistory.On("Create", ctx, mock.MatchedBy(func(h *domain.SearchHistory) bool {
		return h.Query == "civic" && h.UserID == "user1" && h.Kind == SearchKindBookings && h.ResultCount == 1
	})).Return(errors.New("write failed"))

	// Act
	resp, err := s.service.SearchBookings(ctx, "user1", filter)

	// Assert
	s.Require().NoError(err)
	s.Equal(int64(1), resp.Total)
	s.Equal(1, filter.Page)
	s.Equal(defaultPageSize, filter.PageSize)
	s.mockHistory.AssertExpectations(s.T())
}

func (s *SearchServiceTestSuite) TestSearchBookings_EmptyQuerySkipsHistory() {
	ctx := context.Background()
	filter := &domain.BookingSearchFilter{TenantID: "tenant1"}
	s.mockSearch.On("Search", ctx, filter).Return([]domain.Booking{}, int64(0), nil)

	_, err := s.service.SearchBookings(ctx, "user1", filter)

	s.NoError(err)
	s.mockHistory.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *SearchServiceTestSuite) TestHistory_DefaultLimit() {
	ctx := context.Background()
	s.mockHistory.On("List", ctx, "tenant1", "user1", defaultHistoryLimit).Return([]domain.SearchHistory{}, nil)

	_, err := s.service.History(ctx, "tenant1", "user1", 0)

	s.NoError(err)
	s.mockHistory.AssertExpectations(s.T())
}

func (s *SearchServiceTestSuite) TestClearHistory() {
	ctx := context.Background()
	s.mockHistory.On("DeleteByUser", ctx, "tenant1", "user1").Return(int64(4), nil)

	deleted, err := s.service.ClearHistory(ctx, "tenant1", "user1")

	s.NoError(err)
	s.Equal(int64(4), deleted)
}
