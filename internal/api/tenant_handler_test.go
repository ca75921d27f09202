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
	"github.com/kingrain94/vehicle-assess-api/internal/service"
)

type TenantHandlerTestSuite struct {
	suite.Suite
	mockService *MockTenantService
	handler     *TenantHandler
}

type MockTenantService struct {
	mock.Mock
}

func (m *MockTenantService) Create(ctx context.Context, req dto.CreateTenantRequest) (dto.TenantResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.TenantResponse), args.Error(1)
}

func (m *MockTenantService) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) Update(ctx context.Context, id string, req dto.UpdateTenantRequest) (*domain.Tenant, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTenantService) List(ctx context.Context) ([]dto.TenantResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dto.TenantResponse), args.Error(1)
}

func (m *MockTenantService) Dashboard(ctx context.Context, tenantID string) (*domain.DashboardStats, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (s *TenantHandlerTestSuite) SetupTest() {
	s.mockService = new(MockTenantService)
	s.handler = NewTenantHandler(s.mockService)
}

func TestTenantHandler(t *testing.T) {
	suite.Run(t, new(TenantHandlerTestSuite))
}

func (s *TenantHandlerTestSuite) TestCreateTenant_Success() {
	// Arrange
	req := dto.CreateTenantRequest{Name: "Downtown Auto"}
	expected := dto.TenantResponse{ID: "tenant1", Name: req.Name, Slug: "downtown-auto", Plan: "free"}
	s.mockService.On("Create", mock.Anything, req).Return(expected, nil)

	c, w := newTestContext(http.MethodPost, "/api/v1/tenants", req)

	// Act
	s.handler.CreateTenant(c)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var response dto.TenantResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(expected.ID, response.ID)
	s.Equal(expected.Slug, response.Slug)
	s.mockService.AssertExpectations(s.T())
}

func (s *TenantHandlerTestSuite) TestCreateTenant_MissingName() {
	c, w := newTestContext(http.MethodPost, "/api/v1/tenants", `{"slug":"abc"}`)

	s.handler.CreateTenant(c)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *TenantHandlerTestSuite) TestCreateTenant_SlugTaken() {
	req := dto.CreateTenantRequest{Name: "Downtown Auto", Slug: "downtown"}
	s.mockService.On("Create", mock.Anything, req).Return(dto.TenantResponse{}, service.ErrTenantExists)

	c, w := newTestContext(http.MethodPost, "/api/v1/tenants", req)
	s.handler.CreateTenant(c)

	s.Equal(http.StatusConflict, w.Code)
}

func (s *TenantHandlerTestSuite) TestListTenants_Success() {
	// Arrange
	expected := []dto.TenantResponse{
		{ID: "tenant1", Name: "Tenant 1"},
		{ID: "tenant2", Name: "Tenant 2"},
	}
	s.mockService.On("List", mock.Anything).Return(expected, nil)

	c, w := newTestContext(http.MethodGet, "/api/v1/tenants", nil)

	// Act
	s.handler.ListTenants(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response []dto.TenantResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Len(response, 2)
	s.Equal(expected[1].ID, response[1].ID)
	s.mockService.AssertExpectations(s.T())
}

func (s *TenantHandlerTestSuite) TestGetTenant_NotFound() {
	s.mockService.On("GetByID", mock.Anything, "missing").Return(nil, service.ErrTenantNotFound)

	c, w := newTestContext(http.MethodGet, "/api/v1/tenants/missing", nil)
	c.AddParam("id", "missing")
	s.handler.GetTenant(c)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *TenantHandlerTestSuite) TestGetDashboard_RequiresTenant() {
	c, w := newTestContext(http.MethodGet, "/api/v1/dashboard", nil)

	s.handler.GetDashboard(c)

	s.Equal(http.StatusUnauthorized, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Dashboard", mock.Anything, mock.Anything)
}

func (s *TenantHandlerTestSuite) TestGetDashboard_FormatsFileSize() {
	// Arrange
	stats := &domain.DashboardStats{
		BookingCounts:    map[domain.BookingStatus]int64{domain.BookingPending: 3},
		UpcomingBookings: 2,
		FileCount:        4,
		FileBytes:        1536,
		AnalysisCounts:   map[domain.AnalysisStatus]int64{},
	}
	s.mockService.On("Dashboard", mock.Anything, "tenant1").Return(stats, nil)

	c, w := newTestContext(http.MethodGet, "/api/v1/dashboard", nil)
	authenticate(c, "tenant1", "user1", "viewer")

	// Act
	s.handler.GetDashboard(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response dto.DashboardResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("1.5 KB", response.FileSizeFormatted)
	s.Equal(int64(3), response.BookingCounts["pending"])
}
