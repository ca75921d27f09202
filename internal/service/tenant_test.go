package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/mocks"
)

type TenantServiceTestSuite struct {
	suite.Suite
	mockRepo     *mocks.Repository
	mockTenant   *mocks.TenantRepository
	mockBooking  *mocks.BookingRepository
	mockFile     *mocks.FileRepository
	mockAnalysis *mocks.VehicleAnalysisRepository
	service      *TenantService
}

func (s *TenantServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockTenant = new(mocks.TenantRepository)
	s.mockBooking = new(mocks.BookingRepository)
	s.mockFile = new(mocks.FileRepository)
	s.mockAnalysis = new(mocks.VehicleAnalysisRepository)

	s.mockRepo.On("Tenant").Return(s.mockTenant)
	s.mockRepo.On("Booking").Return(s.mockBooking)
	s.mockRepo.On("File").Return(s.mockFile)
	s.mockRepo.On("VehicleAnalysis").Return(s.mockAnalysis)

	s.service = NewTenantService(s.mockRepo, 1000)
}

func TestTenantService(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}

func (s *TenantServiceTestSuite) TestCreate_Success() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateTenantRequest{
		Name: "Test Tenant",
		Slug: "testtenant",
	}

	expectedTenant := &domain.Tenant{
		ID:        "tenant1",
		Name:      req.Name,
		Slug:      req.Slug,
		Plan:      "free",
		RateLimit: 1000,
		CreatedAt: 1752787248000,
		UpdatedAt: 1752787248000,
	}

	s.mockTenant.On("GetBySlug", ctx, "testtenant").Return(nil, gorm.ErrRecordNotFound)
	s.mockTenant.On("Create", ctx, mock.MatchedBy(func(t *domain.Tenant) bool {
		return t.Name == req.Name && t.Plan == "free" && t.RateLimit == 1000
	})).Return(expectedTenant, nil)

	// Act
	resp, err := s.service.Create(ctx, req)

	// Assert
	s.NoError(err)
	s.Equal(expectedTenant.ID, resp.ID)
	s.Equal(expectedTenant.Name, resp.Name)
	s.Equal(expectedTenant.CreatedAt, resp.CreatedAt)
	s.Equal(expectedTenant.UpdatedAt, resp.UpdatedAt)
	s.mockTenant.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestCreate_SlugTaken() {
	ctx := context.Background()
	req := dto.CreateTenantRequest{Name: "Test Tenant", Slug: "taken"}

	s.mockTenant.On("GetBySlug", ctx, "taken").Return(&domain.Tenant{ID: "other"}, nil)

	_, err := s.service.Create(ctx, req)

	s.ErrorIs(err, ErrTenantExists)
	s.mockTenant.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestGetByID_Success() {
	// Arrange
	ctx := context.Background()
	tenantID := "tenant1"
	expectedTenant := &domain.Tenant{
		ID:   tenantID,
		Name: "Test Tenant",
	}

	s.mockTenant.On("GetByID", ctx, tenantID).Return(expectedTenant, nil)

	// Act
	tenant, err := s.service.GetByID(ctx, tenantID)

	// Assert
	s.NoError(err)
	s.Equal(expectedTenant.ID, tenant.ID)
	s.Equal(expectedTenant.Name, tenant.Name)
	s.mockTenant.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestGetByID_NotFound() {
	ctx := context.Background()
	s.mockTenant.On("GetByID", ctx, "missing").Return(nil, gorm.ErrRecordNotFound)

	tenant, err := s.service.GetByID(ctx, "missing")

	s.Nil(tenant)
	s.ErrorIs(err, ErrTenantNotFound)
}

func (s *TenantServiceTestSuite) TestUpdate_Success() {
	// Arrange
	ctx := context.Background()
	existing := &domain.Tenant{ID: "tenant1", Name: "Old", Plan: "free", RateLimit: 1000}

	s.mockTenant.On("GetByID", ctx, "tenant1").Return(existing, nil)
	s.mockTenant.On("Update", ctx, mock.AnythingOfType("*domain.Tenant")).Return(nil)

	// Act
	tenant, err := s.service.Update(ctx, "tenant1", dto.UpdateTenantRequest{Name: "Updated Tenant", RateLimit: 50})

	// Assert
	s.NoError(err)
	s.Equal("Updated Tenant", tenant.Name)
	s.Equal("free", tenant.Plan)
	s.Equal(50, tenant.RateLimit)
	s.mockTenant.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestDelete_Success() {
	// Arrange
	ctx := context.Background()
	tenantID := "tenant1"

	s.mockTenant.On("Delete", ctx, tenantID).Return(nil)

	// Act
	err := s.service.Delete(ctx, tenantID)

	// Assert
	s.NoError(err)
	s.mockTenant.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestList_Success() {
	// Arrange
	ctx := context.Background()
	expectedTenants := []domain.Tenant{
		{ID: "tenant1", Name: "Tenant 1"},
		{ID: "tenant2", Name: "Tenant 2"},
	}

	s.mockTenant.On("List", ctx).Return(expectedTenants, nil)

	// Act
	tenants, err := s.service.List(ctx)

	// Assert
	s.NoError(err)
	s.Len(tenants, 2)
	s.Equal(expectedTenants[0].ID, tenants[0].ID)
	s.Equal(expectedTenants[1].Name, tenants[1].Name)
	s.mockTenant.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestDashboard() {
	// Arrange
	ctx := context.Background()
	bookingCounts := map[domain.BookingStatus]int64{domain.BookingPending: 2, domain.BookingConfirmed: 1}
	analysisCounts := map[domain.AnalysisStatus]int64{domain.AnalysisCompleted: 3}

	s.mockBooking.On("CountByStatus", ctx, "tenant1").Return(bookingCounts, nil)
	s.mockBooking.On("CountUpcoming", ctx, "tenant1", mock.AnythingOfType("int64"), mock.AnythingOfType("int64")).
		Run(func(args mock.Arguments) {
			from, to := args.Get(2).(int64), args.Get(3).(int64)
			s.Equal(upcomingWindow.Milliseconds(), to-from)
		}).
		Return(int64(1), nil)
	s.mockFile.On("Stats", ctx, "tenant1").Return(int64(4), int64(1536), nil)
	s.mockAnalysis.On("CountByStatus", ctx, "tenant1").Return(analysisCounts, nil)

	// Act
	stats, err := s.service.Dashboard(ctx, "tenant1")

	// Assert
	s.Require().NoError(err)
	s.Equal(int64(2), stats.BookingCounts[domain.BookingPending])
	s.Equal(int64(1), stats.UpcomingBookings)
	s.Equal(int64(4), stats.FileCount)
	s.Equal("1.5 KB", dto.FromDashboardStats(stats).FileSizeFormatted)
	s.Equal(int64(3), stats.AnalysisCounts[domain.AnalysisCompleted])
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "downtown-auto", Slugify("Downtown  Auto!"))
	assert.Equal(t, "a-b", Slugify("--A_b--"))
}
