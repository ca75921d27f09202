package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/repository"
	"github.com/kingrain94/vehicle-assess-api/pkg/utils"
)

// upcomingWindow is how far ahead the dashboard counts bookings
const upcomingWindow = 7 * 24 * time.Hour

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

type TenantService struct {
	repo             repository.Repository
	defaultRateLimit int
}

func NewTenantService(repo repository.Repository, defaultRateLimit int) *TenantService {
	return &TenantService{repo: repo, defaultRateLimit: defaultRateLimit}
}

// Slugify lowercases name and joins its alphanumeric runs with dashes
func Slugify(name string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

func (s *TenantService) Create(ctx context.Context, req dto.CreateTenantRequest) (dto.TenantResponse, error) {
	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Name) + "-" + uuid.NewString()[:8]
	}

	if _, err := s.repo.Tenant().GetBySlug(ctx, slug); err == nil {
		return dto.TenantResponse{}, ErrTenantExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.TenantResponse{}, err
	}

	tenant := &domain.Tenant{
		Name:               req.Name,
		Slug:               slug,
		Plan:               string(domain.PlanFree),
		SubscriptionStatus: string(domain.SubscriptionNone),
		RateLimit:          s.defaultRateLimit,
	}

	createdTenant, err := s.repo.Tenant().Create(ctx, tenant)
	if err != nil {
		return dto.TenantResponse{}, err
	}

	return dto.FromTenant(createdTenant), nil
}

func (s *TenantService) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	tenant, err := s.repo.Tenant().GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTenantNotFound
	}
	return tenant, err
}

func (s *TenantService) Update(ctx context.Context, id string, req dto.UpdateTenantRequest) (*domain.Tenant, error) {
	tenant, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		tenant.Name = req.Name
	}
	if req.Plan != "" {
		tenant.Plan = req.Plan
	}
	if req.RateLimit > 0 {
		tenant.RateLimit = req.RateLimit
	}

	if err := s.repo.Tenant().Update(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

func (s *TenantService) Delete(ctx context.Context, id string) error {
	return s.repo.Tenant().Delete(ctx, id)
}

func (s *TenantService) List(ctx context.Context) ([]dto.TenantResponse, error) {
	tenants, err := s.repo.Tenant().List(ctx)
	if err != nil {
		return []dto.TenantResponse{}, err
	}

	tenantResponses := make([]dto.TenantResponse, len(tenants))
	for i := range tenants {
		tenantResponses[i] = dto.FromTenant(&tenants[i])
	}
	return tenantResponses, nil
}

// Dashboard aggregates the tenant overview
func (s *TenantService) Dashboard(ctx context.Context, tenantID string) (*domain.DashboardStats, error) {
	bookingCounts, err := s.repo.Booking().CountByStatus(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	now := utils.NowMillis()
	upcoming, err := s.repo.Booking().CountUpcoming(ctx, tenantID, now, now+upcomingWindow.Milliseconds())
	if err != nil {
		return nil, fmt.Errorf("failed to count upcoming bookings: %w", err)
	}

	fileCount, fileBytes, err := s.repo.File().Stats(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	analysisCounts, err := s.repo.VehicleAnalysis().CountByStatus(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardStats{
		BookingCounts:    bookingCounts,
		UpcomingBookings: upcoming,
		FileCount:        fileCount,
		FileBytes:        fileBytes,
		AnalysisCounts:   analysisCounts,
	}, nil
}
