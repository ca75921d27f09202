package postgres

import (
	"gorm.io/gorm"

	"github.com/kingrain94/vehicle-assess-api/internal/config"
	"github.com/kingrain94/vehicle-assess-api/internal/repository"
)

type postgresRepository struct {
	writerDB           *gorm.DB
	readerDB           *gorm.DB
	tenantRepo         repository.TenantRepository
	userRepo           repository.UserRepository
	sessionRepo        repository.SessionRepository
	fileRepo           repository.FileRepository
	bookingRepo        repository.BookingRepository
	pricingRuleRepo    repository.PricingRuleRepository
	notificationRepo   repository.NotificationPreferenceRepository
	rateLimitEventRepo repository.RateLimitEventRepository
	searchHistoryRepo  repository.SearchHistoryRepository
	textStreamRepo     repository.TextStreamRepository
	embeddingRepo      repository.EmbeddingRepository
	analysisRepo       repository.VehicleAnalysisRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.PostgresRepository {
	w, r := dbConnections.Writer, dbConnections.Reader
	return &postgresRepository{
		writerDB:           w,
		readerDB:           r,
		tenantRepo:         NewTenantRepository(w, r),
		userRepo:           NewUserRepository(w, r),
		sessionRepo:        NewSessionRepository(w, r),
		fileRepo:           NewFileRepository(w, r),
		bookingRepo:        NewBookingRepository(w, r),
		pricingRuleRepo:    NewPricingRuleRepository(w, r),
		notificationRepo:   NewNotificationPreferenceRepository(w, r),
		rateLimitEventRepo: NewRateLimitEventRepository(w, r),
		searchHistoryRepo:  NewSearchHistoryRepository(w, r),
		textStreamRepo:     NewTextStreamRepository(w, r),
		embeddingRepo:      NewEmbeddingRepository(w, r),
		analysisRepo:       NewVehicleAnalysisRepository(w, r),
	}
}

func (r *postgresRepository) Tenant() repository.TenantRepository {
	return r.tenantRepo
}

func (r *postgresRepository) User() repository.UserRepository {
	return r.userRepo
}

func (r *postgresRepository) Session() repository.SessionRepository {
	return r.sessionRepo
}

func (r *postgresRepository) File() repository.FileRepository {
	return r.fileRepo
}

func (r *postgresRepository) Booking() repository.BookingRepository {
	return r.bookingRepo
}

func (r *postgresRepository) PricingRule() repository.PricingRuleRepository {
	return r.pricingRuleRepo
}

func (r *postgresRepository) NotificationPreference() repository.NotificationPreferenceRepository {
	return r.notificationRepo
}

func (r *postgresRepository) RateLimitEvent() repository.RateLimitEventRepository {
	return r.rateLimitEventRepo
}

func (r *postgresRepository) SearchHistory() repository.SearchHistoryRepository {
	return r.searchHistoryRepo
}

func (r *postgresRepository) TextStream() repository.TextStreamRepository {
	return r.textStreamRepo
}

func (r *postgresRepository) Embedding() repository.EmbeddingRepository {
	return r.embeddingRepo
}

func (r *postgresRepository) VehicleAnalysis() repository.VehicleAnalysisRepository {
	return r.analysisRepo
}
