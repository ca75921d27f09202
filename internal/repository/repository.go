package repository

import (
	"context"

	"github.com/kingrain94/vehicle-assess-api/internal/domain"
)

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	Patch(ctx context.Context, id string, updates map[string]any) (int64, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Tenant, error)
}

//go:generate mockery --name UserRepository --output ../mocks
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByExternalID(ctx context.Context, externalID string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

//go:generate mockery --name SessionRepository --output ../mocks
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
	DeleteByToken(ctx context.Context, token string) (int64, error)
	DeleteExpired(ctx context.Context, tenantID string, beforeMillis int64) (int64, error)
}

//go:generate mockery --name FileRepository --output ../mocks
type FileRepository interface {
	Create(ctx context.Context, file *domain.File) error
	GetByID(ctx context.Context, id string) (*domain.File, error)
	List(ctx context.Context, filter domain.FileFilter) ([]domain.File, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context, tenantID string) (count int64, totalBytes int64, err error)
}

//go:generate mockery --name BookingRepository --output ../mocks
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// GetByCalendarEventID is not tenant scoped: calendar callbacks carry no tenant.
	GetByCalendarEventID(ctx context.Context, eventID string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, int64, error)
	Patch(ctx context.Context, id string, updates map[string]any) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	ListBusy(ctx context.Context, tenantID string, startMillis, endMillis int64) ([]domain.Booking, error)
	CountByStatus(ctx context.Context, tenantID string) (map[domain.BookingStatus]int64, error)
	CountUpcoming(ctx context.Context, tenantID string, fromMillis, toMillis int64) (int64, error)
}

//go:generate mockery --name PricingRuleRepository --output ../mocks
type PricingRuleRepository interface {
	Create(ctx context.Context, rule *domain.PricingRule) error
	GetByID(ctx context.Context, id string) (*domain.PricingRule, error)
	List(ctx context.Context, tenantID string, activeOnly bool) ([]domain.PricingRule, error)
	Update(ctx context.Context, rule *domain.PricingRule) error
	Delete(ctx context.Context, id string) (int64, error)
}

//go:generate mockery --name NotificationPreferenceRepository --output ../mocks
type NotificationPreferenceRepository interface {
	Get(ctx context.Context, tenantID, userID string) (*domain.NotificationPreference, error)
	Upsert(ctx context.Context, pref *domain.NotificationPreference) error
}

//go:generate mockery --name RateLimitEventRepository --output ../mocks
type RateLimitEventRepository interface {
	Create(ctx context.Context, event *domain.RateLimitEvent) error
	List(ctx context.Context, tenantID string, limit int) ([]domain.RateLimitEvent, error)
	DeleteBefore(ctx context.Context, tenantID string, beforeMillis int64) (int64, error)
}

//go:generate mockery --name SearchHistoryRepository --output ../mocks
type SearchHistoryRepository interface {
	Create(ctx context.Context, entry *domain.SearchHistory) error
	List(ctx context.Context, tenantID, userID string, limit int) ([]domain.SearchHistory, error)
	DeleteByUser(ctx context.Context, tenantID, userID string) (int64, error)
	DeleteBefore(ctx context.Context, tenantID string, beforeMillis int64) (int64, error)
}

//go:generate mockery --name TextStreamRepository --output ../mocks
type TextStreamRepository interface {
	Create(ctx context.Context, stream *domain.TextStream) error
	GetByID(ctx context.Context, id string) (*domain.TextStream, error)
	Update(ctx context.Context, stream *domain.TextStream) error
}

//go:generate mockery --name EmbeddingRepository --output ../mocks
type EmbeddingRepository interface {
	Create(ctx context.Context, embedding *domain.Embedding) error
	ListBySource(ctx context.Context, tenantID, sourceType string) ([]domain.Embedding, error)
}

//go:generate mockery --name VehicleAnalysisRepository --output ../mocks
type VehicleAnalysisRepository interface {
	Create(ctx context.Context, analysis *domain.VehicleAnalysis) error
	GetByID(ctx context.Context, id string) (*domain.VehicleAnalysis, error)
	GetByIDs(ctx context.Context, tenantID string, ids []string) ([]domain.VehicleAnalysis, error)
	List(ctx context.Context, tenantID string, limit, offset int) ([]domain.VehicleAnalysis, error)
	Patch(ctx context.Context, id string, updates map[string]any) (int64, error)
	Update(ctx context.Context, analysis *domain.VehicleAnalysis) error
	CountByStatus(ctx context.Context, tenantID string) (map[domain.AnalysisStatus]int64, error)
}

//go:generate mockery --name BookingSearchRepository --output ../mocks
type BookingSearchRepository interface {
	Index(ctx context.Context, booking *domain.Booking) error
	BulkIndex(ctx context.Context, bookings []domain.Booking) error
	Search(ctx context.Context, filter *domain.BookingSearchFilter) ([]domain.Booking, int64, error)
	CreateIndex(ctx context.Context, tenantID string) error
	DeleteIndex(ctx context.Context, tenantID string) error
	Delete(ctx context.Context, tenantID, bookingID string) error
}

type PostgresRepository interface {
	Tenant() TenantRepository
	User() UserRepository
	Session() SessionRepository
	File() FileRepository
	Booking() BookingRepository
	PricingRule() PricingRuleRepository
	NotificationPreference() NotificationPreferenceRepository
	RateLimitEvent() RateLimitEventRepository
	SearchHistory() SearchHistoryRepository
	TextStream() TextStreamRepository
	Embedding() EmbeddingRepository
	VehicleAnalysis() VehicleAnalysisRepository
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	PostgresRepository
	BookingSearch() BookingSearchRepository
}
