package service

import (
	"context"
	"io"
	"time"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/service/calendar"
	"github.com/kingrain94/vehicle-assess-api/internal/service/identity"
)

//go:generate mockery --name SQSService --output ../mocks
type SQSService interface {
	SendIndexMessage(ctx context.Context, booking *domain.Booking) error
	SendBulkIndexMessage(ctx context.Context, bookings []domain.Booking) error
	SendAnalyzeMessage(ctx context.Context, tenantID, analysisID string) error
	SendCleanupMessage(ctx context.Context, tenantID string, beforeDate time.Time) error
}

//go:generate mockery --name ObjectStorage --output ../mocks
type ObjectStorage interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	Delete(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

//go:generate mockery --name StreamPublisher --output ../mocks
type StreamPublisher interface {
	Publish(ctx context.Context, event *dto.TextStreamEvent) error
}

//go:generate mockery --name IdentityProvider --output ../mocks
type IdentityProvider interface {
	Exchange(ctx context.Context, code string) (*identity.Profile, error)
}

//go:generate mockery --name CalendarProvider --output ../mocks
type CalendarProvider interface {
	CreateEvent(ctx context.Context, event calendar.Event) (string, error)
	DeleteEvent(ctx context.Context, eventID string) error
}
