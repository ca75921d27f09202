package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/metrics"
	"github.com/kingrain94/vehicle-assess-api/internal/repository"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
)

const defaultRateLimitEventLimit = 100

// RateLimitEventService records throttled requests for reporting. The
// records are never read back for enforcement.
type RateLimitEventService struct {
	repo   repository.Repository
	logger *logger.Logger
}

func NewRateLimitEventService(repo repository.Repository, logger *logger.Logger) *RateLimitEventService {
	return &RateLimitEventService{repo: repo, logger: logger}
}

// Record counts every throttled request but only stores tenant scoped ones.
// Per-IP rejections have no tenant to list or purge them under.
func (s *RateLimitEventService) Record(ctx context.Context, event *domain.RateLimitEvent) {
	metrics.ThrottledRequests.WithLabelValues(event.Scope).Inc()

	if event.TenantID == "" {
		s.logger.Warn("Request throttled", zap.String("key", event.Key), zap.String("scope", event.Scope))
		return
	}

	if err := s.repo.RateLimitEvent().Create(ctx, event); err != nil {
		s.logger.Error("Failed to record rate limit event", err)
	}
}

// List returns recent events. An empty tenantID lists every tenant.
func (s *RateLimitEventService) List(ctx context.Context, tenantID string, limit int) ([]domain.RateLimitEvent, error) {
	if limit < 1 || limit > 1000 {
		limit = defaultRateLimitEventLimit
	}
	return s.repo.RateLimitEvent().List(ctx, tenantID, limit)
}
