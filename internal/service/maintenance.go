package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/repository"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
)

// CleanupResult counts the records purged for one tenant
type CleanupResult struct {
	RateLimitEvents int64
	SearchHistory   int64
	Sessions        int64
}

type MaintenanceService struct {
	repo       repository.Repository
	sqsService SQSService
	logger     *logger.Logger
}

func NewMaintenanceService(repo repository.Repository, sqsService SQSService, logger *logger.Logger) *MaintenanceService {
	return &MaintenanceService{
		repo:       repo,
		sqsService: sqsService,
		logger:     logger,
	}
}

// ScheduleCleanup queues a purge of the tenant's records older than beforeDate
func (s *MaintenanceService) ScheduleCleanup(ctx context.Context, tenantID string, beforeDate time.Time) (dto.CleanupResponse, error) {
	if err := s.sqsService.SendCleanupMessage(ctx, tenantID, beforeDate); err != nil {
		return dto.CleanupResponse{}, fmt.Errorf("failed to schedule cleanup: %w", err)
	}

	return dto.CleanupResponse{
		Message:    "Cleanup scheduled",
		BeforeDate: beforeDate.UnixMilli(),
	}, nil
}

// Cleanup deletes rate limit events, search history and expired sessions
// created before beforeDate.
func (s *MaintenanceService) Cleanup(ctx context.Context, tenantID string, beforeDate time.Time) (CleanupResult, error) {
	before := beforeDate.UnixMilli()
	var result CleanupResult
	var err error

	if result.RateLimitEvents, err = s.repo.RateLimitEvent().DeleteBefore(ctx, tenantID, before); err != nil {
		return result, fmt.Errorf("failed to purge rate limit events: %w", err)
	}
	if result.SearchHistory, err = s.repo.SearchHistory().DeleteBefore(ctx, tenantID, before); err != nil {
		return result, fmt.Errorf("failed to purge search history: %w", err)
	}
	if result.Sessions, err = s.repo.Session().DeleteExpired(ctx, tenantID, before); err != nil {
		return result, fmt.Errorf("failed to purge sessions: %w", err)
	}

	s.logger.Info("Cleanup finished",
		zap.String("tenant_id", tenantID),
		zap.Int64("rate_limit_events", result.RateLimitEvents),
		zap.Int64("search_history", result.SearchHistory),
		zap.Int64("sessions", result.Sessions),
	)
	return result, nil
}
