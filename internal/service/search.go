package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/repository"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
)

const (
	SearchKindBookings = "bookings"
	SearchKindAnalyses = "analyses"

	defaultHistoryLimit = 20
)

type SearchService struct {
	repo   repository.Repository
	logger *logger.Logger
}

func NewSearchService(repo repository.Repository, logger *logger.Logger) *SearchService {
	return &SearchService{repo: repo, logger: logger}
}

// SearchBookings runs a full-text query over the tenant's booking index and
// records it in the user's history.
func (s *SearchService) SearchBookings(ctx context.Context, userID string, filter *domain.BookingSearchFilter) (dto.BookingSearchResponse, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > maxPageSize {
		filter.PageSize = defaultPageSize
	}

	bookings, total, err := s.repo.BookingSearch().Search(ctx, filter)
	if err != nil {
		return dto.BookingSearchResponse{}, err
	}

	s.Record(ctx, filter.TenantID, userID, filter.Query, SearchKindBookings, int(total))

	return dto.BookingSearchResponse{
		Bookings: dto.FromBookings(bookings),
		Total:    total,
	}, nil
}

// Record stores a history entry. Failures are logged only.
func (s *SearchService) Record(ctx context.Context, tenantID, userID, query, kind string, resultCount int) {
	if query == "" || userID == "" {
		return
	}

	entry := &domain.SearchHistory{
		TenantID:    tenantID,
		UserID:      userID,
		Query:       query,
		Kind:        kind,
		ResultCount: resultCount,
	}
	if err := s.repo.SearchHistory().Create(ctx, entry); err != nil {
		s.logger.Warn("Failed to record search history",
			zap.String("tenant_id", tenantID),
			zap.Error(err),
		)
	}
}

func (s *SearchService) History(ctx context.Context, tenantID, userID string, limit int) ([]domain.SearchHistory, error) {
	if limit < 1 || limit > maxPageSize {
		limit = defaultHistoryLimit
	}
	return s.repo.SearchHistory().List(ctx, tenantID, userID, limit)
}

func (s *SearchService) ClearHistory(ctx context.Context, tenantID, userID string) (int64, error) {
	return s.repo.SearchHistory().DeleteByUser(ctx, tenantID, userID)
}
