package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/repository"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
	"github.com/kingrain94/vehicle-assess-api/pkg/utils"
)

// TextStreamService manages streams of generated text. Every change is
// published to the tenant's channel.
type TextStreamService struct {
	repo      repository.Repository
	publisher StreamPublisher
	logger    *logger.Logger
}

func NewTextStreamService(repo repository.Repository, publisher StreamPublisher, logger *logger.Logger) *TextStreamService {
	return &TextStreamService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *TextStreamService) Create(ctx context.Context, tenantID, ownerID string) (*domain.TextStream, error) {
	stream := &domain.TextStream{
		TenantID: tenantID,
		OwnerID:  ownerID,
		Status:   string(domain.StreamPending),
	}
	if err := s.repo.TextStream().Create(ctx, stream); err != nil {
		return nil, err
	}

	s.publish(ctx, stream, "")
	return stream, nil
}

func (s *TextStreamService) Get(ctx context.Context, id string) (*domain.TextStream, error) {
	stream, err := s.repo.TextStream().GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrStreamNotFound
	}
	return stream, err
}

// Append adds a chunk to the body and moves the stream to streaming
func (s *TextStreamService) Append(ctx context.Context, id, chunk string) (*domain.TextStream, error) {
	return s.update(ctx, id, chunk, func(stream *domain.TextStream) {
		stream.Body += chunk
		stream.Status = string(domain.StreamStreaming)
	})
}

func (s *TextStreamService) Finish(ctx context.Context, id string) (*domain.TextStream, error) {
	return s.update(ctx, id, "", func(stream *domain.TextStream) {
		stream.Status = string(domain.StreamDone)
	})
}

func (s *TextStreamService) Fail(ctx context.Context, id, message string) (*domain.TextStream, error) {
	return s.update(ctx, id, "", func(stream *domain.TextStream) {
		stream.Status = string(domain.StreamError)
		stream.Error = message
	})
}

func (s *TextStreamService) update(ctx context.Context, id, chunk string, apply func(*domain.TextStream)) (*domain.TextStream, error) {
	stream, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if stream.Terminal() {
		return nil, ErrStreamClosed
	}

	apply(stream)
	if err := s.repo.TextStream().Update(ctx, stream); err != nil {
		return nil, err
	}

	s.publish(ctx, stream, chunk)
	return stream, nil
}

func (s *TextStreamService) publish(ctx context.Context, stream *domain.TextStream, chunk string) {
	updatedAt := stream.UpdatedAt
	if updatedAt == 0 {
		updatedAt = utils.NowMillis()
	}

	event := &dto.TextStreamEvent{
		StreamID:  stream.ID,
		TenantID:  stream.TenantID,
		Status:    stream.Status,
		Chunk:     chunk,
		Error:     stream.Error,
		UpdatedAt: updatedAt,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish text stream event",
			zap.String("stream_id", stream.ID),
			zap.Error(err),
		)
	}
}
