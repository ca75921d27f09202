package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/kingrain94/vehicle-assess-api/internal/config"
	"github.com/kingrain94/vehicle-assess-api/internal/service"
	"github.com/kingrain94/vehicle-assess-api/internal/service/queue"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
)

type Cleaner interface {
	Cleanup(ctx context.Context, tenantID string, beforeDate time.Time) (service.CleanupResult, error)
}

// CleanupWorker purges a tenant's operational records older than a date
type CleanupWorker struct {
	*Poller
	cleaner Cleaner
}

func NewCleanupWorker(
	receiver Receiver,
	sqsConfig *config.SQSConfig,
	cleaner Cleaner,
	logger *logger.Logger,
	cfg *config.WorkerConfig,
) *CleanupWorker {
	w := &CleanupWorker{cleaner: cleaner}
	w.Poller = NewPoller("cleanup_worker", receiver, sqsConfig.CleanupQueueURL, w.processMessage, logger, cfg)
	return w
}

func (w *CleanupWorker) processMessage(ctx context.Context, msg queue.Message) error {
	if msg.Type != queue.MessageTypeCleanup {
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}

	w.logger.Infof("Processing cleanup message for tenant %s (before: %s)",
		msg.TenantID, msg.BeforeDate.Format(time.RFC3339))

	result, err := w.cleaner.Cleanup(ctx, msg.TenantID, msg.BeforeDate)
	if err != nil {
		return fmt.Errorf("failed to clean up tenant %s: %w", msg.TenantID, err)
	}

	w.logger.Infof("Successfully deleted %d records for tenant %s",
		result.RateLimitEvents+result.SearchHistory+result.Sessions, msg.TenantID)
	return nil
}
