package worker

import (
	"context"
	"fmt"

	"github.com/kingrain94/vehicle-assess-api/internal/config"
	"github.com/kingrain94/vehicle-assess-api/internal/repository"
	"github.com/kingrain94/vehicle-assess-api/internal/service/queue"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
)

// IndexWorker copies bookings into the tenant's search index
type IndexWorker struct {
	*Poller
	search repository.BookingSearchRepository
}

func NewIndexWorker(
	receiver Receiver,
	sqsConfig *config.SQSConfig,
	search repository.BookingSearchRepository,
	logger *logger.Logger,
	cfg *config.WorkerConfig,
) *IndexWorker {
	w := &IndexWorker{search: search}
	w.Poller = NewPoller("index_worker", receiver, sqsConfig.IndexQueueURL, w.processMessage, logger, cfg)
	return w
}

func (w *IndexWorker) processMessage(ctx context.Context, msg queue.Message) error {
	switch msg.Type {
	case queue.MessageTypeIndex:
		if len(msg.Bookings) != 1 {
			return fmt.Errorf("invalid number of bookings for INDEX message: %d", len(msg.Bookings))
		}
		return w.search.Index(ctx, &msg.Bookings[0])

	case queue.MessageTypeBulkIndex:
		if len(msg.Bookings) == 0 {
			return fmt.Errorf("empty bookings array for BULK_INDEX message")
		}
		return w.search.BulkIndex(ctx, msg.Bookings)

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
